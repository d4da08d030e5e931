package toolchain

import (
	"strconv"
	"strings"
)

// Version describes one installed tool version parsed from an xpm store
// directory name such as "10.3.1-2.3". The part before the first dash is
// the upstream tool release, the part after is the xpm package release.
type Version struct {
	// Tool is the upstream tool release triplet (e.g. the GCC version).
	Tool [3]int
	// Pack is the xpm package release triplet.
	Pack [3]int
	// Source is the directory name the version was parsed from.
	Source string
}

// ParseVersion parses an xpm version directory name. It never fails:
// missing or non-numeric segments default to 0, so a malformed name comes
// back as the zero version, which IsReal reports as not installable.
func ParseVersion(dirName string) Version {
	v := Version{Source: dirName}
	toolPart := dirName
	packPart := ""
	if i := strings.Index(dirName, "-"); i >= 0 {
		toolPart = dirName[:i]
		packPart = dirName[i+1:]
	}
	v.Tool = parseTriplet(toolPart)
	v.Pack = parseTriplet(packPart)
	return v
}

// parseTriplet converts up to three dot-separated segments to integers.
func parseTriplet(s string) [3]int {
	var t [3]int
	if s == "" {
		return t
	}
	for i, seg := range strings.Split(s, ".") {
		if i >= len(t) {
			break
		}
		n, err := strconv.Atoi(seg)
		if err != nil {
			continue
		}
		t[i] = n
	}
	return t
}

// IsReal reports whether v names an actual tool release. A version whose
// tool triplet is all zeros comes from a malformed or bookkeeping directory
// name and is never a candidate.
func (v Version) IsReal() bool {
	return v.Tool != [3]int{}
}

// String returns the canonical "tool-pack" form of the version.
func (v Version) String() string {
	if v.Source != "" {
		return v.Source
	}
	return strconv.Itoa(v.Tool[0]) + "." + strconv.Itoa(v.Tool[1]) + "." + strconv.Itoa(v.Tool[2]) +
		"-" + strconv.Itoa(v.Pack[0]) + "." + strconv.Itoa(v.Pack[1]) + "." + strconv.Itoa(v.Pack[2])
}

// Newer is a max-fold reducer over versions: it returns b when a is nil,
// otherwise the greater of the two. The tool triplet is compared
// component-wise first, with the pack triplet as tie-break; a full tie
// keeps a. It is not a comparator, callers only ever fold with it.
func Newer(a *Version, b Version) Version {
	if a == nil {
		return b
	}
	switch cmpTriplet(a.Tool, b.Tool) {
	case -1:
		return b
	case 1:
		return *a
	}
	if cmpTriplet(a.Pack, b.Pack) < 0 {
		return b
	}
	return *a
}

func cmpTriplet(a, b [3]int) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
