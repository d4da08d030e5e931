// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Locator resolves a candidate executable path or command name. Locate
// returns the resolved absolute path and true when the candidate names an
// executable that exists, or "" and false otherwise. Implementations must
// be side-effect free.
type Locator interface {
	Locate(candidate string) (string, bool)
}

// System resolves candidates against the real PATH and filesystem.
// A candidate containing a path separator is checked directly; a bare
// name is searched on PATH. The zero value is ready to use.
type System struct{}

// Locate implements Locator using exec.LookPath.
func (System) Locate(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	resolved, err := exec.LookPath(ExeName(candidate))
	if err != nil {
		return "", false
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		return abs, true
	}
	return resolved, true
}

// MapLocator is a deterministic Locator backed by a map from candidate to
// resolved path. Consumers use it to test resolution logic without
// touching the real PATH or filesystem.
type MapLocator map[string]string

// Locate implements Locator by map lookup.
func (m MapLocator) Locate(candidate string) (string, bool) {
	resolved, ok := m[candidate]
	return resolved, ok
}

// ExeName appends the .exe extension on Windows when the candidate does
// not already carry it. On other platforms the candidate is returned
// unchanged.
func ExeName(candidate string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(candidate), ".exe") {
		return candidate + ".exe"
	}
	return candidate
}

// IsExecutable reports whether path names a regular file the current user
// could execute (any of the owner/group/other execute bits). On Windows,
// where executability is extension-based, only existence is checked.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0111 != 0
}
