package toolchain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jongio/xpm-core/logutil"
	"github.com/jongio/xpm-core/pathutil"
)

// XPacksDirName is the directory xpm creates under the host's storage path
// to hold installed tool packages.
const XPacksDirName = "xPacks"

// Sentinel errors from NewestVersion. Callers distinguish "the store was
// never created" (prompt an install) from "the store exists but holds no
// usable version" (prompt a reinstall).
var (
	// ErrStoreMissing means the tool's store directory does not exist.
	ErrStoreMissing = errors.New("tool store directory missing")
	// ErrNoVersions means the store directory holds no real versioned subdirectory.
	ErrNoVersions = errors.New("no tool versions found")
)

// ListDirFunc lists a directory. The signature matches os.ReadDir so the
// default needs no adapter; tests inject fakes.
type ListDirFunc func(path string) ([]os.DirEntry, error)

// Options configures a Resolver.
type Options struct {
	// BasePath is the host's storage directory holding the xPacks store,
	// e.g. an extension's persistent storage directory.
	BasePath string
	// Locator resolves candidate executable paths. Defaults to pathutil.System{}.
	Locator pathutil.Locator
	// ListDir lists directories. Defaults to os.ReadDir.
	ListDir ListDirFunc
}

// Resolver locates installed toolchain binaries under an xpm store.
// All methods are read-only filesystem queries with no state between
// calls; a Resolver is safe for concurrent use.
type Resolver struct {
	basePath string
	locator  pathutil.Locator
	listDir  ListDirFunc
	log      *logutil.ComponentLogger
}

// NewResolver creates a Resolver. Zero-value options get working defaults.
func NewResolver(opts Options) *Resolver {
	locator := opts.Locator
	if locator == nil {
		locator = pathutil.System{}
	}
	listDir := opts.ListDir
	if listDir == nil {
		listDir = os.ReadDir
	}
	return &Resolver{
		basePath: opts.BasePath,
		locator:  locator,
		listDir:  listDir,
		log:      logutil.NewLogger("toolchain"),
	}
}

// BasePath returns the storage directory the resolver scans.
func (r *Resolver) BasePath() string {
	return r.basePath
}

// packageDir returns the store directory holding the tool's version directories.
func (r *Resolver) packageDir(def Definition) string {
	return filepath.Join(r.basePath, XPacksDirName, filepath.FromSlash(def.PackageName))
}

// NewestVersion scans the tool's store directory and returns the greatest
// real version. Only directory entries participate; files are ignored
// regardless of name. Returns ErrStoreMissing when the directory does not
// exist and ErrNoVersions when no entry parses to a real version.
func (r *Resolver) NewestVersion(def Definition) (Version, error) {
	dir := r.packageDir(def)
	start := time.Now()
	entries, err := r.listDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Version{}, fmt.Errorf("%w: %s", ErrStoreMissing, dir)
		}
		return Version{}, fmt.Errorf("listing %s: %w", dir, err)
	}

	var newest *Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v := Newer(newest, ParseVersion(entry.Name()))
		newest = &v
	}
	observeVersionScan(def.Name, time.Since(start))

	if newest == nil || !newest.IsReal() {
		return Version{}, fmt.Errorf("%w for %s in %s", ErrNoVersions, def.Name, dir)
	}
	r.log.Debug("selected newest version", "tool", def.Name, "version", newest.Source)
	return *newest, nil
}

// ManagedToolchainPath resolves the path of a tool installed by xpm under
// the resolver's base path. On success the result carries the resolved
// binary path, or the binary directory for definitions that want the
// containing directory. Version lookup failures and locator misses all
// collapse to NotFound at this layer; the distinction is logged, since
// callers of this entry point only branch on found-or-not.
func (r *Resolver) ManagedToolchainPath(def Definition) Result {
	version, err := r.NewestVersion(def)
	if err != nil {
		r.log.Debug("managed toolchain not resolvable", "tool", def.Name, "error", err)
		recordResolution(def.Name, "managed", OutcomeNotFound)
		return NotFound
	}

	binDir := filepath.Join(r.packageDir(def), version.Source, filepath.FromSlash(def.InstalledPathSuffix))
	resolved, ok := r.locator.Locate(filepath.Join(binDir, def.StandardCommandName))
	if !ok {
		r.log.Debug("standard command not locatable", "tool", def.Name, "dir", binDir)
		recordResolution(def.Name, "managed", OutcomeNotFound)
		return NotFound
	}

	result := Found(resolved)
	if def.WantsContainingDir {
		result = Found(binDir)
	}
	recordResolution(def.Name, "managed", OutcomeFound)
	r.log.Debug("managed toolchain resolved", "tool", def.Name, "path", result.Path)
	return result
}

// CrossCompilerPath validates a user-supplied toolchain location. A path
// pointing straight at the compiler binary yields that binary's parent
// directory; a path to a directory containing the compiler is returned
// unchanged. The empty string is Invalid, not NotFound, so hosts can tell
// "setting missing" from "setting points nowhere useful".
func (r *Resolver) CrossCompilerPath(def Definition, candidate string) Result {
	if candidate == "" {
		recordResolution(def.Name, "cross", OutcomeInvalid)
		return Invalid
	}
	if resolved, ok := r.locator.Locate(candidate); ok {
		recordResolution(def.Name, "cross", OutcomeFound)
		return Found(filepath.Dir(resolved))
	}
	if _, ok := r.locator.Locate(filepath.Join(candidate, def.StandardCommandName)); ok {
		recordResolution(def.Name, "cross", OutcomeFound)
		return Found(candidate)
	}
	r.log.Debug("cross compiler path not resolvable", "tool", def.Name, "candidate", candidate)
	recordResolution(def.Name, "cross", OutcomeNotFound)
	return NotFound
}

// ToolPath resolves a user-supplied path against a tool definition. The
// raw candidate is tried first, then the standard command name under it,
// then each alternate command name in declaration order. The first
// successful resolution wins.
func (r *Resolver) ToolPath(def Definition, candidate string) Result {
	if candidate == "" {
		recordResolution(def.Name, "tool", OutcomeInvalid)
		return Invalid
	}
	if resolved, ok := r.locator.Locate(candidate); ok {
		recordResolution(def.Name, "tool", OutcomeFound)
		return Found(resolved)
	}
	if resolved, ok := r.locator.Locate(filepath.Join(candidate, def.StandardCommandName)); ok {
		recordResolution(def.Name, "tool", OutcomeFound)
		return Found(resolved)
	}
	for _, name := range def.OtherCommandNames {
		if resolved, ok := r.locator.Locate(filepath.Join(candidate, name)); ok {
			recordResolution(def.Name, "tool", OutcomeFound)
			return Found(resolved)
		}
	}
	r.log.Debug("tool path not resolvable", "tool", def.Name, "candidate", candidate)
	recordResolution(def.Name, "tool", OutcomeNotFound)
	return NotFound
}
