package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/xpm-core/pathutil"
	"github.com/jongio/xpm-core/testutil"
)

var testDef = Definition{
	Name:                "arm-gcc",
	PackageName:         "@xpack-dev-tools/arm-none-eabi-gcc",
	InstalledPathSuffix: ".content/bin",
	StandardCommandName: "arm-none-eabi-gcc",
	OtherCommandNames:   []string{"arm-none-eabi-g++"},
	WantsContainingDir:  true,
}

func TestNewestVersionPicksGreatest(t *testing.T) {
	base := testutil.TempDir(t)
	pkgDir := testutil.WriteVersionDirs(t, base, testDef.PackageName,
		"1.0.0-0.1.0", "1.2.0-0.1.0", "1.10.0-0.1.0")

	// A file entry must be ignored regardless of its name.
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "9.9.9-9.9.9"), []byte("not a dir"), 0644))

	resolver := NewResolver(Options{BasePath: base})
	v, err := resolver.NewestVersion(testDef)
	require.NoError(t, err)
	assert.Equal(t, "1.10.0-0.1.0", v.Source)
}

func TestNewestVersionPackTieBreak(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.WriteVersionDirs(t, base, testDef.PackageName, "1.2.0-1.1", "1.2.0-2.0")

	resolver := NewResolver(Options{BasePath: base})
	v, err := resolver.NewestVersion(testDef)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0-2.0", v.Source)
}

func TestNewestVersionStoreMissing(t *testing.T) {
	resolver := NewResolver(Options{BasePath: testutil.TempDir(t)})
	_, err := resolver.NewestVersion(testDef)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreMissing))
	assert.False(t, errors.Is(err, ErrNoVersions))
}

func TestNewestVersionNoRealVersions(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.WriteVersionDirs(t, base, testDef.PackageName, "0.0.0-1.0.0", "notaversion")

	resolver := NewResolver(Options{BasePath: base})
	_, err := resolver.NewestVersion(testDef)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoVersions))
	assert.False(t, errors.Is(err, ErrStoreMissing))
}

func TestNewestVersionEmptyStore(t *testing.T) {
	base := testutil.TempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "xPacks", filepath.FromSlash(testDef.PackageName)), 0750))

	resolver := NewResolver(Options{BasePath: base})
	_, err := resolver.NewestVersion(testDef)
	assert.True(t, errors.Is(err, ErrNoVersions))
}

func TestNewestVersionListErrorPropagates(t *testing.T) {
	listErr := errors.New("permission denied")
	resolver := NewResolver(Options{
		BasePath: "/store",
		ListDir:  func(string) ([]os.DirEntry, error) { return nil, listErr },
	})

	_, err := resolver.NewestVersion(testDef)
	require.Error(t, err)
	assert.True(t, errors.Is(err, listErr))
	assert.False(t, errors.Is(err, ErrStoreMissing))
	assert.False(t, errors.Is(err, ErrNoVersions))
}

func TestManagedToolchainPathWantsContainingDir(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.WriteVersionDirs(t, base, testDef.PackageName, "1.2.0-0.1.0")

	binDir := filepath.Join(base, "xPacks", filepath.FromSlash(testDef.PackageName),
		"1.2.0-0.1.0", filepath.FromSlash(".content/bin"))
	candidate := filepath.Join(binDir, "arm-none-eabi-gcc")

	resolver := NewResolver(Options{
		BasePath: base,
		Locator:  pathutil.MapLocator{candidate: candidate},
	})

	res := resolver.ManagedToolchainPath(testDef)
	require.True(t, res.Ok())
	assert.Equal(t, binDir, res.Path, "cross compilers resolve to the bin directory, not the binary")
}

func TestManagedToolchainPathBinaryResult(t *testing.T) {
	def := Definition{
		Name:                "openocd",
		PackageName:         "@xpack-dev-tools/openocd",
		InstalledPathSuffix: ".content/bin",
		StandardCommandName: "openocd",
	}

	base := testutil.TempDir(t)
	testutil.WriteVersionDirs(t, base, def.PackageName, "0.12.0-3")

	candidate := filepath.Join(base, "xPacks", filepath.FromSlash(def.PackageName),
		"0.12.0-3", filepath.FromSlash(".content/bin"), "openocd")

	resolver := NewResolver(Options{
		BasePath: base,
		Locator:  pathutil.MapLocator{candidate: candidate},
	})

	res := resolver.ManagedToolchainPath(def)
	require.True(t, res.Ok())
	assert.Equal(t, candidate, res.Path)
}

func TestManagedToolchainPathNotFound(t *testing.T) {
	base := testutil.TempDir(t)

	// Store missing entirely.
	resolver := NewResolver(Options{BasePath: base, Locator: pathutil.MapLocator{}})
	assert.Equal(t, NotFound, resolver.ManagedToolchainPath(testDef))

	// Version present but the binary is not locatable.
	testutil.WriteVersionDirs(t, base, testDef.PackageName, "1.2.0-0.1.0")
	assert.Equal(t, NotFound, resolver.ManagedToolchainPath(testDef))
}

func TestManagedToolchainPathRealFilesystem(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts are not locatable as executables on Windows")
	}

	base := testutil.TempDir(t)
	binary := testutil.WriteInstallTree(t, base,
		testDef.PackageName, "1.2.0-0.1.0", ".content/bin", "arm-none-eabi-gcc")

	resolver := NewResolver(Options{BasePath: base})
	res := resolver.ManagedToolchainPath(testDef)
	require.True(t, res.Ok())
	assert.Equal(t, filepath.Dir(binary), res.Path)
}

func TestCrossCompilerPath(t *testing.T) {
	binDir := filepath.Join("/opt", "xpack", "bin")
	binary := filepath.Join(binDir, "arm-none-eabi-gcc")

	tests := []struct {
		name      string
		locator   pathutil.MapLocator
		candidate string
		want      Result
	}{
		{
			name:      "direct binary path yields parent directory",
			locator:   pathutil.MapLocator{binary: binary},
			candidate: binary,
			want:      Found(binDir),
		},
		{
			name:      "directory containing compiler is returned unchanged",
			locator:   pathutil.MapLocator{binary: binary},
			candidate: binDir,
			want:      Found(binDir),
		},
		{
			name:      "empty candidate is invalid",
			locator:   pathutil.MapLocator{},
			candidate: "",
			want:      Invalid,
		},
		{
			name:      "nothing resolvable",
			locator:   pathutil.MapLocator{},
			candidate: binDir,
			want:      NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(Options{Locator: tt.locator})
			assert.Equal(t, tt.want, resolver.CrossCompilerPath(testDef, tt.candidate))
		})
	}
}

func TestToolPath(t *testing.T) {
	dir := filepath.Join("/opt", "tools")
	standard := filepath.Join(dir, "arm-none-eabi-gcc")
	alternate := filepath.Join(dir, "arm-none-eabi-g++")

	t.Run("raw candidate wins", func(t *testing.T) {
		resolver := NewResolver(Options{Locator: pathutil.MapLocator{standard: standard}})
		assert.Equal(t, Found(standard), resolver.ToolPath(testDef, standard))
	})

	t.Run("standard command under directory", func(t *testing.T) {
		resolver := NewResolver(Options{Locator: pathutil.MapLocator{standard: standard}})
		assert.Equal(t, Found(standard), resolver.ToolPath(testDef, dir))
	})

	t.Run("first matching alternate wins", func(t *testing.T) {
		def := testDef
		def.StandardCommandName = "missing-command"
		def.OtherCommandNames = []string{"arm-none-eabi-gcc", "arm-none-eabi-g++"}

		// Both alternates resolve; the first one declared must win.
		resolver := NewResolver(Options{Locator: pathutil.MapLocator{
			standard:  standard,
			alternate: alternate,
		}})
		assert.Equal(t, Found(standard), resolver.ToolPath(def, dir))
	})

	t.Run("empty candidate is invalid", func(t *testing.T) {
		resolver := NewResolver(Options{Locator: pathutil.MapLocator{}})
		assert.Equal(t, Invalid, resolver.ToolPath(testDef, ""))
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		resolver := NewResolver(Options{Locator: pathutil.MapLocator{}})
		assert.Equal(t, NotFound, resolver.ToolPath(testDef, dir))
	})
}

func TestResolverDefaults(t *testing.T) {
	resolver := NewResolver(Options{BasePath: "/store"})
	assert.Equal(t, "/store", resolver.BasePath())
	assert.NotNil(t, resolver.locator)
	assert.NotNil(t, resolver.listDir)
}
