// Package toolchain resolves filesystem locations of xpm-installed build
// tool binaries (cross compilers, debug probes, emulators) for editor
// extension hosts.
//
// xpm installs each tool package into a store directory laid out as
//
//	<basePath>/xPacks/<packageName>/<toolVersion>-<packVersion>/<suffix>/<command>
//
// where <toolVersion> is the upstream release (e.g. the GCC version) and
// <packVersion> is the xpm package release. This package scans the version
// directories, picks the newest install, and confirms the expected
// executable actually exists before handing the path to the host.
//
// # Resolving a Managed Toolchain
//
//	resolver := toolchain.NewResolver(toolchain.Options{
//	    BasePath: extensionStorageDir,
//	})
//
//	def := catalog.MustFind(catalog.Builtin(), "arm-gcc")
//	if res := resolver.ManagedToolchainPath(def); res.Ok() {
//	    // res.Path is the bin directory for cross compilers, or the
//	    // resolved binary path for single-command tools.
//	}
//
// # Validating User-Supplied Paths
//
// Hosts also accept manually configured tool locations. CrossCompilerPath
// and ToolPath validate those against the same executable locator:
//
//	res := resolver.CrossCompilerPath(def, userSetting)
//	switch res.Outcome {
//	case toolchain.OutcomeFound:
//	    // use res.Path
//	case toolchain.OutcomeInvalid:
//	    // setting was empty or unusable, prompt for a value
//	case toolchain.OutcomeNotFound:
//	    // path exists in settings but nothing executable lives there
//	}
//
// # Failure Model
//
// Path operations return an explicit Result instead of a sentinel value.
// NewestVersion distinguishes a store directory that was never created
// (ErrStoreMissing, prompt an install) from one holding no usable version
// (ErrNoVersions, prompt a reinstall). All operations are read-only
// filesystem queries; a Resolver is safe for concurrent use and holds no
// state between calls.
//
// The executable locator and directory listing are injected capabilities
// (see Options), so tests can substitute fakes without touching the real
// PATH or filesystem.
package toolchain
