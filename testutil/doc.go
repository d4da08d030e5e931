// Package testutil provides common testing utilities for xpm-core and its
// host extensions.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Fabricating xpm-style install trees with executable stubs (WriteInstallTree)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestResolution(t *testing.T) {
//	    base := testutil.TempDir(t)
//	    testutil.WriteInstallTree(t, base,
//	        "@xpack-dev-tools/openocd", "0.12.0-3", ".content/bin", "openocd")
//
//	    resolver := toolchain.NewResolver(toolchain.Options{BasePath: base})
//	    // ...
//	}
package testutil
