// Package pathutil provides cross-platform executable location utilities.
//
// The central abstraction is the Locator interface: given a candidate
// string, a Locator returns the resolved absolute path of an executable or
// reports that nothing usable lives there. The toolchain package consumes
// a Locator when validating tool install paths, and tests substitute fakes
// so resolution logic runs against an in-memory table instead of the real
// PATH and filesystem.
//
// # Locators
//
//   - System resolves against the real PATH and filesystem via exec.LookPath,
//     appending .exe on Windows when the candidate has no extension.
//   - MapLocator is a deterministic fake backed by a map, for tests.
//
// # Example: Locating a Tool
//
//	var loc pathutil.Locator = pathutil.System{}
//	if path, ok := loc.Locate("/opt/xpacks/bin/arm-none-eabi-gcc"); ok {
//	    fmt.Printf("compiler at %s\n", path)
//	}
//
// # Convenience Helpers
//
// FindToolInPath wraps PATH lookup for bare command names,
// SearchToolInSystemPath probes common installation directories for tools
// that are installed but not on PATH, and InstallSuggestion maps known
// tool names to installation instructions for "not found" messages.
//
// # Cross-Platform Behavior
//
// On Windows the .exe extension is appended automatically when missing;
// other extensions (.cmd, .bat) are not probed. On Unix a candidate that
// names an explicit path must be a regular file with an execute bit set.
package pathutil
