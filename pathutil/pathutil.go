// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	path, err := exec.LookPath(ExeName(toolName))
	if err != nil {
		return ""
	}
	return path
}

// SearchToolInSystemPath searches for a tool in common system directories.
// This is useful for finding tools that are installed but not in the
// current PATH, e.g. right after an installer ran in another shell.
// Returns the full path to the executable if found, empty string otherwise.
func SearchToolInSystemPath(toolName string) string {
	exeName := ExeName(toolName)

	var searchPaths []string
	if runtime.GOOS == "windows" {
		searchPaths = []string{
			"C:\\Program Files\\Git\\cmd",
			"C:\\Program Files\\nodejs",
			"C:\\Program Files (x86)\\Arm GNU Toolchain arm-none-eabi\\bin",
			filepath.Join(os.Getenv("APPDATA"), "npm"),
			filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming", "xPacks"),
			filepath.Join(os.Getenv("USERPROFILE"), "go", "bin"),
		}
	} else {
		homeDir, _ := os.UserHomeDir()
		searchPaths = []string{
			"/usr/local/bin",
			"/usr/bin",
			"/bin",
			"/opt/homebrew/bin",
			filepath.Join(homeDir, ".local", "bin"),
			filepath.Join(homeDir, "go", "bin"),
		}
	}

	for _, dir := range searchPaths {
		fullPath := filepath.Join(dir, exeName)
		if IsExecutable(fullPath) {
			return fullPath
		}
	}

	return ""
}

// InstallSuggestion returns a suggestion for how to install a missing tool.
func InstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"xpm":                "Install with 'npm install --global xpm@latest' (requires Node.js)",
		"node":               "Install from https://nodejs.org/",
		"npm":                "Install Node.js from https://nodejs.org/",
		"git":                "Install from https://git-scm.com/downloads",
		"arm-none-eabi-gcc":  "Install with 'xpm install @xpack-dev-tools/arm-none-eabi-gcc@latest'",
		"arm-none-eabi-gdb":  "Install with 'xpm install @xpack-dev-tools/arm-none-eabi-gcc@latest'",
		"riscv-none-elf-gcc": "Install with 'xpm install @xpack-dev-tools/riscv-none-elf-gcc@latest'",
		"openocd":            "Install with 'xpm install @xpack-dev-tools/openocd@latest'",
		"qemu-system-arm":    "Install with 'xpm install @xpack-dev-tools/qemu-arm@latest'",
		"make":               "Install with 'xpm install @xpack-dev-tools/windows-build-tools@latest' on Windows, or via your package manager",
	}

	if suggestion, ok := suggestions[toolName]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}
