// Package catalog provides the set of managed tool definitions: a built-in
// catalog of the standard xpm embedded toolchain packages, plus loading of
// host-supplied YAML catalogs.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jongio/xpm-core/toolchain"
)

// File is the on-disk catalog format.
//
//	tools:
//	  - name: arm-gcc
//	    packageName: "@xpack-dev-tools/arm-none-eabi-gcc"
//	    installedPathSuffix: .content/bin
//	    standardCommandName: arm-none-eabi-gcc
//	    wantsContainingDir: true
type File struct {
	Tools []toolchain.Definition `yaml:"tools"`
}

// Load reads tool definitions from a YAML catalog file. Every entry must
// carry a name, package name, and standard command name.
func Load(path string) ([]toolchain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Tools) == 0 {
		return nil, fmt.Errorf("catalog %s defines no tools", path)
	}

	for i, def := range f.Tools {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return f.Tools, nil
}

func validate(def toolchain.Definition) error {
	if def.Name == "" {
		return errors.New("name is required")
	}
	if def.PackageName == "" {
		return fmt.Errorf("packageName is required for %q", def.Name)
	}
	if def.StandardCommandName == "" {
		return fmt.Errorf("standardCommandName is required for %q", def.Name)
	}
	return nil
}

// Builtin returns the standard xpm embedded toolchain set. The returned
// slice is a fresh copy; callers may modify it.
func Builtin() []toolchain.Definition {
	return []toolchain.Definition{
		{
			Name:                "arm-gcc",
			PackageName:         "@xpack-dev-tools/arm-none-eabi-gcc",
			InstalledPathSuffix: ".content/bin",
			StandardCommandName: "arm-none-eabi-gcc",
			OtherCommandNames:   []string{"arm-none-eabi-g++"},
			WantsContainingDir:  true,
		},
		{
			Name:                "riscv-gcc",
			PackageName:         "@xpack-dev-tools/riscv-none-elf-gcc",
			InstalledPathSuffix: ".content/bin",
			StandardCommandName: "riscv-none-elf-gcc",
			OtherCommandNames:   []string{"riscv-none-elf-g++"},
			WantsContainingDir:  true,
		},
		{
			Name:                "openocd",
			PackageName:         "@xpack-dev-tools/openocd",
			InstalledPathSuffix: ".content/bin",
			StandardCommandName: "openocd",
		},
		{
			Name:                "qemu-arm",
			PackageName:         "@xpack-dev-tools/qemu-arm",
			InstalledPathSuffix: ".content/bin",
			StandardCommandName: "qemu-system-arm",
			// Older releases shipped the binary under the Eclipse name.
			OtherCommandNames: []string{"qemu-system-gnuarmeclipse"},
		},
		{
			Name:                "arm-gdb",
			PackageName:         "@xpack-dev-tools/arm-none-eabi-gcc",
			InstalledPathSuffix: ".content/bin",
			StandardCommandName: "arm-none-eabi-gdb",
		},
	}
}

// Find returns the definition with the given name.
func Find(defs []toolchain.Definition, name string) (toolchain.Definition, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}
	return toolchain.Definition{}, false
}
