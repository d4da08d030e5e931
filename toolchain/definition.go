package toolchain

// Definition describes one managed build tool: which xpm package installs
// it and which executable filenames identify it. Definitions are static
// configuration owned by the host; this package only reads them.
type Definition struct {
	// Name is the short identifier hosts use to refer to the tool.
	Name string `yaml:"name" json:"name"`

	// PackageName is the xpm package name, e.g. "@xpack-dev-tools/arm-none-eabi-gcc".
	PackageName string `yaml:"packageName" json:"packageName"`

	// InstalledPathSuffix is the relative path from a version directory to
	// the directory holding the binaries, e.g. ".content/bin".
	InstalledPathSuffix string `yaml:"installedPathSuffix" json:"installedPathSuffix"`

	// StandardCommandName is the executable filename probed first.
	StandardCommandName string `yaml:"standardCommandName" json:"standardCommandName"`

	// OtherCommandNames are fallback executable filenames probed in order
	// when the standard command does not resolve.
	OtherCommandNames []string `yaml:"otherCommandNames,omitempty" json:"otherCommandNames,omitempty"`

	// WantsContainingDir marks tools whose consumers expect the directory
	// holding the binaries rather than a specific binary path. Cross
	// compilers feed directory-style configuration values downstream.
	WantsContainingDir bool `yaml:"wantsContainingDir,omitempty" json:"wantsContainingDir,omitempty"`
}
