// Package doctor provides a reusable "doctor" command that reports which
// managed toolchains are installed and resolvable under a host's storage
// directory, eliminating duplicated availability-check boilerplate across
// extension hosts.
package doctor

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/xpm-core/catalog"
	"github.com/jongio/xpm-core/cliout"
	"github.com/jongio/xpm-core/logutil"
	"github.com/jongio/xpm-core/pathutil"
	"github.com/jongio/xpm-core/toolchain"
)

// Report is the JSON-serializable outcome of a doctor run.
type Report struct {
	BasePath string       `json:"basePath"`
	Tools    []ToolStatus `json:"tools"`
}

// ToolStatus describes the resolution of a single tool.
type ToolStatus struct {
	Name    string `json:"name"`
	Package string `json:"package"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// MissingCount returns the number of tools that did not resolve.
func (r Report) MissingCount() int {
	missing := 0
	for _, tool := range r.Tools {
		if !tool.Found {
			missing++
		}
	}
	return missing
}

// Run resolves every definition through the resolver and assembles a report.
func Run(resolver *toolchain.Resolver, defs []toolchain.Definition) Report {
	report := Report{BasePath: resolver.BasePath()}
	for _, def := range defs {
		status := ToolStatus{Name: def.Name, Package: def.PackageName}
		if res := resolver.ManagedToolchainPath(def); res.Ok() {
			status.Found = true
			status.Path = res.Path
		} else {
			status.Hint = pathutil.InstallSuggestion(def.StandardCommandName)
		}
		report.Tools = append(report.Tools, status)
	}
	return report
}

// NewCommand creates a doctor command hosts mount to report toolchain
// availability. outputFormat is an optional pointer to the host's global
// output format flag (e.g. "json"); nil defaults to human-readable output.
func NewCommand(defaultBasePath string, outputFormat *string) *cobra.Command {
	var basePath string
	var catalogPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check which managed toolchains are installed and resolvable",
		RunE: func(cmd *cobra.Command, args []string) error {
			logFlags(cmd)

			defs := catalog.Builtin()
			if catalogPath != "" {
				loaded, err := catalog.Load(catalogPath)
				if err != nil {
					return err
				}
				defs = loaded
			}

			resolver := toolchain.NewResolver(toolchain.Options{BasePath: basePath})
			report := Run(resolver, defs)

			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}
			if format == "json" {
				if err := cliout.PrintJSON(report); err != nil {
					return err
				}
			} else {
				printReport(report)
			}

			if missing := report.MissingCount(); strict && missing > 0 {
				return fmt.Errorf("%d toolchain(s) not resolvable under %s", missing, basePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&basePath, "base-path", defaultBasePath, "Storage directory holding the xPacks store")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog overriding the built-in tool set")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any tool is missing")
	return cmd
}

// printReport renders the human-readable report.
func printReport(report Report) {
	cliout.Header("Toolchain Status")
	cliout.Label("Store", report.BasePath)
	for _, tool := range report.Tools {
		if tool.Found {
			cliout.Success("%s (%s): %s", tool.Name, tool.Package, tool.Path)
		} else {
			cliout.Failure("%s (%s): not installed", tool.Name, tool.Package)
			if tool.Hint != "" {
				cliout.Item("%s", tool.Hint)
			}
		}
	}
}

// logFlags records the effective flag values at debug level, so support
// bundles show how a doctor run was invoked.
func logFlags(cmd *cobra.Command) {
	log := logutil.NewLogger("doctor")
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		log.Debug("flag", "name", f.Name, "value", f.Value.String(), "changed", f.Changed)
	})
}
