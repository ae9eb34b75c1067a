package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qacheck.dev/pkg/qacheck/internal/adapter"
	"qacheck.dev/pkg/qacheck/internal/domain"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

const coverageLongDescription = `Walk a directory (default: current directory) and report which .js, .jsx,
.ts and .tsx files have no test named <name>.test.<ext> anywhere in the tree.

Files ending in .test.js, .spec.js, .test.jsx or .spec.jsx, and anything under
a __tests__ directory, count as tests. node_modules, .git, dist, build and
public directories are skipped at any depth.

Any filesystem error aborts the scan with a non-zero exit code.`

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "coverage [target]",
		Short: "Report source files without a matching test file",
		Long:  coverageLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := m.Path(".")
			if len(args) == 1 {
				target = m.Path(args[0])
			}

			var formats []adapter.ReportFormat
			if jsonOutput {
				formats = append(formats, adapter.FormatJSON)
			}

			if yamlOutput {
				formats = append(formats, adapter.FormatYAML)
			}

			return workflow.Coverage(cmd.Context(), domain.CoverageArgs{
				Root:       target,
				Verbose:    viper.GetBool(logVerboseKey),
				Limit:      viper.GetInt(reportLimitKey),
				Formats:    formats,
				ReportPath: m.Path(reportPath),
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, jsonFlagName, false, "also print the full result as JSON")
	cmd.Flags().BoolVar(&yamlOutput, yamlFlagName, false, "also print the full result as YAML")
	cmd.Flags().StringVar(&reportPath, reportFlagName, "", "save the full result to a file (.yaml/.yml for YAML, JSON otherwise)")

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
