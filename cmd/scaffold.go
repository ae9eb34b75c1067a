package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qacheck.dev/pkg/qacheck/internal/domain"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

const scaffoldLongDescription = `Create <name>.test.<ext> next to the given source file.

The backend template (named import plus a toBeDefined smoke test) is used
unless the path contains "frontend" and the file name starts with an
uppercase letter, in which case a component template is written. A path
containing "backend" always gets the backend template.

Existing test files are never overwritten. A missing target, a directory
target or an existing test file is reported and the command exits cleanly.`

// scaffoldCmd represents the scaffold command.
var scaffoldCmd = newScaffoldCmd()

func newScaffoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold <target>",
		Short: "Generate a skeleton test file for a source file",
		Long:  scaffoldLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Scaffold(cmd.Context(), domain.ScaffoldArgs{
				Target:  m.Path(args[0]),
				Verbose: viper.GetBool(logVerboseKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
}
