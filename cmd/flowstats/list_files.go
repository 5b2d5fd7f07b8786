// cmd/flowstats/list_files.go
package flowstats

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/results"
)

// filesCmd implements 'list files', which shows how the result files are
// split by metric kind and density regime.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List result files by metric kind and regime",
	Long:  `The 'files' subcommand lists the result files found in the results directory, grouped by metric kind and density regime, with the size and constant decoded from each name.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		kindStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

		out := cmd.OutOrStdout()
		locator := results.NewLocator(osFs, cfg.ResultsDir, cfg.Classifier)
		for _, kind := range cfg.Kinds {
			part, err := locator.Locate(kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, kindStyle.Render(fmt.Sprintf("%s (%d files):", kind, part.Len())))

			tw := tablewriter.NewWriter(out)
			tw.SetHeader([]string{"file", "regime", "m", "n", "c"})
			tw.SetAutoWrapText(false)
			tw.SetAutoFormatHeaders(false)
			var malformed []string
			for _, regime := range measure.Regimes {
				files := slices.Clone(part.Files(regime))
				slices.Sort(files)
				for _, name := range files {
					md, err := results.ParseFilename(name, cfg.Classifier)
					if err != nil {
						malformed = append(malformed, err.Error())
						continue
					}
					tw.Append([]string{name, regime.String(), regime.Notation(), fmt.Sprint(md.N), md.Constant})
				}
			}
			tw.Render()
			for _, msg := range malformed {
				fmt.Fprintln(out, errorStyle.Render("  >>> "+msg))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(filesCmd)
}
