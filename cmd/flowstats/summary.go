// cmd/flowstats/summary.go
package flowstats

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/flowstats/internal/pipeline"
	"github.com/mwiater/flowstats/internal/report"
)

// summaryCmd implements 'summary <trials>', which prints the aggregated
// statistics without rendering charts.
var summaryCmd = &cobra.Command{
	Use:   "summary <trials>",
	Short: "Print min/avg/max tables without writing charts",
	Long:  `The 'summary' command runs the same aggregation as 'plot' and prints one table per algorithm, density regime and metric kind, but writes no files.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trials, err := parseTrials(args[0])
		if err != nil {
			return err
		}
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		reqs, err := pipeline.New(osFs, cfg.ResultsDir, cfg.PipelineOptions(trials), log).Plan()
		if err != nil {
			return err
		}
		dumpRequests(cmd, cfg, reqs)
		report.Print(cmd.OutOrStdout(), reqs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
