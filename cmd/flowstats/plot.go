// cmd/flowstats/plot.go
package flowstats

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/config"
	"github.com/mwiater/flowstats/internal/pipeline"
	"github.com/mwiater/flowstats/internal/report"
)

// plotCmd implements 'plot <trials>', which aggregates every result file
// and writes one chart per algorithm, regime and metric kind.
var plotCmd = &cobra.Command{
	Use:   "plot <trials>",
	Short: "Render min/avg/max charts from the result files",
	Long:  `The 'plot' command groups the result files by graph size, reduces each group of <trials> files to min, avg and max, prints the statistics and writes one chart per algorithm, density regime and metric kind (up to 12 files). Nothing is written if any file fails to parse or group.`,
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
		emitter, err := chart.NewPlotEmitter(osFs, cfg.OutputDir, cfg.Format, log)
		if err != nil {
			return err
		}

		reqs, err := pipeline.New(osFs, cfg.ResultsDir, cfg.PipelineOptions(trials), log).Run(emitter)
		if err != nil {
			return err
		}
		dumpRequests(cmd, cfg, reqs)
		report.Print(cmd.OutOrStdout(), reqs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringP("out", "o", config.Defaults[config.KeyOutputDir].(string), "directory the charts are written to")
	plotCmd.Flags().StringP("format", "f", config.Defaults[config.KeyFormat].(string), "chart format: pdf, svg, png, eps, jpg or tif")
	viper.BindPFlag(config.KeyOutputDir, plotCmd.Flags().Lookup("out"))
	viper.BindPFlag(config.KeyFormat, plotCmd.Flags().Lookup("format"))
}
