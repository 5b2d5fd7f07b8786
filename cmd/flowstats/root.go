// cmd/flowstats/root.go
package flowstats

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/flowstats/internal/config"
)

// rootCmd is the base Cobra command for the flowstats application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:          "flowstats",
	Short:        "Summarize and plot max-flow benchmark results",
	Long:         `flowstats reads the time and memory measurements written by the max-flow test runner, reduces repeated trials to min/avg/max per graph size and renders one chart per algorithm, density regime and metric.`,
	SilenceUsage: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It exits the process with a non-zero status code on failure; cobra has
// already printed the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "optional config file (yaml, json or toml)")
	flags.StringP("results", "r", config.Defaults[config.KeyResultsDir].(string), "directory holding the *_res and *_mem result files")
	flags.String("kind", config.Defaults[config.KeyKind].(string), "metric kind to process: time, memory or all")
	flags.String("marker", config.Defaults[config.KeyMarker].(string), "filename substring that tags the marked regime")
	flags.String("marked-regime", config.Defaults[config.KeyMarkedRegime].(string), "regime of files containing the marker: sparse or dense")
	flags.Bool("lenient", false, "skip result files with a malformed body instead of aborting")
	flags.Bool("sort-groups", true, "sort each group by value before taking min and max")
	flags.Bool("debug", false, "enable debug logging and dump plot requests")

	viper.BindPFlag(config.KeyConfig, flags.Lookup("config"))
	viper.BindPFlag(config.KeyResultsDir, flags.Lookup("results"))
	viper.BindPFlag(config.KeyKind, flags.Lookup("kind"))
	viper.BindPFlag(config.KeyMarker, flags.Lookup("marker"))
	viper.BindPFlag(config.KeyMarkedRegime, flags.Lookup("marked-regime"))
	viper.BindPFlag(config.KeyLenient, flags.Lookup("lenient"))
	viper.BindPFlag(config.KeySortGroups, flags.Lookup("sort-groups"))
	viper.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
}
