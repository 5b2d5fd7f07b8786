// cmd/flowstats/run.go
package flowstats

import (
	"fmt"
	"regexp"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/config"
)

// osFs is the filesystem every command reads from and writes to.
var osFs = afero.NewOsFs()

var trialsPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// parseTrials reads the positional trial count: the number of result
// files written per input size. Only plain positive decimals are accepted,
// so cast never sees a sign, a fraction or a base prefix.
func parseTrials(arg string) (int, error) {
	if !trialsPattern.MatchString(arg) {
		return 0, fmt.Errorf("trial count %q is not a positive decimal integer", arg)
	}
	t, err := cast.ToIntE(arg)
	if err != nil {
		return 0, fmt.Errorf("trial count %q: %w", arg, err)
	}
	return t, nil
}

// setup resolves the configuration and the logger of one command run.
func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return cfg, nil, err
	}
	log := config.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	return cfg, log, nil
}

// dumpRequests prints every plot request when debugging.
func dumpRequests(cmd *cobra.Command, cfg config.Config, reqs []chart.PlotRequest) {
	if !cfg.Debug {
		return
	}
	for _, req := range reqs {
		pp.Fprintln(cmd.ErrOrStderr(), req)
	}
}
