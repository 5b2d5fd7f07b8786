package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/results"
	"github.com/mwiater/flowstats/internal/series"
	"github.com/mwiater/flowstats/internal/stats"
)

const dir = "generator/graphs/results"

type recordingEmitter struct {
	got  []chart.PlotRequest
	fail error
}

func (r *recordingEmitter) Emit(req chart.PlotRequest) error {
	if r.fail != nil {
		return r.fail
	}
	r.got = append(r.got, req)
	return nil
}

// resultsFs writes trials files per size and regime for both metric kinds.
// Values grow with n and the trial index so groups are easy to predict.
func resultsFs(t *testing.T, trials int, sizes ...int) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	write := func(name, body string) {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(body), 0o644))
	}
	for _, tag := range []string{"max", "min"} {
		for _, n := range sizes {
			for i := 0; i < trials; i++ {
				base := fmt.Sprintf("Vn%d_c1.5_%s_%d", n, tag, i)
				write(base+"_mem", fmt.Sprintf("dfs\n%d,000\nbfs\n%d\nrtf\n%d\n", n+i, n+i, n+i))
				// three trials per algorithm, median n+i
				write(base+"_res", fmt.Sprintf("dfs\n%d\n%d\n%d\nbfs\n%d\n%d\n%d\nrtf\n%d\n%d\n%d\n",
					n+i+5, n+i, n+i-5, n+i, n+i, n+i, n+i-1, n+i+1, n+i))
			}
		}
	}
	return fs
}

func TestPlan_AllArtifacts(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	p := New(resultsFs(t, 2, 100, 200), dir, Options{
		Trials:     2,
		SortGroups: true,
		Classifier: results.DefaultClassifier,
	}, logger)

	reqs, err := p.Plan()
	require.NoError(t, err)
	require.Len(t, reqs, 12)

	var names []string
	for _, r := range reqs {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"timeDfsOn", "timeBfsOn", "timeRtfOn",
		"timeDfsOn2", "timeBfsOn2", "timeRtfOn2",
		"memDfsOn", "memBfsOn", "memRtfOn",
		"memDfsOn2", "memBfsOn2", "memRtfOn2",
	}, names)

	timeDfs := reqs[0]
	assert.Equal(t, "1.5", timeDfs.Constant)
	assert.Equal(t, []stats.Coord{{N: 100, Value: 100}, {N: 200, Value: 200}}, timeDfs.Summary.Min())
	assert.Equal(t, []stats.Coord{{N: 100, Value: 100.5}, {N: 200, Value: 200.5}}, timeDfs.Summary.Mean())
	assert.Equal(t, []stats.Coord{{N: 100, Value: 101}, {N: 200, Value: 201}}, timeDfs.Summary.Max())

	memDfs := reqs[6]
	assert.Equal(t, []stats.Coord{{N: 100, Value: 100000}, {N: 200, Value: 200000}}, memDfs.Summary.Min())
	assert.Equal(t, []stats.Coord{{N: 100, Value: 101000}, {N: 200, Value: 201000}}, memDfs.Summary.Max())
}

func TestRun_EmitsEveryRequest(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	p := New(resultsFs(t, 3, 50), dir, Options{
		Trials:     3,
		Kinds:      []measure.MetricKind{measure.Memory},
		Classifier: results.DefaultClassifier,
	}, logger)

	rec := &recordingEmitter{}
	reqs, err := p.Run(rec)
	require.NoError(t, err)
	assert.Len(t, reqs, 6)
	assert.Equal(t, reqs, rec.got)
}

func TestRun_EmitFailure(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	boom := errors.New("disk full")
	p := New(resultsFs(t, 1, 10), dir, Options{Trials: 1, Classifier: results.DefaultClassifier}, logger)
	_, err := p.Run(&recordingEmitter{fail: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRun_AbortsBeforeEmitting(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	t.Run("malformed filename", func(t *testing.T) {
		fs := resultsFs(t, 2, 100)
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "Vn100_max_9_mem"), []byte("dfs\n1\nbfs\n1\nrtf\n1\n"), 0o644))
		rec := &recordingEmitter{}
		_, err := New(fs, dir, Options{Trials: 2, Classifier: results.DefaultClassifier}, logger).Run(rec)
		assert.ErrorIs(t, err, results.ErrMalformedFilename)
		assert.Empty(t, rec.got)
	})

	t.Run("missing trial file", func(t *testing.T) {
		fs := resultsFs(t, 2, 100, 200)
		require.NoError(t, fs.Remove(filepath.Join(dir, "Vn200_c1.5_min_1_res")))
		rec := &recordingEmitter{}
		_, err := New(fs, dir, Options{Trials: 2, Classifier: results.DefaultClassifier}, logger).Run(rec)
		var ge *stats.GroupingError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, measure.Time, ge.Kind)
		assert.Equal(t, measure.Dense, ge.Regime)
		assert.Equal(t, measure.DFS, ge.Algorithm)
		assert.Empty(t, rec.got)
	})

	t.Run("no input files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll(dir, 0o755))
		rec := &recordingEmitter{}
		_, err := New(fs, dir, Options{Trials: 2, Classifier: results.DefaultClassifier}, logger).Run(rec)
		assert.ErrorIs(t, err, series.ErrNoInputFiles)
		assert.Empty(t, rec.got)
	})
}

func TestPlan_RejectsNonPositiveTrials(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	_, err := New(resultsFs(t, 1, 10), dir, Options{Trials: 0, Classifier: results.DefaultClassifier}, logger).Plan()
	assert.Error(t, err)
}
