package results

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/flowstats/internal/measure"
)

func newResultsFs(t *testing.T, dir string, names ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, n), []byte("dfs\n1\nbfs\n2\nrtf\n3\n"), 0o644))
	}
	return fs
}

func TestLocator_PartitionIsComplete(t *testing.T) {
	names := []string{
		"Vn100_c1_max_0_mem", "Vn100_c1_min_0_mem", "Vn200_c1_max_0_mem",
		"Vn100_c1_max_0_res", "Vn100_c1_min_0_res", "notes.txt",
	}
	fs := newResultsFs(t, "results", names...)
	require.NoError(t, fs.MkdirAll("results/archive_mem", 0o755))

	l := NewLocator(fs, "results", DefaultClassifier)
	p, err := l.Locate(measure.Memory)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Vn100_c1_max_0_mem", "Vn200_c1_max_0_mem"}, p.Sparse)
	assert.ElementsMatch(t, []string{"Vn100_c1_min_0_mem"}, p.Dense)
	assert.Equal(t, 3, p.Len())

	seen := map[string]int{}
	for _, r := range measure.Regimes {
		for _, f := range p.Files(r) {
			seen[f]++
		}
	}
	for _, n := range names {
		if strings.HasSuffix(n, "_mem") {
			assert.Equal(t, 1, seen[n], n)
		}
	}
}

func TestLocator_EmptyDirectory(t *testing.T) {
	fs := newResultsFs(t, "results")
	p, err := NewLocator(fs, "results", DefaultClassifier).Locate(measure.Time)
	require.NoError(t, err)
	assert.Empty(t, p.Sparse)
	assert.Empty(t, p.Dense)
}

func TestLocator_MissingDirectory(t *testing.T) {
	_, err := NewLocator(afero.NewMemMapFs(), "nowhere", DefaultClassifier).Locate(measure.Time)
	assert.Error(t, err)
}
