package flowstats

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns everything written
// to stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return b.String(), err
}

// flagsFor pins every persistent flag, since cobra keeps flag values
// between executions in one process.
func flagsFor(results string) []string {
	return []string{
		"--results", results,
		"--kind", "all",
		"--marker", "max",
		"--marked-regime", "sparse",
		"--lenient=false",
		"--sort-groups=true",
		"--debug=false",
	}
}

// writeResults lays out trials result files per size in both regimes for
// both metric kinds.
func writeResults(t *testing.T, trials int, sizes ...int) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, tag := range []string{"max", "min"} {
		for _, n := range sizes {
			for i := 0; i < trials; i++ {
				base := filepath.Join(dir, fmt.Sprintf("Vn%d_c2_%s_%d", n, tag, i))
				require.NoError(t, os.WriteFile(base+"_mem",
					[]byte(fmt.Sprintf("dfs\n%d,000\nbfs\n%d\nrtf\n%d\n", n+i, n+i, n+i)), 0o644))
				require.NoError(t, os.WriteFile(base+"_res",
					[]byte(fmt.Sprintf("dfs\n%d\n%d\nbfs\n%d\n%d\nrtf\n%d\n%d\n", n, n+i, n, n+i, n, n+i)), 0o644))
			}
		}
	}
	return dir
}

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]*cobra.Command{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = c
	}
	for _, want := range []string{"plot", "summary", "list"} {
		require.Contains(t, have, want)
	}
	sub := map[string]bool{}
	for _, sc := range have["list"].Commands() {
		sub[sc.Name()] = true
	}
	assert.True(t, sub["commands"])
	assert.True(t, sub["files"])
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(rootCmd)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	out, err := execute(t, "nonexistent")
	require.Error(t, err)
	assert.Contains(t, out, `unknown command "nonexistent" for "flowstats"`)
}

func TestListCommands_PrintsTree(t *testing.T) {
	var buf bytes.Buffer
	printCommandTree(&buf, rootCmd)
	out := buf.String()
	assert.Contains(t, out, "flowstats plot")
	assert.Contains(t, out, "<trials>")
	assert.Contains(t, out, "flowstats list files")
}

func TestCommandEntries_DepthAndArgs(t *testing.T) {
	byPath := map[string]commandEntry{}
	for _, e := range commandEntries(rootCmd, 0) {
		byPath[e.path] = e
	}
	require.Contains(t, byPath, "flowstats summary")
	assert.Equal(t, 1, byPath["flowstats summary"].depth)
	assert.Equal(t, "<trials>", byPath["flowstats summary"].args)
	require.Contains(t, byPath, "flowstats list commands")
	assert.Equal(t, 2, byPath["flowstats list commands"].depth)
	assert.Empty(t, byPath["flowstats list commands"].args)
	assert.NotContains(t, byPath, "flowstats help")
}

func TestParseTrials(t *testing.T) {
	n, err := parseTrials("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = parseTrials("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"abc", "0", "-3", "+3", "2.5", "5.9", "010", "0x5", " 5", ""} {
		_, err := parseTrials(bad)
		assert.Error(t, err, bad)
	}
}

func TestPlotCmd_WritesEveryChart(t *testing.T) {
	results := writeResults(t, 2, 100, 200)
	out := filepath.Join(t.TempDir(), "plots")

	args := append([]string{"plot", "2", "--out", out, "--format", "svg"}, flagsFor(results)...)
	stdout, err := execute(t, args...)
	require.NoError(t, err, stdout)

	for _, kind := range []string{"time", "mem"} {
		for _, alg := range []string{"Dfs", "Bfs", "Rtf"} {
			for _, regime := range []string{"On", "On2"} {
				assert.FileExists(t, filepath.Join(out, kind+alg+regime+".svg"))
			}
		}
	}
	assert.Contains(t, stdout, "Memory consumption | m = O(n^2) : Relabel-to-Front")
}

func TestPlotCmd_GroupingErrorWritesNothing(t *testing.T) {
	results := writeResults(t, 2, 100, 200)
	require.NoError(t, os.Remove(filepath.Join(results, "Vn100_c2_min_0_mem")))
	out := filepath.Join(t.TempDir(), "plots")

	args := append([]string{"plot", "2", "--out", out, "--format", "pdf"}, flagsFor(results)...)
	stdout, err := execute(t, args...)
	require.Error(t, err)
	assert.Contains(t, stdout, "memory/dense/dfs")
	assert.NoDirExists(t, out)
}

func TestSummaryCmd(t *testing.T) {
	results := writeResults(t, 3, 50)

	args := append([]string{"summary", "3"}, flagsFor(results)...)
	args = append(args, "--kind", "time")
	stdout, err := execute(t, args...)
	require.NoError(t, err, stdout)
	assert.Contains(t, stdout, "timeBfsOn2  c: 2")
	assert.NotContains(t, stdout, "memBfsOn2")
}

func TestSummaryCmd_RejectsBadTrials(t *testing.T) {
	results := writeResults(t, 1, 10)
	args := append([]string{"summary", "many"}, flagsFor(results)...)
	_, err := execute(t, args...)
	assert.Error(t, err)
}

func TestListFilesCmd(t *testing.T) {
	results := writeResults(t, 1, 10)
	require.NoError(t, os.WriteFile(filepath.Join(results, "Vn_max_mem"), nil, 0o644))

	args := append([]string{"list", "files"}, flagsFor(results)...)
	stdout, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vn10_c2_max_0_res", "sparse", "O(n)", "10", "2"}, tableRow(stdout, "Vn10_c2_max_0_res"))
	assert.Equal(t, []string{"Vn10_c2_min_0_mem", "dense", "O(n^2)", "10", "2"}, tableRow(stdout, "Vn10_c2_min_0_mem"))
	assert.True(t, strings.Contains(stdout, "malformed result filename"), stdout)
}

// tableRow returns the trimmed cells of the first table line mentioning name.
func tableRow(out, name string) []string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, name) || !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		return cells
	}
	return nil
}

func TestSummaryCmd_RejectsOctalLookingTrials(t *testing.T) {
	results := writeResults(t, 2, 10)
	args := append([]string{"summary", "010"}, flagsFor(results)...)
	_, err := execute(t, args...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `trial count "010" is not a positive decimal integer`)
}
