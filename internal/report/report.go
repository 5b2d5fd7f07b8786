// internal/report/report.go
// Package report prints aggregated statistics to a terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/measure"
)

var (
	captionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	constantStyle = lipgloss.NewStyle().Faint(true)
)

// Print writes one table of n, trials, min, avg, max and std per request.
// Memory tables carry an extra column with the mean in SI byte units.
func Print(w io.Writer, reqs []chart.PlotRequest) {
	for _, req := range reqs {
		caption := strings.ReplaceAll(req.Caption, "\n", " | ")
		fmt.Fprintln(w, captionStyle.Render(caption))
		fmt.Fprintln(w, constantStyle.Render(fmt.Sprintf("%s  c: %s", req.Name, req.Constant)))
		fmt.Fprintln(w, Table(req).View())
		fmt.Fprintln(w)
	}
}

// Table builds the static statistics table for req.
func Table(req chart.PlotRequest) table.Model {
	headers := []string{"n", "trials", "min", "avg", "max", "std"}
	if req.Kind == measure.Memory {
		headers = append(headers, "avg size")
	}

	rows := make([]table.Row, 0, len(req.Summary.Groups))
	for _, g := range req.Summary.Groups {
		row := table.Row{
			humanize.Comma(int64(g.N)),
			fmt.Sprint(g.Size),
			humanize.Comma(g.Min),
			humanize.CommafWithDigits(g.Mean, 2),
			humanize.Comma(g.Max),
			humanize.CommafWithDigits(g.Std, 2),
		}
		if req.Kind == measure.Memory {
			row = append(row, humanize.Bytes(uint64(math.Round(g.Mean))))
		}
		rows = append(rows, row)
	}

	// Columns are as wide as their widest cell so nothing is truncated.
	cols := make([]table.Column, len(headers))
	total := 0
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, r := range rows {
			width = max(width, lipgloss.Width(r[i]))
		}
		cols[i] = table.Column{Title: h, Width: width}
		total += width + 2
	}

	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithWidth(total),
		table.WithHeight(len(rows)+2),
	)
}
