// internal/chart/plot.go
package chart

import (
	"fmt"
	"image/color"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/stats"
)

// Formats lists the artifact formats PlotEmitter can write.
var Formats = []string{"pdf", "svg", "png", "eps", "jpg", "tif"}

// Palette holds the glyph colors of the three statistics.
type Palette struct {
	Max, Mean, Min color.Color
}

var (
	timePalette = Palette{
		Max:  color.RGBA{R: 221, G: 160, B: 221, A: 255}, // plum
		Mean: color.RGBA{R: 0, G: 128, B: 128, A: 255},   // teal
		Min:  color.RGBA{R: 255, G: 0, B: 255, A: 255},   // magenta
	}
	memoryPalette = Palette{
		Max:  color.RGBA{R: 139, G: 0, B: 0, A: 255},    // darkred
		Mean: color.RGBA{R: 255, G: 140, B: 0, A: 255},  // darkorange
		Min:  color.RGBA{R: 218, G: 165, B: 32, A: 255}, // goldenrod
	}
)

// PaletteFor returns the colors used for metric kind k.
func PaletteFor(k measure.MetricKind) Palette {
	if k == measure.Memory {
		return memoryPalette
	}
	return timePalette
}

// PlotEmitter renders requests with gonum/plot and writes one file per
// request into a directory.
type PlotEmitter struct {
	fs     afero.Fs
	dir    string
	format string
	width  vg.Length
	height vg.Length
	log    logrus.FieldLogger
}

// NewPlotEmitter returns an emitter writing format files into dir.
func NewPlotEmitter(fs afero.Fs, dir, format string, log logrus.FieldLogger) (*PlotEmitter, error) {
	if !slices.Contains(Formats, format) {
		return nil, fmt.Errorf("unsupported chart format %q (want one of %v)", format, Formats)
	}
	return &PlotEmitter{
		fs:     fs,
		dir:    dir,
		format: format,
		width:  8 * vg.Inch,
		height: 6 * vg.Inch,
		log:    log,
	}, nil
}

// Path is where the artifact for req is written.
func (e *PlotEmitter) Path(req PlotRequest) string {
	return filepath.Join(e.dir, req.Name+"."+e.format)
}

// Render draws req: one scatter per statistic against n.
func Render(req PlotRequest) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = req.Caption
	p.Title.TextStyle.Font.Size = 20
	p.X.Label.Text = xLabel + "\nc: " + req.Constant
	p.X.Label.TextStyle.Font.Size = 16
	p.Y.Label.Text = req.YLabel
	p.Y.Label.TextStyle.Font.Size = 16
	p.Add(plotter.NewGrid())

	pal := PaletteFor(req.Kind)
	layers := []struct {
		label  string
		color  color.Color
		coords []stats.Coord
	}{
		{"max", pal.Max, req.Summary.Max()},
		{"avg", pal.Mean, req.Summary.Mean()},
		{"min", pal.Min, req.Summary.Min()},
	}
	for _, l := range layers {
		sc, err := plotter.NewScatter(toXYs(l.coords))
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Name, l.label, err)
		}
		sc.GlyphStyle.Color = l.color
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(l.label, sc)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

func toXYs(coords []stats.Coord) plotter.XYs {
	xys := make(plotter.XYs, len(coords))
	for i, c := range coords {
		xys[i].X = float64(c.N)
		xys[i].Y = c.Value
	}
	return xys
}

// Emit renders req and writes it to Path(req).
func (e *PlotEmitter) Emit(req PlotRequest) error {
	p, err := Render(req)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(e.width, e.height, e.format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", req.Name, err)
	}
	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", e.dir, err)
	}

	path := e.Path(req)
	f, err := e.fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	e.log.WithField("path", path).Info("wrote chart")
	return nil
}
