package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/stats"
)

// HistogramOptions controls the residual figure.
type HistogramOptions struct {
	Title  string
	Bins   int
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultHistogramOptions matches the 6x4 inch, 120 dpi, 40 bin figure.
func DefaultHistogramOptions(title string) HistogramOptions {
	return HistogramOptions{
		Title:  title,
		Bins:   40,
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
		DPI:    120,
	}
}

// SaveResidualHistogram draws a count histogram of residuals with a Gaussian
// KDE overlay scaled to counts, and writes it as PNG to path.
func SaveResidualHistogram(path string, residuals []float64, opts HistogramOptions) error {
	if len(residuals) == 0 {
		return errors.New("plotting: no residuals to plot")
	}
	p, err := residualPlot(residuals, opts)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return f.Close()
}

func residualPlot(residuals []float64, opts HistogramOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Residual"
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(residuals), opts.Bins)
	if err != nil {
		return nil, fmt.Errorf("build histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 160}
	h.LineStyle.Color = color.RGBA{R: 40, G: 80, B: 120, A: 255}
	p.Add(h)

	kde := stats.NewGaussianKDE(residuals)
	if kde.Bandwidth > 0 && h.Width > 0 {
		scale := float64(len(residuals)) * h.Width
		lo, hi := stats.MinMax(residuals)
		pad := 3 * kde.Bandwidth
		line := plotter.NewFunction(func(x float64) float64 { return kde.Density(x) * scale })
		line.XMin = lo - pad
		line.XMax = hi + pad
		line.Samples = 200
		line.Color = color.RGBA{R: 40, G: 80, B: 120, A: 255}
		line.Width = vg.Points(1.5)
		p.Add(line)
	}
	return p, nil
}
