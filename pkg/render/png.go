package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyFrame = errors.New("frame has no points")

// 600x300pt renders as 800x400px at the default 96 dpi.
const (
	DefaultWidth  vg.Length = 600
	DefaultHeight vg.Length = 300
)

// WritePNG draws the frame as a filled line chart.
func WritePNG(w io.Writer, f Frame, width, height vg.Length) error {
	values := f.Values()
	if f.Len() == 0 || len(values) != f.Len() {
		return ErrEmptyFrame
	}

	p := plot.New()
	p.Title.Text = SeriesLabel
	p.X.Label.Text = XAxisTitle
	p.Y.Label.Text = YAxisTitle
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, f.Len())
	for i := range pts {
		pts[i].X = f.Labels[i]
		pts[i].Y = values[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building line: %w", err)
	}
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	line.LineStyle.Width = vg.Points(1)
	line.FillColor = color.RGBA{B: 255, A: 26}
	p.Add(line)

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("creating png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}
