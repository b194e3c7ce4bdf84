package sim

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// New2DPlot creates a new plot comparing a simulated run with its estimates.
// It plots the first two state dimensions of the four data sources:
//
//	truth:    ground truth state trajectory
//	measure:  measurement values
//	filtered: filtered state estimates
//	smoothed: smoothed state estimates (may be nil to skip)
//
// It returns error if truth, measure or filtered is nil or if either of the
// supplied matrices does not have at least 2 columns.
func New2DPlot(truth, measure, filtered, smoothed *mat.Dense) (*plot.Plot, error) {
	if truth == nil || measure == nil || filtered == nil {
		return nil, fmt.Errorf("invalid data supplied")
	}

	for _, m := range []*mat.Dense{truth, measure, filtered, smoothed} {
		if m == nil {
			continue
		}
		if _, c := m.Dims(); c < 2 {
			return nil, fmt.Errorf("invalid data dimensions: %d columns", c)
		}
	}

	p := plot.New()

	p.Title.Text = "Filter run"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	legend := plot.NewLegend()
	legend.Top = true
	p.Legend = legend

	// ground truth scatter
	truthScatter, err := plotter.NewScatter(makePoints(truth))
	if err != nil {
		return nil, err
	}
	truthScatter.GlyphStyle.Color = color.RGBA{R: 255, B: 128, A: 255}
	truthScatter.Shape = draw.PyramidGlyph{}
	truthScatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(truthScatter)
	p.Legend.Add("truth", truthScatter)

	// measurement scatter
	measScatter, err := plotter.NewScatter(makePoints(measure))
	if err != nil {
		return nil, err
	}
	measScatter.GlyphStyle.Color = color.RGBA{G: 255, A: 128}
	measScatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(measScatter)
	p.Legend.Add("measurement", measScatter)

	// filtered estimate scatter
	filterScatter, err := plotter.NewScatter(makePoints(filtered))
	if err != nil {
		return nil, err
	}
	filterScatter.GlyphStyle.Color = color.RGBA{R: 169, G: 169, B: 169}
	filterScatter.Shape = draw.CrossGlyph{}
	filterScatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(filterScatter)
	p.Legend.Add("filtered", filterScatter)

	if smoothed != nil {
		smoothScatter, err := plotter.NewScatter(makePoints(smoothed))
		if err != nil {
			return nil, err
		}
		smoothScatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		smoothScatter.Shape = draw.RingGlyph{}
		smoothScatter.GlyphStyle.Radius = vg.Points(3)

		p.Add(smoothScatter)
		p.Legend.Add("smoothed", smoothScatter)
	}

	return p, nil
}

func makePoints(m *mat.Dense) plotter.XYs {
	r, _ := m.Dims()
	pts := make(plotter.XYs, r)
	for i := 0; i < r; i++ {
		pts[i].X = m.At(i, 0)
		pts[i].Y = m.At(i, 1)
	}

	return pts
}
