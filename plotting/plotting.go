// Package plotting renders the workflows' diagnostic plots to PNG files.
package plotting

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/statlearn/statlearn/pkg/errors"
)

// FeatureScatter saves a scatter plot of one feature against the target for
// exploratory inspection.
func FeatureScatter(x, y []float64, xLabel, yLabel, title, path string) error {
	if len(x) == 0 {
		return errors.NewValueError("FeatureScatter", "empty data")
	}
	if len(x) != len(y) {
		return errors.NewDimensionError("FeatureScatter", len(x), len(y), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "FeatureScatter")
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "FeatureScatter: saving %s", path)
	}
	return nil
}

// PredictedActual saves a predicted-vs-actual scatter with an identity
// reference line. Points on the diagonal are perfect predictions.
func PredictedActual(yTrue, yPred *mat.VecDense, title, path string) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueError("PredictedActual", "empty data")
	}
	if yPred.Len() != n {
		return errors.NewDimensionError("PredictedActual", n, yPred.Len(), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"

	pts := make(plotter.XYs, n)
	lo, hi := yTrue.AtVec(0), yTrue.AtVec(0)
	for i := 0; i < n; i++ {
		t, pr := yTrue.AtVec(i), yPred.AtVec(i)
		pts[i].X = t
		pts[i].Y = pr
		for _, v := range []float64{t, pr} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "PredictedActual")
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return errors.Wrap(err, "PredictedActual")
	}
	identity.Color = color.RGBA{R: 255, A: 255}
	identity.LineStyle.Width = vg.Points(1)
	p.Add(identity)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "PredictedActual: saving %s", path)
	}
	return nil
}
