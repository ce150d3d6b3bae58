package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramFile is the default file name for TargetHistogram output.
const HistogramFile = "log_charges_hist.png"

// TargetHistogram saves a histogram of y to filename. The image format
// follows the file extension (png, svg, pdf, ...).
func TargetHistogram(y []float64, bins int, filename string) error {
	if len(y) == 0 {
		return errors.New("histogram needs at least one value")
	}
	if bins <= 0 {
		bins = 20
	}

	p := plot.New()
	p.Title.Text = "Distribution of log(charges)"
	p.X.Label.Text = "log_charges"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(y), bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}
