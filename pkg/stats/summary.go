package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

// Summary describes the distribution of one numeric column.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation, 0 for fewer than two values
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes x. Quantiles use the empirical CDF.
func Describe(name string, x []float64) Summary {
	s := Summary{Name: name, Count: len(x)}
	if len(x) == 0 {
		return s
	}

	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		s.Std = 0
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Q75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return s
}

// DescribeTable summarizes the numeric columns of t, including derived
// columns once present.
func DescribeTable(t *data.Table) []Summary {
	names := []string{t.Schema.Age, t.Schema.BMI, t.Schema.Children, t.Schema.Charges}
	if t.HasSmokerFlag {
		names = append(names, data.SmokerFlagColumn)
	}
	if t.HasLogCharges {
		names = append(names, data.LogChargesColumn)
	}

	out := make([]Summary, 0, len(names))
	for _, n := range names {
		col, _ := t.Float(n)
		out = append(out, Describe(n, col))
	}
	return out
}

// Correlation returns the Pearson correlation of x and y.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
