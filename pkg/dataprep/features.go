package dataprep

import (
	"errors"
	"math"
	"strconv"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

// Feature column names produced by BuildFeatures.
const (
	AgeFeature         = "age"
	BMIFeature         = "bmi"
	ChildrenFeature    = "children"
	SmokerFlagFeature  = data.SmokerFlagColumn
	RegionPrefix       = "region"
	InteractionFeature = "bmi_smoker"
)

// LogTransform applies the natural logarithm to each value.
func LogTransform(X []float64) []float64 {
	out := make([]float64, len(X))
	for i, v := range X {
		out[i] = math.Log(v)
	}
	return out
}

// Interaction returns the element-wise product of a and b.
func Interaction(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// DeriveLogCharges sets LogCharges on every record. Charges must be strictly
// positive; otherwise the table is left untouched and a
// *data.DataValidationError lists the offending values.
func DeriveLogCharges(t *data.Table) error {
	charges := make([]float64, len(t.Records))
	var bad *data.DataValidationError
	seen := map[float64]bool{}
	for i, r := range t.Records {
		charges[i] = r.Charges
		if r.Charges > 0 {
			continue
		}
		if bad == nil {
			bad = &data.DataValidationError{Column: t.Schema.Charges, Reason: "charges must be positive"}
		}
		if !seen[r.Charges] {
			seen[r.Charges] = true
			bad.Values = append(bad.Values, strconv.FormatFloat(r.Charges, 'f', -1, 64))
		}
		bad.Lines = append(bad.Lines, r.Line)
	}
	if bad != nil {
		return bad
	}

	logs := LogTransform(charges)
	for i := range t.Records {
		t.Records[i].LogCharges = logs[i]
	}
	t.HasLogCharges = true
	return nil
}

// Target returns the log_charges column.
func Target(t *data.Table) ([]float64, error) {
	y, ok := t.Float(data.LogChargesColumn)
	if !ok {
		return nil, errors.New("log_charges has not been derived")
	}
	return y, nil
}

// BuildFeatures assembles age, bmi, children, smoker_flag and the region
// indicators, plus bmi_smoker when includeInteraction is set. Rows follow the
// table order.
func BuildFeatures(t *data.Table, includeInteraction bool) (*FeatureMatrix, error) {
	if !t.HasSmokerFlag {
		return nil, errors.New("smoker_flag has not been derived")
	}
	if t.Len() == 0 {
		return nil, errors.New("table has no rows")
	}

	regions := make([]string, t.Len())
	for i := range t.Records {
		regions[i] = t.Records[i].Region
	}
	region := FitOneHot(RegionPrefix, regions)

	cols := []string{AgeFeature, BMIFeature, ChildrenFeature, SmokerFlagFeature}
	cols = append(cols, region.Columns()...)
	if includeInteraction {
		cols = append(cols, InteractionFeature)
	}

	var interaction []float64
	if includeInteraction {
		bmi, _ := t.Float(t.Schema.BMI)
		flag, _ := t.Float(data.SmokerFlagColumn)
		interaction = Interaction(bmi, flag)
	}

	nCols := len(cols)
	values := make([]float64, t.Len()*nCols)
	for i, r := range t.Records {
		row := values[i*nCols : (i+1)*nCols]
		row[0] = r.Age
		row[1] = r.BMI
		row[2] = float64(r.Children)
		row[3] = float64(r.SmokerFlag)
		region.Encode(r.Region, row[4:4+len(region.Levels)])
		if includeInteraction {
			row[nCols-1] = interaction[i]
		}
	}
	return NewFeatureMatrix(cols, t.Len(), values), nil
}
