package dataprep

import (
	"slices"
	"sort"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

// SmokerMapping maps normalized smoker values to the smoker flag.
var SmokerMapping = map[string]int{"yes": 1, "no": 0}

// EncodeBinary maps each value through mapping. ok[i] is false when values[i]
// has no entry.
func EncodeBinary(values []string, mapping map[string]int) (codes []int, ok []bool) {
	codes = make([]int, len(values))
	ok = make([]bool, len(values))
	for i, v := range values {
		codes[i], ok[i] = mapping[v]
	}
	return codes, ok
}

// DeriveSmokerFlag sets SmokerFlag on every record from its normalized smoker
// value. If any value is outside SmokerMapping the table is left untouched
// and a *data.DataValidationError lists the distinct offending values.
func DeriveSmokerFlag(t *data.Table) error {
	values := make([]string, len(t.Records))
	for i := range t.Records {
		values[i] = t.Records[i].Smoker
	}
	codes, ok := EncodeBinary(values, SmokerMapping)

	var bad *data.DataValidationError
	for i, mapped := range ok {
		if mapped {
			continue
		}
		if bad == nil {
			bad = &data.DataValidationError{Column: t.Schema.Smoker, Reason: "unexpected smoker values"}
		}
		if !slices.Contains(bad.Values, values[i]) {
			bad.Values = append(bad.Values, values[i])
		}
		bad.Lines = append(bad.Lines, t.Records[i].Line)
	}
	if bad != nil {
		return bad
	}

	for i := range t.Records {
		t.Records[i].SmokerFlag = codes[i]
	}
	t.HasSmokerFlag = true
	return nil
}

// OneHot is a fitted indicator encoding for one categorical column. The
// lexicographically smallest level is the baseline and gets no column.
type OneHot struct {
	Prefix   string
	Baseline string
	Levels   []string
}

// FitOneHot collects the distinct values and fixes the baseline.
func FitOneHot(prefix string, values []string) OneHot {
	unique := map[string]struct{}{}
	for _, v := range values {
		unique[v] = struct{}{}
	}
	levels := make([]string, 0, len(unique))
	for v := range unique {
		levels = append(levels, v)
	}
	sort.Strings(levels)

	enc := OneHot{Prefix: prefix}
	if len(levels) > 0 {
		enc.Baseline = levels[0]
		enc.Levels = levels[1:]
	}
	return enc
}

// Columns returns the indicator column names, "<prefix>_<level>".
func (o OneHot) Columns() []string {
	cols := make([]string, len(o.Levels))
	for i, l := range o.Levels {
		cols[i] = o.Prefix + "_" + l
	}
	return cols
}

// Encode writes the indicators for v into dst, which must hold len(Levels)
// values. The baseline and unseen values encode as all zeros.
func (o OneHot) Encode(v string, dst []float64) {
	for i, l := range o.Levels {
		if l == v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}
