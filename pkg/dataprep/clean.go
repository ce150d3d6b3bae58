package dataprep

import (
	"fmt"
	"strings"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

// DropDuplicates removes rows whose every column matches an earlier row,
// keeping the first occurrence. It returns the number of rows removed.
func DropDuplicates(t *data.Table) int {
	seen := make(map[string]struct{}, len(t.Records))
	out := t.Records[:0]
	for _, r := range t.Records {
		key := rowKey(&r)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			out = append(out, r)
		}
	}
	removed := len(t.Records) - len(out)
	clear(t.Records[len(out):])
	t.Records = out
	return removed
}

func rowKey(r *data.Record) string {
	return fmt.Sprintf("%v|%q|%v|%d|%q|%q|%v|%q",
		keyFloat(r.Age), r.Sex, keyFloat(r.BMI), r.Children, r.Smoker, r.Region, keyFloat(r.Charges), r.Extra)
}

// keyFloat folds -0 into 0 so equal values share a key.
func keyFloat(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// Normalize trims surrounding whitespace and lowercases a categorical value.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// NormalizeCategorical rewrites sex, smoker and region in place with Normalize.
func NormalizeCategorical(t *data.Table) {
	for i := range t.Records {
		r := &t.Records[i]
		r.Sex = Normalize(r.Sex)
		r.Smoker = Normalize(r.Smoker)
		r.Region = Normalize(r.Region)
	}
}
