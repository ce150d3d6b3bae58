package data

import "strconv"

// Record is a single policyholder row.
type Record struct {
	Age      float64
	Sex      string
	BMI      float64
	Children int
	Smoker   string
	Region   string
	Charges  float64

	// Derived columns, valid once the owning Table reports them.
	SmokerFlag int
	LogCharges float64

	// Extra holds columns outside the required set, aligned with Table.ExtraColumns.
	Extra []string

	// Line is the 1-based source line the record was read from.
	Line int
}

// Table is an in-memory policyholder dataset.
type Table struct {
	Schema       Columns
	Header       []string
	ExtraColumns []string
	Records      []Record

	HasSmokerFlag bool
	HasLogCharges bool
}

const (
	SmokerFlagColumn = "smoker_flag"
	LogChargesColumn = "log_charges"
)

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Records) }

// Columns returns the column names of the table in source order followed by
// any derived columns.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(t.Header)+2)
	cols = append(cols, t.Header...)
	if t.HasSmokerFlag {
		cols = append(cols, SmokerFlagColumn)
	}
	if t.HasLogCharges {
		cols = append(cols, LogChargesColumn)
	}
	return cols
}

// Float returns the numeric column values for one of age, bmi, children,
// charges or the derived columns. ok is false for non-numeric columns.
func (t *Table) Float(name string) (out []float64, ok bool) {
	var get func(r *Record) float64
	switch name {
	case t.Schema.Age:
		get = func(r *Record) float64 { return r.Age }
	case t.Schema.BMI:
		get = func(r *Record) float64 { return r.BMI }
	case t.Schema.Children:
		get = func(r *Record) float64 { return float64(r.Children) }
	case t.Schema.Charges:
		get = func(r *Record) float64 { return r.Charges }
	case SmokerFlagColumn:
		if !t.HasSmokerFlag {
			return nil, false
		}
		get = func(r *Record) float64 { return float64(r.SmokerFlag) }
	case LogChargesColumn:
		if !t.HasLogCharges {
			return nil, false
		}
		get = func(r *Record) float64 { return r.LogCharges }
	default:
		return nil, false
	}
	out = make([]float64, len(t.Records))
	for i := range t.Records {
		out[i] = get(&t.Records[i])
	}
	return out, true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := *t
	c.Header = append([]string(nil), t.Header...)
	c.ExtraColumns = append([]string(nil), t.ExtraColumns...)
	c.Records = make([]Record, len(t.Records))
	for i, r := range t.Records {
		r.Extra = append([]string(nil), r.Extra...)
		c.Records[i] = r
	}
	return &c
}

// Row renders row i as strings in Columns() order.
func (t *Table) Row(i int) []string {
	r := &t.Records[i]
	out := make([]string, 0, len(t.Header)+2)
	extra := 0
	for _, h := range t.Header {
		switch h {
		case t.Schema.Age:
			out = append(out, formatFloat(r.Age))
		case t.Schema.Sex:
			out = append(out, r.Sex)
		case t.Schema.BMI:
			out = append(out, formatFloat(r.BMI))
		case t.Schema.Children:
			out = append(out, strconv.Itoa(r.Children))
		case t.Schema.Smoker:
			out = append(out, r.Smoker)
		case t.Schema.Region:
			out = append(out, r.Region)
		case t.Schema.Charges:
			out = append(out, formatFloat(r.Charges))
		default:
			out = append(out, r.Extra[extra])
			extra++
		}
	}
	if t.HasSmokerFlag {
		out = append(out, strconv.Itoa(r.SmokerFlag))
	}
	if t.HasLogCharges {
		out = append(out, formatFloat(r.LogCharges))
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
