package dataprep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FeatureMatrix is a named numeric design matrix.
type FeatureMatrix struct {
	Columns []string
	Data    *mat.Dense
}

// NewFeatureMatrix wraps row-major values. rows and len(columns) must be
// positive and values must hold rows*len(columns) entries.
func NewFeatureMatrix(columns []string, rows int, values []float64) *FeatureMatrix {
	return &FeatureMatrix{
		Columns: columns,
		Data:    mat.NewDense(rows, len(columns), values),
	}
}

// Rows returns the number of rows.
func (f *FeatureMatrix) Rows() int {
	r, _ := f.Data.Dims()
	return r
}

// Index returns the position of a column, or -1.
func (f *FeatureMatrix) Index(name string) int {
	for j, c := range f.Columns {
		if c == name {
			return j
		}
	}
	return -1
}

// Has reports whether the matrix has the named column.
func (f *FeatureMatrix) Has(name string) bool { return f.Index(name) >= 0 }

// Col returns a copy of the named column.
func (f *FeatureMatrix) Col(name string) ([]float64, bool) {
	j := f.Index(name)
	if j < 0 {
		return nil, false
	}
	return mat.Col(nil, j, f.Data), true
}

// Row returns a copy of row i.
func (f *FeatureMatrix) Row(i int) []float64 {
	return mat.Row(nil, i, f.Data)
}

// At returns the value of the named column in row i. It panics on an unknown column.
func (f *FeatureMatrix) At(i int, name string) float64 {
	j := f.Index(name)
	if j < 0 {
		panic(fmt.Sprintf("dataprep: unknown feature column %q", name))
	}
	return f.Data.At(i, j)
}

// Select returns a new matrix holding only the named columns, in the given order.
func (f *FeatureMatrix) Select(names ...string) (*FeatureMatrix, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no columns selected")
	}
	idx := make([]int, len(names))
	for k, n := range names {
		j := f.Index(n)
		if j < 0 {
			return nil, fmt.Errorf("unknown feature column %q", n)
		}
		idx[k] = j
	}
	rows := f.Rows()
	out := mat.NewDense(rows, len(idx), nil)
	for k, j := range idx {
		out.SetCol(k, mat.Col(nil, j, f.Data))
	}
	return &FeatureMatrix{Columns: append([]string(nil), names...), Data: out}, nil
}
