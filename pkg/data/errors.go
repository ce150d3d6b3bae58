package data

import (
	"fmt"
	"strings"
)

// IOError reports a dataset that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read dataset %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a dataset whose structure or field types are invalid.
// Line and Column are zero/empty when the failure is not tied to one field.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse dataset ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %q", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the header.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// DataValidationError reports values outside the domain a column accepts.
// Values holds the distinct offending values in first-seen order and Lines
// the source lines they were found on.
type DataValidationError struct {
	Column string
	Reason string
	Values []string
	Lines  []int
}

func (e *DataValidationError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("column %q: %s: [%s]", e.Column, e.Reason, strings.Join(quoted, " "))
}
