package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LoadOptions configures how a dataset file is read.
type LoadOptions struct {
	Columns   Columns
	Delimiter rune // ',' when zero
}

// DefaultLoadOptions reads a comma-separated file with the standard column names.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Columns: DefaultColumns(), Delimiter: ','}
}

const utf8BOM = "\ufeff"

// Load reads the delimited file at path into a Table. The whole file is read
// into memory; numeric columns are parsed and checked at this boundary.
func Load(path string, opts LoadOptions) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	return Read(bufio.NewReader(file), path, opts)
}

// Read parses delimited data from r. name is used in error messages only.
func Read(r io.Reader, name string, opts LoadOptions) (*Table, error) {
	cols := opts.Columns.WithDefaults()
	if err := cols.Validate(); err != nil {
		return nil, fmt.Errorf("invalid column configuration: %w", err)
	}
	comma := opts.Delimiter
	if comma == 0 {
		comma = ','
	}
	if !validDelimiter(comma) {
		return nil, fmt.Errorf("invalid delimiter %q", comma)
	}

	reader := csv.NewReader(r)
	reader.Comma = comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: name, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, readError(name, err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		if _, dup := index[h]; dup {
			return nil, &ParseError{Path: name, Line: 1, Column: h, Err: errors.New("duplicate column in header")}
		}
		index[h] = i
	}

	var missing []string
	required := make(map[string]bool, 7)
	for _, c := range cols.Required() {
		required[c] = true
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Path: name, Missing: missing}
	}

	// Derived columns already present in the source are dropped here and
	// recomputed by the cleaning steps.
	kept := make([]string, 0, len(header))
	var extraIdx []int
	var extraCols []string
	for i, h := range header {
		if h == SmokerFlagColumn || h == LogChargesColumn {
			continue
		}
		if !required[h] {
			extraIdx = append(extraIdx, i)
			extraCols = append(extraCols, h)
		}
		kept = append(kept, h)
	}

	p := &rowParser{name: name, index: index, gaps: newGapTracker()}
	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(name, err)
		}
		p.line, _ = reader.FieldPos(0)

		rec := Record{Line: p.line}
		rec.Age = p.float(row, cols.Age)
		rec.Sex = row[index[cols.Sex]]
		rec.BMI = p.float(row, cols.BMI)
		rec.Children = p.count(row, cols.Children)
		rec.Smoker = row[index[cols.Smoker]]
		rec.Region = row[index[cols.Region]]
		rec.Charges = p.float(row, cols.Charges)
		if p.err != nil {
			return nil, p.err
		}
		if len(extraIdx) > 0 {
			rec.Extra = make([]string, len(extraIdx))
			for j, idx := range extraIdx {
				rec.Extra[j] = row[idx]
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &ParseError{Path: name, Err: errors.New("no data rows")}
	}
	for _, c := range []string{cols.Age, cols.BMI, cols.Children, cols.Charges} {
		if err := p.gaps.err(c); err != nil {
			return nil, err
		}
	}

	return &Table{
		Schema:       cols,
		Header:       kept,
		ExtraColumns: extraCols,
		Records:      records,
	}, nil
}

// IsMissing reports whether a raw field holds a missing-value marker.
func IsMissing(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

func readError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &IOError{Path: name, Err: err}
}

// rowParser converts numeric fields, keeping the first hard parse failure and
// recording missing markers so every gap can be reported at once.
type rowParser struct {
	name  string
	line  int
	index map[string]int
	gaps  *gapTracker
	err   error
}

func (p *rowParser) field(row []string, col string) (string, bool) {
	v := row[p.index[col]]
	if IsMissing(v) {
		p.gaps.add(col, v, p.line)
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (p *rowParser) float(row []string, col string) float64 {
	if p.err != nil {
		return 0
	}
	v, ok := p.field(row, col)
	if !ok {
		return math.NaN()
	}
	f, err := parseDecimal(v)
	if err != nil {
		p.fail(col, fmt.Errorf("%q is not a number", v))
		return 0
	}
	if math.IsInf(f, 0) {
		p.fail(col, fmt.Errorf("%q is not finite", v))
		return 0
	}
	return f
}

func (p *rowParser) count(row []string, col string) int {
	if p.err != nil {
		return 0
	}
	v, ok := p.field(row, col)
	if !ok {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	f, err := parseDecimal(v)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		p.fail(col, fmt.Errorf("%q is not an integer", v))
		return 0
	}
	return int(f)
}

// parseDecimal is strconv.ParseFloat restricted to plain decimal notation.
func parseDecimal(v string) (float64, error) {
	digits := strings.TrimLeft(v, "+-")
	if strings.ContainsRune(v, '_') || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(v, 64)
}

func (p *rowParser) fail(col string, err error) {
	p.err = &ParseError{Path: p.name, Line: p.line, Column: col, Err: err}
}

type gapTracker struct {
	byColumn map[string]*DataValidationError
	seen     map[string]map[string]bool
}

func newGapTracker() *gapTracker {
	return &gapTracker{
		byColumn: make(map[string]*DataValidationError),
		seen:     make(map[string]map[string]bool),
	}
}

func (g *gapTracker) add(col, raw string, line int) {
	e, ok := g.byColumn[col]
	if !ok {
		e = &DataValidationError{Column: col, Reason: "missing values"}
		g.byColumn[col] = e
		g.seen[col] = make(map[string]bool)
	}
	e.Lines = append(e.Lines, line)
	if !g.seen[col][raw] {
		g.seen[col][raw] = true
		e.Values = append(e.Values, raw)
	}
}

func (g *gapTracker) err(col string) error {
	if e, ok := g.byColumn[col]; ok {
		return e
	}
	return nil
}
