// Package report writes prepared datasets out for downstream tools.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
	"github.com/sreekona1935/medical-insurance-costs/pkg/dataprep"
)

// Output file names used by WriteAll.
const (
	FeaturesFile = "features.csv"
	TargetFile   = "target.csv"
	CleanedFile  = "cleaned.csv"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteFeatures writes the feature matrix with a header row.
func WriteFeatures(w io.Writer, X *dataprep.FeatureMatrix) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(X.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(X.Columns))
	for i, n := 0, X.Rows(); i < n; i++ {
		for j, v := range X.Row(i) {
			row[j] = formatFloat(v)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTarget writes y as a single named column.
func WriteTarget(w io.Writer, name string, y []float64) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{name}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, v := range y {
		if err := writer.Write([]string{formatFloat(v)}); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTable writes the cleaned table, derived columns included.
func WriteTable(w io.Writer, t *data.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, n := 0, t.Len(); i < n; i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteAll writes features, target and cleaned table into dir and returns
// the paths written.
func WriteAll(dir string, X *dataprep.FeatureMatrix, y []float64, t *data.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FeaturesFile, func(w io.Writer) error { return WriteFeatures(w, X) }},
		{TargetFile, func(w io.Writer) error { return WriteTarget(w, data.LogChargesColumn, y) }},
		{CleanedFile, func(w io.Writer) error { return WriteTable(w, t) }},
	}

	var paths []string
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := writeFile(path, o.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(file)
	if err := write(bw); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}
