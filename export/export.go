// Package export writes result tables and distance matrices as CSV.
//
// Cells: NaN is written as an empty field (null), ±Inf as "inf"/"-inf",
// every other value in the shortest representation that round-trips.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/opgraph/results"
)

var (
	// ErrNilTable is returned when a nil result table is written.
	ErrNilTable = errors.New("export: nil result table")

	// ErrShape is returned when a distance matrix does not match its names.
	ErrShape = errors.New("export: matrix shape does not match names")
)

// FormatFloat renders one cell.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// WriteCSV writes t with a header row and one row per (family, node).
func WriteCSV(w io.Writer, t *results.Table) error {
	if t == nil {
		return ErrNilTable
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	rec := make([]string, 0, len(t.Header()))
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		rec = append(rec[:0], row.Family, row.Node)
		for _, v := range row.Values {
			rec = append(rec, FormatFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// WriteFile writes t to path, creating parent directories. The file is
// written to a temporary sibling first and renamed into place with mode 0644.
func WriteFile(path string, t *results.Table) error {
	return writeAtomic(path, func(w io.Writer) error { return WriteCSV(w, t) })
}

// WriteDistances writes a square matrix with a leading "name" column.
func WriteDistances(w io.Writer, names []string, m [][]float64) error {
	if len(m) != len(names) {
		return fmt.Errorf("%w: %d rows for %d names", ErrShape, len(m), len(names))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"name"}, names...)); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	rec := make([]string, 0, len(names)+1)
	for i, row := range m {
		if len(row) != len(names) {
			return fmt.Errorf("%w: row %q has %d cells", ErrShape, names[i], len(row))
		}
		rec = append(rec[:0], names[i])
		for _, v := range row {
			rec = append(rec, FormatFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: row %q: %w", names[i], err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// WriteDistancesFile is WriteDistances to a file.
func WriteDistancesFile(path string, names []string, m [][]float64) error {
	return writeAtomic(path, func(w io.Writer) error { return WriteDistances(w, names, m) })
}

func writeAtomic(path string, fill func(io.Writer) error) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = fill(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}
