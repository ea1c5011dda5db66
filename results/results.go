package results

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/opgraph/features"
)

// Leading identity columns.
const (
	ColFamily = "family"
	ColNode   = "node"
)

var (
	// ErrFamilyCount is returned when tables and family names differ in length.
	ErrFamilyCount = errors.New("results: tables and families differ in length")

	// ErrNilTable is returned when a table is nil.
	ErrNilTable = errors.New("results: nil feature table")

	// ErrColumnMismatch is returned when a table's columns differ from the first table's.
	ErrColumnMismatch = errors.New("results: feature columns differ between tables")
)

// Row is one (family, node) record. Values align with Table.Features().
type Row struct {
	Family string
	Node   string
	Values []float64
}

// Table is the collected, immutable result.
type Table struct {
	features []string
	rows     []Row
}

// Collect concatenates tables in order, labelling table i with families[i].
// Per-family row order is preserved. Every input table is frozen.
//
// Errors: ErrFamilyCount, ErrNilTable, ErrColumnMismatch.
func Collect(tables []*features.Table, families []string) (*Table, error) {
	if len(tables) != len(families) {
		return nil, fmt.Errorf("%w: %d tables, %d families", ErrFamilyCount, len(tables), len(families))
	}

	out := &Table{features: features.Columns()}
	total := 0
	for i, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("%w: family %q", ErrNilTable, families[i])
		}
		if cols := t.Columns(); !slices.Equal(cols, out.features) {
			return nil, fmt.Errorf("%w: family %q", ErrColumnMismatch, families[i])
		}
		total += t.Len()
	}

	out.rows = make([]Row, 0, total)
	for i, t := range tables {
		t.Freeze()
		for j, node := range t.Rows() {
			out.rows = append(out.rows, Row{
				Family: families[i],
				Node:   node,
				Values: t.Record(j),
			})
		}
	}

	return out, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Header returns family, node and the feature columns.
func (t *Table) Header() []string {
	return append([]string{ColFamily, ColNode}, t.features...)
}

// Features returns the feature column names.
func (t *Table) Features() []string { return append([]string(nil), t.features...) }

// Row returns a copy of row i.
func (t *Table) Row(i int) Row {
	r := t.rows[i]
	r.Values = append([]float64(nil), r.Values...)

	return r
}

// Rows returns copies of all rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}

	return out
}

// Families returns the distinct family labels in row order.
func (t *Table) Families() []string {
	var out []string
	for i, r := range t.rows {
		if i == 0 || t.rows[i-1].Family != r.Family {
			out = append(out, r.Family)
		}
	}

	return out
}
