package features

import (
	"errors"
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/opgraph/core"
)

// Sentinel errors for FeatureTable operations.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("features: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("features: graph has no vertices")

	// ErrViewMismatch is returned when the simple view's vertices or edges differ from the graph's.
	ErrViewMismatch = errors.New("features: simple view does not match graph")

	// ErrUnknownColumn is returned for a column outside Columns().
	ErrUnknownColumn = errors.New("features: unknown column")

	// ErrColumnLength is returned when a value slice does not match the row count.
	ErrColumnLength = errors.New("features: column length mismatch")

	// ErrUnknownRow is returned for a vertex name that is not a row.
	ErrUnknownRow = errors.New("features: unknown row")

	// ErrFrozen is returned when a frozen table is modified.
	ErrFrozen = errors.New("features: table is frozen")
)

// Table is a per-vertex feature table. Rows follow the graph's vertex order;
// columns follow Columns().
type Table struct {
	rows   []string
	index  map[string]int
	cols   *orderedmap.OrderedMap[string, []float64]
	frozen bool
}

// NewTable returns a table with one row per vertex of g and every cell NaN.
func NewTable(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	rows := g.Vertices()
	t := &Table{
		rows:  rows,
		index: make(map[string]int, len(rows)),
		cols:  orderedmap.New[string, []float64](),
	}
	for i, r := range rows {
		t.index[r] = i
	}
	for _, c := range columns {
		cells := make([]float64, len(rows))
		for i := range cells {
			cells[i] = math.NaN()
		}
		t.cols.Set(c, cells)
	}

	return t, nil
}

// Set replaces column col with values (copied), aligned to Rows().
func (t *Table) Set(col string, values []float64) error {
	if t.frozen {
		return fmt.Errorf("%w: Set(%q)", ErrFrozen, col)
	}
	if _, ok := t.cols.Get(col); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("%w: %q has %d values for %d rows", ErrColumnLength, col, len(values), len(t.rows))
	}
	t.cols.Set(col, append([]float64(nil), values...))

	return nil
}

// Column returns a copy of column col.
func (t *Table) Column(col string) ([]float64, error) {
	cells, ok := t.cols.Get(col)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}

	return append([]float64(nil), cells...), nil
}

// Value returns the cell at (row, col).
func (t *Table) Value(row, col string) (float64, error) {
	i, ok := t.index[row]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRow, row)
	}
	cells, ok := t.cols.Get(col)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}

	return cells[i], nil
}

// Record returns row i's cells in column order.
func (t *Table) Record(i int) []float64 {
	out := make([]float64, 0, t.cols.Len())
	for p := t.cols.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value[i])
	}

	return out
}

// Rows returns the row keys (vertex names) in order.
func (t *Table) Rows() []string { return append([]string(nil), t.rows...) }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, 0, t.cols.Len())
	for p := t.cols.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Freeze makes the table immutable.
func (t *Table) Freeze() { t.frozen = true }

// Frozen reports whether Freeze was called.
func (t *Table) Frozen() bool { return t.frozen }

// NullCount returns the number of NaN cells.
func (t *Table) NullCount() int {
	n := 0
	for p := t.cols.Oldest(); p != nil; p = p.Next() {
		for _, v := range p.Value {
			if math.IsNaN(v) {
				n++
			}
		}
	}

	return n
}
