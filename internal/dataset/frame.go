package dataset

import (
	"fmt"
	"math"
)

// Frame is a minimal rows-by-named-columns table. It is the tabular result
// shape the collection backends exchange over the wire:
//
//	{"columns": ["Open", "Close"], "rows": [[1.0, 2.0], ...]}
//
// Cell values are untyped; a nil cell (or NaN float) counts as missing.
type Frame struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// New creates a frame from columns and rows. Every row must have one cell per
// column.
func New(columns []string, rows [][]any) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Frame{Columns: columns, Rows: rows}, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.Columns)
}

// ColumnIndex returns the position of the named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the cell values of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// IsNull reports whether the cell at row r, column c is missing.
func (f *Frame) IsNull(r, c int) bool {
	return IsMissing(f.Rows[r][c])
}

// IsMissing reports whether v counts as a missing value: nil, or a NaN float.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if fv, ok := v.(float64); ok {
		return math.IsNaN(fv)
	}
	return false
}
