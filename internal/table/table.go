// Package table assembles selected datasets into a rectangular table.
//
// Materialize loads the raw values of every selected column into
// memory; Build lines the rendered cells up into rows, padding short
// columns so the table stays rectangular without truncating anything.
package table

import (
	"fmt"

	"github.com/scigolib/h5table/internal/reader"
	"github.com/scigolib/h5table/internal/selector"
)

// Column is one materialized dataset. Numeric values live in Floats
// (integer data included, as delivered by the container backend), text
// values in Strings.
type Column struct {
	Name    string
	Kind    reader.Kind
	Floats  []float64
	Strings []string
}

// Len returns the column's native length.
func (c Column) Len() int {
	if c.Kind == reader.KindText {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// ReadError reports an I/O failure while reading a selected dataset's
// values. The whole run aborts on it so no truncated table is emitted.
type ReadError struct {
	Column string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read dataset %s: %v", e.Column, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Materialize loads every selected dataset fully into memory, in
// column order.
func Materialize(cols []selector.Column) ([]Column, error) {
	out := make([]Column, len(cols))
	for i, col := range cols {
		ds := col.Descriptor.Dataset()
		c := Column{Name: col.DisplayName, Kind: col.Descriptor.Kind}

		var err error
		if c.Kind == reader.KindText {
			c.Strings, err = ds.Strings()
		} else {
			c.Floats, err = ds.Floats()
		}
		if err != nil {
			return nil, &ReadError{Column: col.DisplayName, Err: err}
		}
		out[i] = c
	}
	return out, nil
}

// Table is the assembled result: one header cell and one cell per row
// for every column. Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int { return len(t.Rows) }

// Build assembles per-column rendered cells into rows. The row count
// is the longest column's length; shorter columns are padded with pad
// past their native length, never elsewhere.
func Build(header []string, cells [][]string, pad string) Table {
	rowCount := 0
	for _, col := range cells {
		if len(col) > rowCount {
			rowCount = len(col)
		}
	}

	rows := make([][]string, rowCount)
	for i := range rows {
		row := make([]string, len(cells))
		for j, col := range cells {
			if i < len(col) {
				row[j] = col[i]
			} else {
				row[j] = pad
			}
		}
		rows[i] = row
	}

	return Table{Header: header, Rows: rows}
}
