// Package preview renders an assembled table for terminal display.
//
// Unlike the file output, the preview aligns columns and separates the
// header with a rule, so the table is readable at a glance. Nothing is
// persisted.
package preview

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/scigolib/h5table/internal/serialize"
	"github.com/scigolib/h5table/internal/table"
)

// Render writes an aligned rendition of the table to w. With number
// set, a 1-based row-index column is prepended, mirroring the file
// output.
func Render(w io.Writer, t table.Table, number bool) {
	header := t.Header
	rows := t.Rows
	if number {
		header = append([]string{serialize.NumberHeader}, header...)
		rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(header)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetBorder(false)
	tw.AppendBulk(rows)
	tw.Render()
}
