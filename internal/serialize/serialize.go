// Package serialize turns an assembled table into delimited text and
// writes it out.
//
// Serialization trusts the formatter's cells verbatim: cells are joined
// with the delimiter, nothing is reformatted here.
package serialize

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scigolib/h5table/internal/table"
)

// DefaultDelimiter separates cells when no delimiter is configured.
const DefaultDelimiter = "    "

// NumberHeader is the header cell of the optional row-index column.
const NumberHeader = "#"

// Options controls text rendering.
type Options struct {
	// Delimiter separates cells within a line.
	Delimiter string

	// Number prepends a 1-based, left-justified row-index column.
	Number bool
}

// Text renders the table: one header line followed by one line per
// row, every line newline-terminated.
func Text(t table.Table, opts Options) string {
	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}

	width := len(strconv.Itoa(t.RowCount()))

	var b strings.Builder
	writeLine(&b, t.Header, delim, opts.Number, NumberHeader, width)
	for i, row := range t.Rows {
		writeLine(&b, row, delim, opts.Number, strconv.Itoa(i+1), width)
	}
	return b.String()
}

func writeLine(b *strings.Builder, cells []string, delim string, number bool, index string, width int) {
	if number {
		fmt.Fprintf(b, "%-*s", width, index)
		if len(cells) > 0 {
			b.WriteString(delim)
		}
	}
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(delim)
		}
		b.WriteString(cell)
	}
	b.WriteByte('\n')
}

// ExistsError reports a destination that already exists while
// overwriting was not requested. The existing file is left untouched.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("output file already exists: %s (use --overwrite to replace it)", e.Path)
}

// WriteError reports an I/O failure writing the destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFile writes the rendered text to path. Unless overwrite is set,
// an existing destination fails with *ExistsError and stays unchanged.
func WriteFile(path, text string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return &ExistsError{Path: path}
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
