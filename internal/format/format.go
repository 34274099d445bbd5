// Package format resolves per-column format specifications and renders
// raw column values to text.
//
// A format spec is a Go verb such as "%.3e", "%10.3f", "%d" or "%s". A
// bare unsigned integer N is accepted as shorthand for "%.Nf", so a
// precision flag of "3" renders floats with three decimals.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scigolib/h5table/internal/reader"
	"github.com/scigolib/h5table/internal/table"
)

// Defaults per element kind, applied when the caller supplies no spec.
const (
	DefaultInteger = "%d"
	DefaultFloat   = "%f"
	DefaultText    = "%s"
)

// CountMismatchError reports a per-column spec list whose length does
// not match the number of selected columns.
type CountMismatchError struct {
	Specs   int
	Columns int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("number of format specs is %d but does not match number of columns of %d",
		e.Specs, e.Columns)
}

// CellError reports a value that cannot be rendered under its column's
// resolved format spec. It is fatal for the run: a malformed column is
// more likely a configuration mistake than an isolated bad record.
type CellError struct {
	Column string
	Row    int
	Value  string
	Spec   string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cannot format value %q at row %d of column %s with %q",
		e.Value, e.Row, e.Column, e.Spec)
}

// Resolve returns one format spec per column.
//
// Precedence: an empty specs list yields kind-driven defaults, a single
// entry is shared by every column, and a longer list is matched
// positionally and must have exactly one entry per column.
func Resolve(specs []string, cols []table.Column) ([]string, error) {
	out := make([]string, len(cols))

	switch len(specs) {
	case 0:
		for i, col := range cols {
			switch col.Kind {
			case reader.KindInteger:
				out[i] = DefaultInteger
			case reader.KindText:
				out[i] = DefaultText
			default:
				out[i] = DefaultFloat
			}
		}
	case 1:
		spec := normalize(specs[0])
		for i := range out {
			out[i] = spec
		}
	case len(cols):
		for i, spec := range specs {
			out[i] = normalize(spec)
		}
	default:
		return nil, &CountMismatchError{Specs: len(specs), Columns: len(cols)}
	}
	return out, nil
}

// normalize expands the bare-integer precision shorthand.
func normalize(spec string) string {
	if n, err := strconv.ParseUint(spec, 10, 16); err == nil {
		return fmt.Sprintf("%%.%df", n)
	}
	return spec
}

// Render renders every cell of every column through its resolved spec.
// The result holds one text slice per column, each of the column's
// native length; padding up to the table row count happens later and
// never passes through a format spec.
func Render(cols []table.Column, specs []string) ([][]string, error) {
	cells := make([][]string, len(cols))
	for i, col := range cols {
		rendered, err := renderColumn(col, specs[i])
		if err != nil {
			return nil, err
		}
		cells[i] = rendered
	}
	return cells, nil
}

func renderColumn(col table.Column, spec string) ([]string, error) {
	verb, ok := verbOf(spec)
	if !ok || !compatible(col.Kind, verb) {
		return nil, &CellError{
			Column: col.Name,
			Row:    0,
			Value:  rawValue(col, 0),
			Spec:   spec,
		}
	}

	out := make([]string, col.Len())
	if col.Kind == reader.KindText {
		for i, v := range col.Strings {
			out[i] = fmt.Sprintf(spec, v)
		}
		return out, nil
	}

	// Integer data arrives as float64 from the container backend;
	// integer verbs need the int value back.
	integral := col.Kind == reader.KindInteger && isIntegerVerb(verb)
	for i, v := range col.Floats {
		if integral {
			out[i] = fmt.Sprintf(spec, int64(v))
		} else {
			out[i] = fmt.Sprintf(spec, v)
		}
	}
	return out, nil
}

// verbOf extracts the conversion verb from a spec. A valid spec is a
// single '%' followed by optional flags/width/precision and a verb.
func verbOf(spec string) (byte, bool) {
	if len(spec) < 2 || spec[0] != '%' || strings.Count(spec, "%") != 1 {
		return 0, false
	}
	verb := spec[len(spec)-1]
	isLetter := (verb >= 'a' && verb <= 'z') || (verb >= 'A' && verb <= 'Z')
	return verb, isLetter
}

func isIntegerVerb(verb byte) bool {
	switch verb {
	case 'd', 'b', 'o', 'x', 'X', 'c', 'U':
		return true
	}
	return false
}

func isFloatVerb(verb byte) bool {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return true
	}
	return false
}

// compatible reports whether a verb can render values of the given
// kind. Integer columns take integer or float verbs, float columns
// float verbs, text columns string verbs; %v works everywhere.
func compatible(kind reader.Kind, verb byte) bool {
	if verb == 'v' {
		return true
	}
	switch kind {
	case reader.KindInteger:
		return isIntegerVerb(verb) || isFloatVerb(verb)
	case reader.KindFloat:
		return isFloatVerb(verb)
	case reader.KindText:
		return verb == 's' || verb == 'q'
	}
	return false
}

func rawValue(col table.Column, row int) string {
	if col.Kind == reader.KindText {
		if row < len(col.Strings) {
			return col.Strings[row]
		}
	} else if row < len(col.Floats) {
		return fmt.Sprintf("%v", col.Floats[row])
	}
	return ""
}
