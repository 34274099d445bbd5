// Package convert wires the conversion stages together: catalog the
// container, select columns, materialize and format them, and
// serialize the result.
//
// The pipeline is strictly sequential and one-shot. Every stage fails
// fast; on any error no output file is created or modified.
package convert

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scigolib/h5table/internal/catalog"
	"github.com/scigolib/h5table/internal/format"
	"github.com/scigolib/h5table/internal/preview"
	"github.com/scigolib/h5table/internal/reader"
	"github.com/scigolib/h5table/internal/selector"
	"github.com/scigolib/h5table/internal/serialize"
	"github.com/scigolib/h5table/internal/table"
)

// Options carries the resolved run configuration.
type Options struct {
	// Input is the container file path.
	Input string

	// Output is the destination file. Derived from Input (same stem,
	// ".txt" extension) when empty.
	Output string

	// Columns is the ordered allow-list; empty selects everything.
	Columns []string

	// Ignore is the deny-list; it wins over Columns on conflict.
	Ignore []string

	// Formats holds format specs: none for kind defaults, one shared
	// by all columns, or exactly one per selected column.
	Formats []string

	// Delimiter separates cells; empty means four spaces.
	Delimiter string

	// Padding fills rows past a column's native length.
	Padding string

	// FullName uses full hierarchical names for matching and headers.
	FullName bool

	// Number prepends a 1-based row-index column.
	Number bool

	// Overwrite permits replacing an existing output file.
	Overwrite bool

	// Preview, when non-nil, receives an aligned rendition of the
	// table in addition to the file output.
	Preview io.Writer
}

// Run opens the input container and converts it.
func Run(opts Options, log zerolog.Logger) error {
	src, err := reader.Open(opts.Input)
	if err != nil {
		return err
	}
	defer src.Close()
	return RunSource(src, opts, log)
}

// RunSource converts an already-open source. Split out from Run so the
// pipeline can be driven from any Source implementation.
func RunSource(src reader.Source, opts Options, log zerolog.Logger) error {
	cat := catalog.Build(src, log)
	log.Info().Int("datasets", len(cat)).Msg("cataloged container")

	cols, err := selector.Select(cat, selector.Options{
		Columns:  opts.Columns,
		Ignore:   opts.Ignore,
		FullName: opts.FullName,
	})
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		log.Info().Msg("exit because table has no entries")
		return nil
	}

	mats, err := table.Materialize(cols)
	if err != nil {
		return err
	}

	specs, err := format.Resolve(opts.Formats, mats)
	if err != nil {
		return err
	}
	cells, err := format.Render(mats, specs)
	if err != nil {
		return err
	}

	header := make([]string, len(mats))
	for i, c := range mats {
		header[i] = c.Name
	}
	t := table.Build(header, cells, opts.Padding)
	log.Info().Int("columns", len(t.Header)).Int("rows", t.RowCount()).
		Msg("assembled table")

	if opts.Preview != nil {
		preview.Render(opts.Preview, t, opts.Number)
	}

	text := serialize.Text(t, serialize.Options{
		Delimiter: opts.Delimiter,
		Number:    opts.Number,
	})

	out := opts.Output
	if out == "" {
		out = DefaultOutput(opts.Input)
	}
	if err := serialize.WriteFile(out, text, opts.Overwrite); err != nil {
		return err
	}
	log.Info().Str("file", out).Msg("wrote output file")
	return nil
}

// DefaultOutput derives the output path from the input filename: same
// stem, ".txt" extension.
func DefaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".txt"
}
