// Package selector picks and orders the catalog entries that become
// table columns, driven by user-supplied allow and deny name lists.
package selector

import (
	"fmt"

	"github.com/scigolib/h5table/internal/catalog"
)

// Options controls column selection.
type Options struct {
	// Columns is the ordered allow-list. When non-empty, only listed
	// datasets are selected and the output follows this order. When
	// empty, all catalog entries are selected in tree order.
	Columns []string

	// Ignore is the deny-list. Matching datasets are dropped. A name
	// present in both lists is dropped: ignore wins.
	Ignore []string

	// FullName switches both matching and display names from leaf
	// names to full hierarchical names.
	FullName bool
}

// Column is one selected dataset together with its header text.
type Column struct {
	Descriptor  catalog.Descriptor
	DisplayName string
}

// UnknownColumnError reports an allow-list entry that matches nothing
// in the catalog. Explicitly requested names must exist, so typos fail
// loudly instead of silently shrinking the table.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Name)
}

// Select applies the allow and deny lists to the catalog and returns
// the ordered columns to materialize.
func Select(cat []catalog.Descriptor, opts Options) ([]Column, error) {
	idx := catalog.Index(cat, opts.FullName)

	ignored := make(map[string]bool, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignored[name] = true
	}

	var out []Column
	if len(opts.Columns) > 0 {
		for _, name := range opts.Columns {
			if ignored[name] {
				continue
			}
			positions, ok := idx[name]
			if !ok {
				return nil, &UnknownColumnError{Name: name}
			}
			for _, i := range positions {
				out = append(out, column(cat[i], opts.FullName))
			}
		}
		return out, nil
	}

	for i, d := range cat {
		key := d.Name
		if opts.FullName {
			key = d.FullName()
		}
		if ignored[key] {
			continue
		}
		out = append(out, column(cat[i], opts.FullName))
	}
	return out, nil
}

func column(d catalog.Descriptor, fullName bool) Column {
	name := d.Name
	if fullName {
		name = d.FullName()
	}
	return Column{Descriptor: d, DisplayName: name}
}
