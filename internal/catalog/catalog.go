// Package catalog enumerates the datasets of a container that are
// eligible to become table columns.
//
// A dataset is eligible iff it is one-dimensional with more than one
// element. Everything else (scalars, matrices, unsupported element
// classes) is skipped without error; skips are reported through the
// logger so verbose runs can explain what was left out.
package catalog

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/scigolib/h5table/internal/reader"
)

// Separator joins hierarchy segments in full dataset names.
const Separator = "/"

// Descriptor describes one eligible dataset found in a container.
type Descriptor struct {
	// Path holds the names of the groups leading to the dataset,
	// outermost first. The root group is not included.
	Path []string

	// Name is the dataset's leaf name.
	Name string

	// Length is the element count. Always > 1.
	Length int

	// Kind is the element kind.
	Kind reader.Kind

	dataset reader.Dataset
}

// FullName returns the dataset's full hierarchical name, segments
// joined by Separator and prefixed with it, e.g. "/run1/energy".
func (d Descriptor) FullName() string {
	var b strings.Builder
	for _, seg := range d.Path {
		b.WriteString(Separator)
		b.WriteString(seg)
	}
	b.WriteString(Separator)
	b.WriteString(d.Name)
	return b.String()
}

// Dataset returns the handle used to read the dataset's values.
func (d Descriptor) Dataset() reader.Dataset { return d.dataset }

type frame struct {
	node reader.Node
	path []string
}

// Build walks the container depth-first and returns a descriptor for
// every eligible dataset, in tree order. Tree order is stable and
// determines the default column order downstream.
//
// The walk uses an explicit stack so arbitrarily deep group nesting
// cannot exhaust the call stack.
func Build(src reader.Source, log zerolog.Logger) []Descriptor {
	var out []Descriptor

	stack := pushChildren(nil, src.Root(), nil)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := f.node.(type) {
		case reader.Group:
			childPath := append(append([]string{}, f.path...), n.Name())
			stack = pushChildren(stack, n, childPath)
		case reader.Dataset:
			if d, ok := inspect(n, f.path, log); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// pushChildren pushes g's children in reverse so they pop in tree order.
func pushChildren(stack []frame, g reader.Group, path []string) []frame {
	children := g.Children()
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: children[i], path: path})
	}
	return stack
}

func inspect(ds reader.Dataset, path []string, log zerolog.Logger) (Descriptor, bool) {
	d := Descriptor{Path: path, Name: ds.Name(), dataset: ds}

	meta, err := ds.Meta()
	if err != nil {
		log.Info().Str("dataset", d.FullName()).Err(err).
			Msg("skipping unreadable dataset")
		return Descriptor{}, false
	}
	if meta.Kind == reader.KindUnknown {
		log.Info().Str("dataset", d.FullName()).
			Msg("skipping dataset of unsupported element class")
		return Descriptor{}, false
	}
	if meta.Rank() != 1 {
		log.Info().Str("dataset", d.FullName()).Int("rank", meta.Rank()).
			Msg("skipping dataset with rank unequal 1")
		return Descriptor{}, false
	}
	if meta.Length() <= 1 {
		log.Info().Str("dataset", d.FullName()).Int("length", meta.Length()).
			Msg("skipping dataset with trivial length")
		return Descriptor{}, false
	}

	d.Length = meta.Length()
	d.Kind = meta.Kind
	return d, true
}

// Index maps names to catalog positions. Keys are leaf names, or full
// hierarchical names when fullName is set. A name maps to multiple
// positions when distinct groups contain same-named datasets.
func Index(descriptors []Descriptor, fullName bool) map[string][]int {
	idx := make(map[string][]int, len(descriptors))
	for i, d := range descriptors {
		key := d.Name
		if fullName {
			key = d.FullName()
		}
		idx[key] = append(idx[key], i)
	}
	return idx
}
