// Package reader provides read-only access to hierarchical container
// files holding named array datasets.
//
// The package defines a small abstraction (Source, Group, Dataset) over
// a container's object tree so that the conversion pipeline can be
// exercised without a real file on disk. Open returns the HDF5-backed
// implementation; the Mem* types provide an in-memory one.
package reader

import "fmt"

// Kind identifies the element type of a dataset.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindFloat
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is any object reachable in a container tree: a Group or a Dataset.
type Node interface {
	Name() string
}

// Group is a container tree node holding other groups and datasets.
type Group interface {
	Node

	// Children returns the child objects in stable tree order.
	Children() []Node
}

// Dataset is a leaf node holding a named array.
type Dataset interface {
	Node

	// Meta returns the dataset's shape and element kind without
	// reading its values.
	Meta() (Meta, error)

	// Floats reads all values of a numeric dataset. Integer data is
	// converted to float64.
	Floats() ([]float64, error)

	// Strings reads all values of a text dataset.
	Strings() ([]string, error)
}

// Source is an open container file.
//
// Close must be called when done reading to release the underlying
// file handle. It is safe to call Close multiple times.
type Source interface {
	// Root returns the container's root group.
	Root() Group

	// Close releases resources associated with the source.
	Close() error
}

// Meta describes a dataset's shape and element kind.
type Meta struct {
	Kind Kind
	Dims []uint64
}

// Rank returns the number of dimensions. Scalar datasets have rank 0.
func (m Meta) Rank() int {
	return len(m.Dims)
}

// Length returns the element count along the first dimension, or 0 for
// scalar datasets.
func (m Meta) Length() int {
	if len(m.Dims) == 0 {
		return 0
	}
	return int(m.Dims[0])
}

// OpenError reports a container that could not be opened: the file is
// missing, unreadable, or not a valid container.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open container %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
