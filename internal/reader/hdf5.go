package reader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scigolib/hdf5"
)

// Open opens an HDF5 container for reading.
//
// Returns an *OpenError if the file does not exist or is not a valid
// HDF5 file.
func Open(path string) (Source, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &hdf5Source{file: f}, nil
}

type hdf5Source struct {
	file *hdf5.File
}

func (s *hdf5Source) Root() Group {
	return &hdf5Group{group: s.file.Root()}
}

func (s *hdf5Source) Close() error {
	return s.file.Close()
}

type hdf5Group struct {
	group *hdf5.Group
}

func (g *hdf5Group) Name() string {
	return g.group.Name()
}

func (g *hdf5Group) Children() []Node {
	children := g.group.Children()
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		switch obj := child.(type) {
		case *hdf5.Group:
			nodes = append(nodes, &hdf5Group{group: obj})
		case *hdf5.Dataset:
			nodes = append(nodes, &hdf5Dataset{dataset: obj})
		}
	}
	return nodes
}

type hdf5Dataset struct {
	dataset *hdf5.Dataset
}

func (d *hdf5Dataset) Name() string {
	return d.dataset.Name()
}

func (d *hdf5Dataset) Meta() (Meta, error) {
	info, err := d.dataset.Info()
	if err != nil {
		return Meta{}, fmt.Errorf("failed to read dataset metadata: %w", err)
	}
	return parseDatasetInfo(info)
}

func (d *hdf5Dataset) Floats() ([]float64, error) {
	return d.dataset.Read()
}

func (d *hdf5Dataset) Strings() ([]string, error) {
	return d.dataset.ReadStrings()
}

// infoPattern matches the metadata summary emitted by hdf5.Dataset.Info,
// e.g. "Dataset: float (size=8 bytes), 1D array [5], contiguous (...)".
// The dataspace part is one of "scalar", "null", "unknown" or
// "<k>D array [<dims>]" where dims are separated by " x " (2D) or
// spaces (3D and up).
var infoPattern = regexp.MustCompile(
	`^Dataset: ([a-z_][a-z_0-9]*) \(size=\d+ bytes\), ` +
		`(scalar|null|unknown|\d+D array \[[^\]]*\]), `)

// parseDatasetInfo recovers element kind and dimensions from the Info
// string. The hdf5 library exposes dataset metadata publicly only in
// this rendered form.
func parseDatasetInfo(info string) (Meta, error) {
	m := infoPattern.FindStringSubmatch(info)
	if m == nil {
		return Meta{}, fmt.Errorf("unrecognized dataset info %q", info)
	}

	var meta Meta
	switch m[1] {
	case "integer":
		meta.Kind = KindInteger
	case "float":
		meta.Kind = KindFloat
	case "string":
		meta.Kind = KindText
	default:
		meta.Kind = KindUnknown
	}

	space := m[2]
	if space == "scalar" || space == "null" || space == "unknown" {
		return meta, nil
	}

	open := strings.Index(space, "[")
	dims := strings.FieldsFunc(space[open+1:len(space)-1], func(r rune) bool {
		return r < '0' || r > '9'
	})
	for _, d := range dims {
		n, err := strconv.ParseUint(d, 10, 64)
		if err != nil {
			return Meta{}, fmt.Errorf("unrecognized dataset dimensions %q", info)
		}
		meta.Dims = append(meta.Dims, n)
	}
	return meta, nil
}
