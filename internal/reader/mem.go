package reader

// MemSource is an in-memory Source, useful for tests and for callers
// that already hold their data as Go slices.
type MemSource struct {
	root *MemGroup
}

// NewMemSource creates a source rooted at the given group.
func NewMemSource(root *MemGroup) *MemSource {
	return &MemSource{root: root}
}

// Root returns the root group.
func (s *MemSource) Root() Group { return s.root }

// Close is a no-op for in-memory sources.
func (s *MemSource) Close() error { return nil }

// MemGroup is an in-memory Group.
type MemGroup struct {
	name     string
	children []Node
}

// NewMemGroup creates a group with the given children, kept in the
// given order.
func NewMemGroup(name string, children ...Node) *MemGroup {
	return &MemGroup{name: name, children: children}
}

// Name returns the group's name.
func (g *MemGroup) Name() string { return g.name }

// Children returns the child nodes in insertion order.
func (g *MemGroup) Children() []Node { return g.children }

// MemDataset is an in-memory Dataset.
type MemDataset struct {
	name    string
	meta    Meta
	floats  []float64
	strings []string
	readErr error
}

// NewMemFloats creates a one-dimensional float dataset.
func NewMemFloats(name string, values []float64) *MemDataset {
	return &MemDataset{
		name:   name,
		meta:   Meta{Kind: KindFloat, Dims: []uint64{uint64(len(values))}},
		floats: values,
	}
}

// NewMemInts creates a one-dimensional integer dataset. Values are held
// as float64, matching how the HDF5 backend surfaces numeric data.
func NewMemInts(name string, values []int64) *MemDataset {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return &MemDataset{
		name:   name,
		meta:   Meta{Kind: KindInteger, Dims: []uint64{uint64(len(values))}},
		floats: floats,
	}
}

// NewMemStrings creates a one-dimensional text dataset.
func NewMemStrings(name string, values []string) *MemDataset {
	return &MemDataset{
		name:    name,
		meta:    Meta{Kind: KindText, Dims: []uint64{uint64(len(values))}},
		strings: values,
	}
}

// WithDims overrides the dataset's dimensions, e.g. to model a matrix.
// Returns the dataset for chaining.
func (d *MemDataset) WithDims(dims ...uint64) *MemDataset {
	d.meta.Dims = dims
	return d
}

// WithKind overrides the dataset's element kind. Returns the dataset
// for chaining.
func (d *MemDataset) WithKind(kind Kind) *MemDataset {
	d.meta.Kind = kind
	return d
}

// FailReads makes Floats and Strings return err, to model an I/O
// failure mid-read. Returns the dataset for chaining.
func (d *MemDataset) FailReads(err error) *MemDataset {
	d.readErr = err
	return d
}

// Name returns the dataset's name.
func (d *MemDataset) Name() string { return d.name }

// Meta returns the dataset's shape and element kind.
func (d *MemDataset) Meta() (Meta, error) { return d.meta, nil }

// Floats returns the numeric values.
func (d *MemDataset) Floats() ([]float64, error) {
	if d.readErr != nil {
		return nil, d.readErr
	}
	return d.floats, nil
}

// Strings returns the text values.
func (d *MemDataset) Strings() ([]string, error) {
	if d.readErr != nil {
		return nil, d.readErr
	}
	return d.strings, nil
}
