package selector

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/h5table/internal/catalog"
	"github.com/scigolib/h5table/internal/reader"
)

func testCatalog(t *testing.T) []catalog.Descriptor {
	t.Helper()
	src := reader.NewMemSource(reader.NewMemGroup("/",
		reader.NewMemFloats("a", []float64{1, 2}),
		reader.NewMemFloats("b", []float64{3, 4}),
		reader.NewMemGroup("grp",
			reader.NewMemFloats("c", []float64{5, 6}),
		),
	))
	cat := catalog.Build(src, zerolog.Nop())
	require.Len(t, cat, 3)
	return cat
}

func names(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.DisplayName
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"all in tree order", Options{}, []string{"a", "b", "c"}},
		{"allow-list order wins", Options{Columns: []string{"b", "a"}}, []string{"b", "a"}},
		{"ignore filters", Options{Ignore: []string{"b"}}, []string{"a", "c"}},
		{"ignore wins over allow", Options{Columns: []string{"a", "b"}, Ignore: []string{"b"}}, []string{"a"}},
		{"full names", Options{FullName: true}, []string{"/a", "/b", "/grp/c"}},
		{"full-name allow-list", Options{Columns: []string{"/grp/c", "/a"}, FullName: true}, []string{"/grp/c", "/a"}},
		{"full-name ignore", Options{Ignore: []string{"/b"}, FullName: true}, []string{"/a", "/grp/c"}},
		{"duplicate allow entries repeat", Options{Columns: []string{"a", "a"}}, []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := Select(testCatalog(t), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(cols))
		})
	}
}

func TestSelect_UnknownColumn(t *testing.T) {
	_, err := Select(testCatalog(t), Options{Columns: []string{"a", "typo"}})
	require.Error(t, err)

	var unknown *UnknownColumnError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "typo", unknown.Name)
}

func TestSelect_IgnoredUnknownDoesNotError(t *testing.T) {
	// Ignore wins before the allow-list is checked, so a name present
	// in both lists never reports as unknown.
	cols, err := Select(testCatalog(t), Options{
		Columns: []string{"a", "ghost"},
		Ignore:  []string{"ghost"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(cols))
}

func TestSelect_LeafNameMatchesAllOccurrences(t *testing.T) {
	src := reader.NewMemSource(reader.NewMemGroup("/",
		reader.NewMemFloats("t", []float64{1, 2}),
		reader.NewMemGroup("run1",
			reader.NewMemFloats("t", []float64{3, 4}),
		),
	))
	cat := catalog.Build(src, zerolog.Nop())

	cols, err := Select(cat, Options{Columns: []string{"t"}})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "/t", cols[0].Descriptor.FullName())
	assert.Equal(t, "/run1/t", cols[1].Descriptor.FullName())
}
