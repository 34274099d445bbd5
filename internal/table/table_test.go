package table

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/h5table/internal/catalog"
	"github.com/scigolib/h5table/internal/reader"
	"github.com/scigolib/h5table/internal/selector"
)

func selectAll(t *testing.T, src reader.Source) []selector.Column {
	t.Helper()
	cat := catalog.Build(src, zerolog.Nop())
	cols, err := selector.Select(cat, selector.Options{})
	require.NoError(t, err)
	return cols
}

func TestMaterialize(t *testing.T) {
	src := reader.NewMemSource(reader.NewMemGroup("/",
		reader.NewMemInts("x", []int64{1, 2, 3}),
		reader.NewMemFloats("y", []float64{1.5, 2.5}),
		reader.NewMemStrings("s", []string{"hi", "lo"}),
	))

	cols, err := Materialize(selectAll(t, src))
	require.NoError(t, err)
	require.Len(t, cols, 3)

	assert.Equal(t, "x", cols[0].Name)
	assert.Equal(t, reader.KindInteger, cols[0].Kind)
	assert.Equal(t, []float64{1, 2, 3}, cols[0].Floats)
	assert.Equal(t, 3, cols[0].Len())

	assert.Equal(t, []float64{1.5, 2.5}, cols[1].Floats)
	assert.Equal(t, []string{"hi", "lo"}, cols[2].Strings)
	assert.Equal(t, 2, cols[2].Len())
}

func TestMaterialize_ReadErrorNamesColumn(t *testing.T) {
	src := reader.NewMemSource(reader.NewMemGroup("/",
		reader.NewMemFloats("good", []float64{1, 2}),
		reader.NewMemFloats("bad", []float64{3, 4}).FailReads(errors.New("disk gone")),
	))

	_, err := Materialize(selectAll(t, src))
	require.Error(t, err)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "bad", readErr.Column)
	assert.ErrorContains(t, err, "disk gone")
}

func TestBuild_Padding(t *testing.T) {
	cells := [][]string{
		{"1", "2", "3"},
		{"1.5", "2.5"},
	}
	tbl := Build([]string{"x", "y"}, cells, "")

	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, [][]string{
		{"1", "1.5"},
		{"2", "2.5"},
		{"3", ""},
	}, tbl.Rows)
}

func TestBuild_PaddingOnlyPastNativeLength(t *testing.T) {
	cells := [][]string{
		{"a"},
		{"1", "2", "3", "4"},
		{"x", "y"},
	}
	tbl := Build([]string{"c1", "c2", "c3"}, cells, "-")

	require.Equal(t, 4, tbl.RowCount())
	for _, row := range tbl.Rows {
		assert.Len(t, row, 3)
	}

	// Each short column is padded exactly (rowCount - length) times,
	// and only at the tail.
	assert.Equal(t, []string{"a", "-", "-", "-"}, columnOf(tbl, 0))
	assert.Equal(t, []string{"1", "2", "3", "4"}, columnOf(tbl, 1))
	assert.Equal(t, []string{"x", "y", "-", "-"}, columnOf(tbl, 2))
}

func TestBuild_Empty(t *testing.T) {
	tbl := Build(nil, nil, "")
	assert.Equal(t, 0, tbl.RowCount())
	assert.Empty(t, tbl.Rows)
}

func columnOf(t Table, i int) []string {
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}
