package data

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vdobler/tufte"
)

func TestStrings(t *testing.T) {
	s := Strings("b", "a", "b", "c")
	assert.Equal(t, []string{"b", "a", "c"}, s.Categories)
	assert.Equal(t, []float64{0, 1, 0, 2}, s.Values)
	assert.True(t, s.IsCategorical())
	assert.Equal(t, []string{"b", "a", "b", "c"}, s.Labels())
}

func TestAsCategories(t *testing.T) {
	s := AsCategories(Ints(2018, 2019, 2019, 2020))
	assert.Equal(t, []string{"2018", "2019", "2020"}, s.Categories)
	assert.Equal(t, []float64{0, 1, 1, 2}, s.Values)

	c := Strings("x")
	assert.Equal(t, c, AsCategories(c))
}

var resolveTests = []struct {
	src  Source
	tab  Table
	want Series
}{
	{Floats(1, 2), nil, Floats(1, 2)},
	{Column("a"), Frame{"a": Ints(3, 4)}, Series{Name: "a", Values: []float64{3, 4}}},
	{Column("s"), Frame{"s": Strings("u", "v")},
		Series{Name: "s", Values: []float64{0, 1}, Categories: []string{"u", "v"}}},
}

func TestResolve(t *testing.T) {
	for i, tc := range resolveTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := Resolve(tc.src, tc.tab)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	frame := Frame{"year": Ints(1, 2), "value": Floats(3, 4)}

	_, err := Resolve(Column("pop"), frame)
	var mc *tufte.MissingColumnError
	require.True(t, errors.As(err, &mc), "got %v", err)
	assert.Equal(t, "pop", mc.Column)
	assert.Equal(t, []string{"value", "year"}, mc.Available)

	_, err = Resolve(Column("year"), nil)
	var ia *tufte.InvalidArgumentError
	assert.True(t, errors.As(err, &ia), "got %v", err)

	_, err = Resolve(nil, frame)
	assert.True(t, errors.As(err, &ia), "got %v", err)
}

func TestGGTable(t *testing.T) {
	tab := new(table.Builder).
		Add("name", []string{"go", "rust", "go"}).
		Add("n", []int{1, 2, 3}).
		Add("t", []float64{0.5, 1.5, 2.5}).
		Add("u", []uint8{7, 8, 9}).
		Add("b", []bool{true, false, true}).
		Done()
	g := GGTable{tab}

	s, err := g.Column("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, s.Categories)
	assert.Equal(t, "name", s.Name)

	s, err = g.Column("n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Values)

	s, err = g.Column("u")
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, s.Values)

	_, err = g.Column("b")
	var ia *tufte.InvalidArgumentError
	assert.True(t, errors.As(err, &ia), "got %v", err)

	_, err = Resolve(Column("population"), g)
	var mc *tufte.MissingColumnError
	require.True(t, errors.As(err, &mc), "got %v", err)
	assert.Equal(t, []string{"name", "n", "t", "u", "b"}, mc.Available)
}

func TestNewGGTable(t *testing.T) {
	x := Strings("a", "b")
	x.Name = "x"
	y := Floats(1, 2)
	y.Name = "y"

	g := NewGGTable(x, y)
	assert.Equal(t, []string{"x", "y"}, g.Columns())
	got, err := g.Column("x")
	require.NoError(t, err)
	assert.Equal(t, x, got)
}

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, row := range [][]interface{}{
		{"month", "sales", "note"},
		{"Jan", 12.5, "ok"},
		{"Feb", nil, "missing"},
		{"Mar", 30, 7},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	sh, err := ReadSheet(f, sheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"month", "sales", "note"}, sh.Columns())

	month, err := sh.Column("month")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, month.Categories)

	sales, err := sh.Column("sales")
	require.NoError(t, err)
	require.Len(t, sales.Values, 3)
	assert.Equal(t, 12.5, sales.Values[0])
	assert.True(t, math.IsNaN(sales.Values[1]))
	assert.Equal(t, 30.0, sales.Values[2])

	note, err := sh.Column("note")
	require.NoError(t, err)
	assert.True(t, note.IsCategorical())

	_, err = sh.Column("profit")
	var mc *tufte.MissingColumnError
	assert.True(t, errors.As(err, &mc), "got %v", err)

	_, err = ReadSheet(f, "NoSuchSheet")
	assert.Error(t, err)
}
