package data

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"

	"github.com/vdobler/tufte"
)

// ----------------------------------------------------------------------------
// Frame

// Frame is an in-memory Table.
type Frame map[string]Series

var _ Table = Frame{}

// Column implements Table.
func (f Frame) Column(name string) (Series, error) {
	s, ok := f[name]
	if !ok {
		return Series{}, &tufte.MissingColumnError{Column: name, Available: f.Columns()}
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// Columns implements Table. The names are sorted.
func (f Frame) Columns() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ----------------------------------------------------------------------------
// go-gg tables

// GGTable adapts a go-gg table to a Table. Columns of strings become
// categorical series; columns of any type convertible to float64 become
// numeric series.
type GGTable struct {
	*table.Table
}

var _ Table = GGTable{}

// Column implements Table.
func (g GGTable) Column(name string) (s Series, err error) {
	col := g.Table.Column(name)
	if col == nil {
		return Series{}, &tufte.MissingColumnError{Column: name, Available: g.Columns()}
	}

	switch c := col.(type) {
	case []float64:
		s = Floats(c...)
	case []int:
		s = Ints(c...)
	case []string:
		s = Strings(c...)
	default:
		var fs []float64
		defer func() {
			if r := recover(); r != nil {
				err = &tufte.InvalidArgumentError{
					Option: "column",
					Value:  name,
					Reason: fmt.Sprintf("cannot use %T as coordinates", col),
				}
			}
		}()
		slice.Convert(&fs, col)
		s = Series{Values: fs}
	}
	s.Name = name
	return s, nil
}

// Columns implements Table.
func (g GGTable) Columns() []string { return g.Table.Columns() }

// NewGGTable builds a go-gg table from the Series in cols, in the given
// order.
func NewGGTable(cols ...Series) GGTable {
	b := new(table.Builder)
	for _, c := range cols {
		if c.IsCategorical() {
			b.Add(c.Name, c.Labels())
		} else {
			b.Add(c.Name, append([]float64(nil), c.Values...))
		}
	}
	return GGTable{b.Done()}
}

// ----------------------------------------------------------------------------
// Spreadsheets

// Sheet is a Table read from a worksheet. The first row holds the column
// names, the following rows the data.
type Sheet struct {
	names []string
	cols  map[string]Series
}

var _ Table = (*Sheet)(nil)

// ReadSheet reads the named worksheet of f.
func ReadSheet(f *excelize.File, sheet string) (*Sheet, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("data: reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data: sheet %q: %w", sheet, tufte.ErrEmptyInput)
	}

	header, body := rows[0], rows[1:]
	sh := &Sheet{cols: make(map[string]Series, len(header))}
	for j, name := range header {
		if name == "" {
			continue
		}
		cells := make([]string, len(body))
		for i, row := range body {
			if j < len(row) {
				cells[i] = row[j]
			}
		}
		sh.names = append(sh.names, name)
		sh.cols[name] = parseCells(name, cells)
	}
	tufte.Logger().Debug("read sheet", "sheet", sheet, "columns", len(sh.names), "rows", len(body))
	return sh, nil
}

// Column implements Table.
func (sh *Sheet) Column(name string) (Series, error) {
	s, ok := sh.cols[name]
	if !ok {
		return Series{}, &tufte.MissingColumnError{Column: name, Available: sh.Columns()}
	}
	return s, nil
}

// Columns implements Table. The names are in sheet order.
func (sh *Sheet) Columns() []string {
	return append([]string(nil), sh.names...)
}
