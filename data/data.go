// Package data contains the coordinate data of charts: series of values,
// named columns of tabular sources and the resolution of one into the
// other.
package data

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vdobler/tufte"
)

// Series is the ordered coordinate data of one dimension of a chart.
//
// A numeric series has Categories == nil. A categorical series lists its
// distinct categories in order of first appearance and Values[i] is the
// position of element i in Categories. NaN values are missing values.
type Series struct {
	Name       string
	Values     []float64
	Categories []string
}

// Len returns the number of elements in s.
func (s Series) Len() int { return len(s.Values) }

// IsCategorical reports whether s holds categories instead of numbers.
func (s Series) IsCategorical() bool { return s.Categories != nil }

// Labels returns one label per element of s: the category for
// categorical series, the formatted value otherwise.
func (s Series) Labels() []string {
	labels := make([]string, len(s.Values))
	for i, v := range s.Values {
		switch {
		case s.IsCategorical() && !math.IsNaN(v):
			labels[i] = s.Categories[int(v)]
		case math.IsNaN(v):
			labels[i] = ""
		default:
			labels[i] = tufte.FormatTick(v)
		}
	}
	return labels
}

// Floats returns a numeric series.
func Floats(xs ...float64) Series {
	return Series{Values: append([]float64(nil), xs...)}
}

// Ints returns a numeric series of the integers is.
func Ints(is ...int) Series {
	s := Series{Values: make([]float64, len(is))}
	for i, v := range is {
		s.Values[i] = float64(v)
	}
	return s
}

// Strings returns a categorical series.
func Strings(ss ...string) Series {
	s := Series{Values: make([]float64, len(ss)), Categories: []string{}}
	pos := make(map[string]int)
	for i, v := range ss {
		p, ok := pos[v]
		if !ok {
			p = len(s.Categories)
			pos[v] = p
			s.Categories = append(s.Categories, v)
		}
		s.Values[i] = float64(p)
	}
	return s
}

// AsCategories turns s into a categorical series: numeric values are
// formatted and become the categories. A categorical s is returned
// unchanged.
func AsCategories(s Series) Series {
	if s.IsCategorical() {
		return s
	}
	c := Strings(s.Labels()...)
	c.Name = s.Name
	return c
}

// ----------------------------------------------------------------------------
// Sources

// A Source is coordinate data given either literally (a Series) or by
// name (a Column in some Table).
type Source interface {
	source()
}

func (Series) source() {}

// Column references a column of a Table by name.
type Column string

func (Column) source() {}

// A Table is a tabular data source with named columns.
type Table interface {
	// Column returns the named column. A missing column results in a
	// *tufte.MissingColumnError.
	Column(name string) (Series, error)

	// Columns lists the available column names.
	Columns() []string
}

// Resolve turns src into a Series. A Column is looked up in t.
func Resolve(src Source, t Table) (Series, error) {
	switch s := src.(type) {
	case Series:
		return s, nil
	case Column:
		if t == nil {
			return Series{}, &tufte.InvalidArgumentError{
				Option: "data",
				Value:  string(s),
				Reason: "column reference without a table",
			}
		}
		col, err := t.Column(string(s))
		if err != nil {
			return Series{}, err
		}
		if col.Name == "" {
			col.Name = string(s)
		}
		return col, nil
	case nil:
		return Series{}, &tufte.InvalidArgumentError{Option: "data", Value: nil, Reason: "missing"}
	}
	return Series{}, &tufte.InvalidArgumentError{
		Option: "data",
		Value:  fmt.Sprintf("%T", src),
		Reason: "unsupported source",
	}
}

// parseCells turns the cell texts of one column into a Series. The
// column is numeric if every non-empty cell parses as a number; empty
// cells are missing values then. Otherwise it is categorical.
func parseCells(name string, cells []string) Series {
	values := make([]float64, len(cells))
	for i, c := range cells {
		if c == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			s := Strings(cells...)
			s.Name = name
			return s
		}
		values[i] = v
	}
	return Series{Name: name, Values: values}
}
