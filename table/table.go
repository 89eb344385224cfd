package table

import (
	"errors"
	"fmt"
	"math"
)

// Kind is the scalar type a column is parsed into.
type Kind int

const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column describes one field of a row.
type Column struct {
	Name string
	Kind Kind
}

// Schema lists the columns of a file in field order.
type Schema []Column

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

var (
	// ErrNoColumn is returned when a column name is not part of the schema.
	ErrNoColumn = errors.New("table: no such column")
	// ErrKind is returned when a column is read as the wrong kind.
	ErrKind = errors.New("table: column kind mismatch")
)

// Table holds one ordered sequence per schema column.
// Tables are built once by the loader and never mutated afterwards.
type Table struct {
	Schema Schema
	ints   [][]int64
	floats [][]float64
	rows   int
}

// New creates an empty table for the schema.
func New(schema Schema) *Table {
	return &Table{
		Schema: schema,
		ints:   make([][]int64, len(schema)),
		floats: make([][]float64, len(schema)),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Ints returns the named integer column.
func (t *Table) Ints(name string) ([]int64, error) {
	i, err := t.lookup(name, Int)
	if err != nil {
		return nil, err
	}
	return t.ints[i], nil
}

// Floats returns the named float column.
func (t *Table) Floats(name string) ([]float64, error) {
	i, err := t.lookup(name, Float)
	if err != nil {
		return nil, err
	}
	return t.floats[i], nil
}

func (t *Table) lookup(name string, kind Kind) (int, error) {
	i := t.Schema.Index(name)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	if t.Schema[i].Kind != kind {
		return -1, fmt.Errorf("%w: %q is %s, not %s", ErrKind, name, t.Schema[i].Kind, kind)
	}
	return i, nil
}

// appendRow stores already-parsed values. ints and floats are indexed by
// column and only the slot matching the column kind is read.
func (t *Table) appendRow(ints []int64, floats []float64) {
	for i, c := range t.Schema {
		if c.Kind == Int {
			t.ints[i] = append(t.ints[i], ints[i])
		} else {
			t.floats[i] = append(t.floats[i], floats[i])
		}
	}
	t.rows++
}

// Max returns the largest value in values, or NaN for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

