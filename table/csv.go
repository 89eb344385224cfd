package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Options holds options for CSV loading.
type Options struct {
	Delimiter rune // Field delimiter (default: ',')
	Comment   rune // Lines starting with this rune are ignored (default: none)
}

// DefaultOptions returns the options matching the simulator's output:
// comma-delimited, no comment lines.
func DefaultOptions() *Options {
	return &Options{
		Delimiter: ',',
	}
}

// ErrFieldCount is wrapped by a ParseError when a row does not have one
// field per schema column.
var ErrFieldCount = errors.New("wrong number of fields")

// ErrNonFinite is wrapped by a ParseError when a float field holds NaN or
// an infinity.
var ErrNonFinite = errors.New("non-finite value")

// IOError reports a file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a row that could not be converted to the schema.
type ParseError struct {
	Row    int    // 1-based line of the offending record
	Column int    // 0-based field index, -1 for row-level errors
	Field  string // raw field text
	Kind   Kind
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %d: cannot parse %q as %s: %v", e.Row, e.Column, e.Field, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a table from a CSV file.
func Load(filename string, schema Schema, opts *Options) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{Path: filename, Err: err}
	}
	defer file.Close()

	t, err := LoadReader(file, schema, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return nil, &IOError{Path: filename, Err: err}
	}
	return t, nil
}

// LoadReader reads a table from an io.Reader. The first record is data;
// there is no header row. Any failing row aborts the load.
func LoadReader(r io.Reader, schema Schema, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true
	// Arity is checked below so the error carries the row number in our own type.
	reader.FieldsPerRecord = -1

	t := New(schema)
	ints := make([]int64, len(schema))
	floats := make([]float64, len(schema))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Row: csvErr.Line, Column: -1, Err: csvErr.Err}
			}
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		if len(record) != len(schema) {
			return nil, &ParseError{
				Row:    line,
				Column: -1,
				Err:    fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(record), len(schema)),
			}
		}

		for i, c := range schema {
			field := strings.TrimSpace(record[i])
			switch c.Kind {
			case Int:
				v, err := strconv.ParseInt(field, 10, 64)
				if err != nil {
					return nil, &ParseError{Row: line, Column: i, Field: field, Kind: c.Kind, Err: numError(err)}
				}
				ints[i] = v
			case Float:
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, &ParseError{Row: line, Column: i, Field: field, Kind: c.Kind, Err: numError(err)}
				}
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, &ParseError{Row: line, Column: i, Field: field, Kind: c.Kind, Err: ErrNonFinite}
				}
				floats[i] = v
			}
		}
		t.appendRow(ints, floats)
	}

	return t, nil
}

// numError strips the strconv wrapper, whose message repeats the field.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
