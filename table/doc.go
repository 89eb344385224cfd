// Package table loads headerless simulator CSV files into typed columns.
//
// A Schema names the columns of a file in field order and declares the
// scalar kind of each. Loading is all-or-nothing: every row must carry
// exactly one field per schema column and every field must parse, or the
// whole load fails.
//
// # Loading a File
//
//	schema := table.Schema{
//	    {Name: "step_count", Kind: table.Int},
//	    {Name: "labeled_count", Kind: table.Int},
//	    {Name: "avg_phase", Kind: table.Float},
//	}
//	t, err := table.Load("run.csv", schema, nil)
//
// # Reading Columns
//
// Columns come back index-aligned with the file's row order:
//
//	steps, err := t.Ints("step_count")
//	phase, err := t.Floats("avg_phase")
//
// # Errors
//
// A file that cannot be opened yields *IOError. A field that does not parse,
// or a row with the wrong number of fields, yields *ParseError carrying the
// 1-based row and 0-based column.
package table
