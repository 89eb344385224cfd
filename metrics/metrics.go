package metrics

import (
	"errors"
	"fmt"

	"github.com/sartorproj/rankplot/table"
)

// Column names shared by the run and sweep schemas.
const (
	ColN            = "n"
	ColStepCount    = "step_count"
	ColLabeledCount = "labeled_count"
	ColAvgPhase     = "avg_phase"
)

// RunSchema is the layout of a single-run trace: one row per sample.
var RunSchema = table.Schema{
	{Name: ColStepCount, Kind: table.Int},
	{Name: ColLabeledCount, Kind: table.Int},
	{Name: ColAvgPhase, Kind: table.Float},
}

// SweepSchema is the layout of a population-size sweep: one row per
// converged run.
var SweepSchema = table.Schema{
	{Name: ColN, Kind: table.Int},
	{Name: ColStepCount, Kind: table.Int},
	{Name: ColLabeledCount, Kind: table.Int},
}

// ErrPopulation is returned for a population size that cannot normalize.
var ErrPopulation = errors.New("population size must be positive")

// Run is a single simulation trace with its normalized step axis.
type Run struct {
	N              int
	Steps          []int64
	Labeled        []int64
	Phase          []float64
	NormalizedStep []float64 // Steps[i] / N²
}

// Len returns the number of samples.
func (r *Run) Len() int {
	return len(r.Steps)
}

// NewRun builds a Run from a table in RunSchema layout, normalizing every
// step count by n².
func NewRun(t *table.Table, n int) (*Run, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPopulation, n)
	}

	steps, err := t.Ints(ColStepCount)
	if err != nil {
		return nil, err
	}
	labeled, err := t.Ints(ColLabeledCount)
	if err != nil {
		return nil, err
	}
	phase, err := t.Floats(ColAvgPhase)
	if err != nil {
		return nil, err
	}

	nn := float64(n) * float64(n)
	normalized := make([]float64, len(steps))
	for i, s := range steps {
		normalized[i] = float64(s) / nn
	}

	return &Run{
		N:              n,
		Steps:          steps,
		Labeled:        labeled,
		Phase:          phase,
		NormalizedStep: normalized,
	}, nil
}

// LoadRun loads a run trace from a CSV file and normalizes it by n².
// A nil opts reads the file with table.DefaultOptions.
func LoadRun(path string, n int, opts *table.Options) (*Run, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPopulation, n)
	}
	t, err := table.Load(path, RunSchema, opts)
	if err != nil {
		return nil, err
	}
	return NewRun(t, n)
}

// LabeledFloats returns the labeled counts as float64 for plotting.
func (r *Run) LabeledFloats() []float64 {
	out := make([]float64, len(r.Labeled))
	for i, v := range r.Labeled {
		out[i] = float64(v)
	}
	return out
}
