package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sartorproj/rankplot/table"
)

// ErrInvariantViolation marks input that breaks an invariant the simulator
// guarantees, such as a labeled fraction outside the rank table.
var ErrInvariantViolation = errors.New("invariant violation")

// rankTable maps the exact labeled fractions the simulator stops at to
// their display labels. Order is the legend order.
var rankTable = []struct {
	fraction float64
	label    string
}{
	{0.5, "1/2"},
	{0.75, "3/4"},
	{0.875, "7/8"},
	{0.9375, "15/16"},
}

// RankLabel maps a labeled fraction to its rank label. Only the four exact
// fractions of the rank table are accepted.
func RankLabel(fraction float64) (string, bool) {
	for _, r := range rankTable {
		if fraction == r.fraction {
			return r.label, true
		}
	}
	return "", false
}

// RankLabels returns every rank label in legend order.
func RankLabels() []string {
	labels := make([]string, len(rankTable))
	for i, r := range rankTable {
		labels[i] = r.label
	}
	return labels
}

// FractionError reports a sweep row whose labeled fraction has no rank label.
type FractionError struct {
	Row      int // 1-based
	N        int64
	Labeled  int64
	Fraction float64
}

func (e *FractionError) Error() string {
	return fmt.Sprintf("%v: row %d: labeled fraction %d/%d = %g is not a ranked fraction",
		ErrInvariantViolation, e.Row, e.Labeled, e.N, e.Fraction)
}

func (e *FractionError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// Sweep holds converged runs over several population sizes.
type Sweep struct {
	N               []int64
	Steps           []int64
	Labeled         []int64
	NormalizedStep  []float64 // Steps[i] / N[i]²
	LabeledFraction []float64 // Labeled[i] / N[i]
	RankLabel       []string
}

// Len returns the number of rows.
func (s *Sweep) Len() int {
	return len(s.N)
}

// NewSweep builds a Sweep from a table in SweepSchema layout. A row whose
// labeled fraction is not in the rank table fails the whole sweep with a
// *FractionError.
func NewSweep(t *table.Table) (*Sweep, error) {
	ns, err := t.Ints(ColN)
	if err != nil {
		return nil, err
	}
	steps, err := t.Ints(ColStepCount)
	if err != nil {
		return nil, err
	}
	labeled, err := t.Ints(ColLabeledCount)
	if err != nil {
		return nil, err
	}

	s := &Sweep{
		N:               ns,
		Steps:           steps,
		Labeled:         labeled,
		NormalizedStep:  make([]float64, len(ns)),
		LabeledFraction: make([]float64, len(ns)),
		RankLabel:       make([]string, len(ns)),
	}

	for i, n := range ns {
		nf := float64(n)
		s.NormalizedStep[i] = float64(steps[i]) / (nf * nf)
		s.LabeledFraction[i] = float64(labeled[i]) / nf

		label, ok := RankLabel(s.LabeledFraction[i])
		if !ok || n <= 0 {
			return nil, &FractionError{Row: i + 1, N: n, Labeled: labeled[i], Fraction: s.LabeledFraction[i]}
		}
		s.RankLabel[i] = label
	}

	return s, nil
}

// LoadSweep loads a sweep from a CSV file and derives its metrics.
// A nil opts reads the file with table.DefaultOptions.
func LoadSweep(path string, opts *table.Options) (*Sweep, error) {
	t, err := table.Load(path, SweepSchema, opts)
	if err != nil {
		return nil, err
	}
	s, err := NewSweep(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Groups returns the distinct population sizes in ascending order and the
// rank labels present, in legend order.
func (s *Sweep) Groups() (ns []int64, labels []string) {
	seenN := make(map[int64]bool)
	seenLabel := make(map[string]bool)
	for i, n := range s.N {
		if !seenN[n] {
			seenN[n] = true
			ns = append(ns, n)
		}
		seenLabel[s.RankLabel[i]] = true
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })

	for _, label := range RankLabels() {
		if seenLabel[label] {
			labels = append(labels, label)
		}
	}
	return ns, labels
}

// Select returns the normalized steps of the rows with population size n
// and rank label label, in row order.
func (s *Sweep) Select(n int64, label string) []float64 {
	var out []float64
	for i := range s.N {
		if s.N[i] == n && s.RankLabel[i] == label {
			out = append(out, s.NormalizedStep[i])
		}
	}
	return out
}
