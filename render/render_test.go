package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/stats"
	"github.com/sartorproj/rankplot/table"
)

func testRun(t *testing.T, csvData string, n int) *metrics.Run {
	t.Helper()
	tbl, err := table.LoadReader(strings.NewReader(csvData), metrics.RunSchema, nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	run, err := metrics.NewRun(tbl, n)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	return run
}

func testSweep(t *testing.T, csvData string) *metrics.Sweep {
	t.Helper()
	tbl, err := table.LoadReader(strings.NewReader(csvData), metrics.SweepSchema, nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	s, err := metrics.NewSweep(tbl)
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}
	return s
}

const runCSV = `0,0,0.0
16384,40,2.0
32768,120,4.5
49152,200,6.0
65536,250,8.0
`

const sweepCSV = `16,256,8
16,300,8
16,512,12
16,900,14
16,1000,15
32,1024,16
32,1500,16
32,3000,24
32,4100,28
32,5000,30
64,4096,32
64,5000,32
64,20000,32
`

func TestNewRunChart(t *testing.T) {
	rc, err := NewRunChart(testRun(t, runCSV, 256), DefaultOptions())
	if err != nil {
		t.Fatalf("NewRunChart: %v", err)
	}

	p := rc.Plot
	if p.X.Min != 0 || p.X.Max != 1.0 {
		t.Errorf("x range = [%g, %g], want [0, 1]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 || math.Abs(p.Y.Max-262.5) > 1e-12 {
		t.Errorf("left y range = [%g, %g], want [0, 262.5]", p.Y.Min, p.Y.Max)
	}
	if p.Y.Label.Text != "number of labeled agents" {
		t.Errorf("left label = %q", p.Y.Label.Text)
	}

	leftTicks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	if len(leftTicks) != 6 || leftTicks[5].Value != 250 {
		t.Errorf("left ticks = %v, want 0..250 step 50", leftTicks)
	}

	if rc.right.Min != 0 || math.Abs(rc.right.Max-10.5) > 1e-12 {
		t.Errorf("right y range = [%g, %g], want [0, 10.5]", rc.right.Min, rc.right.Max)
	}
	if rc.right.Label != "average phase" {
		t.Errorf("right label = %q", rc.right.Label)
	}
	if len(rc.right.visibleTicks()) != 5 {
		t.Errorf("right ticks = %v, want 0..8 step 2", rc.right.Ticks)
	}
	if rc.right.size() <= 0 {
		t.Error("right axis should reserve horizontal space")
	}
}

func TestTwinAxisMapping(t *testing.T) {
	rc, err := NewRunChart(testRun(t, runCSV, 256), DefaultOptions())
	if err != nil {
		t.Fatalf("NewRunChart: %v", err)
	}

	tests := []struct {
		phase float64
		host  float64
	}{
		{0, 0},
		{PhaseMax, LabeledMax},
		{4.2, 105},
	}
	for _, tt := range tests {
		got := rc.right.toHost(tt.phase)
		if math.Abs(got-tt.host) > 1e-9 {
			t.Errorf("toHost(%g) = %g, want %g", tt.phase, got, tt.host)
		}
	}
}

func TestWriteRunPGF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRun(&buf, testRun(t, runCSV, 256), DefaultOptions()); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"pgfpicture", "number of labeled agents", "average phase"} {
		if !strings.Contains(out, want) {
			t.Errorf("PGF output missing %q", want)
		}
	}
	if strings.Contains(out, `\documentclass`) {
		t.Error("PGF output should be a bare picture, not a document")
	}
}

func TestWriteRunTeXDocument(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = TeX

	var buf bytes.Buffer
	if err := WriteRun(&buf, testRun(t, runCSV, 256), opts); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	if !strings.Contains(buf.String(), `\documentclass`) {
		t.Error("TeX output should be a standalone document")
	}
}

func TestWriteRunDeterministic(t *testing.T) {
	run := testRun(t, runCSV, 256)

	for _, f := range []Format{PGF, TeX, SVG} {
		opts := DefaultOptions()
		opts.Format = f

		var a, b bytes.Buffer
		if err := WriteRun(&a, run, opts); err != nil {
			t.Fatalf("WriteRun(%s): %v", f, err)
		}
		if err := WriteRun(&b, run, opts); err != nil {
			t.Fatalf("WriteRun(%s): %v", f, err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s output differs between identical runs", f)
		}
	}
}

func TestWriteRunEmpty(t *testing.T) {
	for _, f := range []Format{PGF, SVG, PNG} {
		opts := DefaultOptions()
		opts.Format = f

		var buf bytes.Buffer
		if err := WriteRun(&buf, testRun(t, "", 256), opts); err != nil {
			t.Errorf("WriteRun(%s) on empty run: %v", f, err)
		}
		if buf.Len() == 0 {
			t.Errorf("WriteRun(%s) on empty run wrote nothing", f)
		}
	}
}

func TestWriteRunSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRun(&buf, testRun(t, "0,0,0.0\n", 256), DefaultOptions()); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
}

func TestSaveRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run_256.pgf")

	// Existing output is replaced.
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SaveRun(path, testRun(t, runCSV, 256), DefaultOptions()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(string(data), "stale") || !strings.Contains(string(data), "pgfpicture") {
		t.Errorf("unexpected file content: %.80q", data)
	}

	if err := SaveRun(filepath.Join(dir, "missing", "run.pgf"), testRun(t, runCSV, 256), DefaultOptions()); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestNewSweepChart(t *testing.T) {
	sc, err := NewSweepChart(testSweep(t, sweepCSV), DefaultOptions())
	if err != nil {
		t.Fatalf("NewSweepChart: %v", err)
	}

	// n = 16, 32, 64 against labels 1/2, 3/4, 7/8, 15/16.
	if len(sc.Boxes) != 3 {
		t.Fatalf("expected 3 x categories, got %d", len(sc.Boxes))
	}
	for gi, row := range sc.Boxes {
		if len(row) != 4 {
			t.Fatalf("category %d: expected 4 label slots, got %d", gi, len(row))
		}
	}

	// n=64 only has 1/2 rows.
	if sc.Boxes[2][0] == nil {
		t.Error("expected a box for n=64, 1/2")
	}
	for li := 1; li < 4; li++ {
		if sc.Boxes[2][li] != nil {
			t.Errorf("unexpected box for n=64, label %d", li)
		}
	}

	// Boxes of one category sit side by side, symmetric about the center.
	first, last := sc.Boxes[0][0], sc.Boxes[0][3]
	if first == nil || last == nil {
		t.Fatal("expected boxes for n=16, 1/2 and 15/16")
	}
	if first.Offset >= 0 || first.Offset != -last.Offset {
		t.Errorf("offsets = %v, %v; want symmetric about 0", first.Offset, last.Offset)
	}
	if first.Location != 0 || sc.Boxes[1][0].Location != 1 {
		t.Errorf("box locations = %g, %g; want 0, 1", first.Location, sc.Boxes[1][0].Location)
	}

	p := sc.Plot
	if p.Y.Min != 0 {
		t.Errorf("y lower bound = %g, want 0", p.Y.Min)
	}
	if p.X.Label.Text != "n" {
		t.Errorf("x label = %q, want n", p.X.Label.Text)
	}
}

func TestSweepBoxStatistics(t *testing.T) {
	// Normalized steps 1..10 and 30 for n=16, 1/2. Linear interpolation
	// puts Q1 at 3.5; the median-of-halves rule would give 3.
	var csvData strings.Builder
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 30} {
		csvData.WriteString("16," + strconv.Itoa(v*256) + ",8\n")
	}
	s := testSweep(t, csvData.String())

	sc, err := NewSweepChart(s, DefaultOptions())
	if err != nil {
		t.Fatalf("NewSweepChart: %v", err)
	}
	b := sc.Boxes[0][0]
	if b == nil {
		t.Fatal("expected a box for n=16, 1/2")
	}

	want := stats.Summarize(s.Select(16, "1/2"))
	tests := []struct {
		name      string
		got, want float64
	}{
		{"Quartile1", b.Quartile1, want.Q1},
		{"Median", b.Median, want.Median},
		{"Quartile3", b.Quartile3, want.Q3},
		{"AdjLow", b.AdjLow, want.AdjLow},
		{"AdjHigh", b.AdjHigh, want.AdjHigh},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %g, want %g", tt.name, tt.got, tt.want)
		}
	}
	if b.Quartile1 != 3.5 || b.Median != 6 || b.Quartile3 != 8.5 {
		t.Errorf("quartiles = %g, %g, %g; want 3.5, 6, 8.5", b.Quartile1, b.Median, b.Quartile3)
	}
	if b.AdjHigh != 10 {
		t.Errorf("AdjHigh = %g, want 10", b.AdjHigh)
	}
	if len(b.Outside) != 1 || b.Values[b.Outside[0]] != 30 {
		t.Errorf("Outside = %v, want the index of 30", b.Outside)
	}
}

func TestWriteSweep(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSweep(&buf, testSweep(t, sweepCSV), DefaultOptions()); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"pgfpicture", "ranked fraction", "15/16"} {
		if !strings.Contains(out, want) {
			t.Errorf("PGF output missing %q", want)
		}
	}
}

func TestWriteSweepDeterministic(t *testing.T) {
	s := testSweep(t, sweepCSV)

	var a, b bytes.Buffer
	if err := WriteSweep(&a, s, DefaultOptions()); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}
	if err := WriteSweep(&b, s, DefaultOptions()); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("sweep output differs between identical runs")
	}
}

func TestWriteSweepEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSweep(&buf, testSweep(t, ""), DefaultOptions()); err != nil {
		t.Fatalf("WriteSweep on empty sweep: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("WriteSweep on empty sweep wrote nothing")
	}
}

func TestSaveSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranktimes.svg")
	opts := DefaultOptions()
	opts.Format = SVG

	if err := SaveSweep(path, testSweep(t, sweepCSV), opts); err != nil {
		t.Fatalf("SaveSweep: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("expected SVG document, got %.80q", data)
	}
}

func TestWritePreview(t *testing.T) {
	run := testRun(t, runCSV, 256)

	var png bytes.Buffer
	if err := WritePreview(&png, run, PNG); err != nil {
		t.Fatalf("WritePreview(png): %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Error("PNG preview lacks PNG signature")
	}

	var svg bytes.Buffer
	if err := WritePreview(&svg, run, SVG); err != nil {
		t.Fatalf("WritePreview(svg): %v", err)
	}
	if !strings.Contains(svg.String(), "<svg") {
		t.Error("SVG preview lacks svg element")
	}

	if err := WritePreview(&svg, run, PDF); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for pdf preview, got %v", err)
	}
	if err := WritePreview(&svg, testRun(t, "", 256), PNG); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty run, got %v", err)
	}
}

func TestSavePreview(t *testing.T) {
	dir := t.TempDir()
	if err := SavePreview(filepath.Join(dir, "run.png"), testRun(t, runCSV, 256)); err != nil {
		t.Fatalf("SavePreview: %v", err)
	}
	if err := SavePreview(filepath.Join(dir, "run.pdf"), testRun(t, runCSV, 256)); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "run.pdf")); !os.IsNotExist(err) {
		t.Error("failed preview should not leave a file behind")
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	d := DefaultOptions()
	if o != d {
		t.Errorf("zero Options filled as %+v, want %+v", o, d)
	}
}
