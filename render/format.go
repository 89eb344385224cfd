package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"gonum.org/v1/plot/vg/vgtex"
)

// Format is an output file format.
type Format string

const (
	// PGF is a bare pgfpicture meant to be \input into a LaTeX document.
	PGF Format = "pgf"
	// TeX is a standalone LaTeX document wrapping the pgfpicture.
	TeX Format = "tex"
	SVG Format = "svg"
	PDF Format = "pdf"
	EPS Format = "eps"
	PNG Format = "png"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("unsupported output format")

// PNGDPI is the raster resolution of PNG output.
const PNGDPI = 300

// Formats lists every supported format.
func Formats() []Format {
	return []Format{PGF, TeX, SVG, PDF, EPS, PNG}
}

// ParseFormat parses a format name such as "pgf" or ".svg".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrFormat, path)
	}
	return ParseFormat(ext)
}

// LaTeX reports whether text in this format is typeset by LaTeX.
func (f Format) LaTeX() bool {
	return f == PGF || f == TeX
}

// newCanvas creates a vector or raster canvas of the given size.
func (f Format) newCanvas(w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch f {
	case PGF:
		return vgtex.New(w, h), nil
	case TeX:
		return vgtex.NewDocument(w, h), nil
	case SVG:
		return vgsvg.New(w, h), nil
	case PDF:
		return vgpdf.New(w, h), nil
	case EPS:
		return vgeps.New(w, h), nil
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(PNGDPI))}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, string(f))
	}
}

// saveFile creates path and writes a chart into it with write.
// A partially written file is removed on failure.
func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}
