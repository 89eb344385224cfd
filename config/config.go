package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/rankplot/logging"
	"github.com/sartorproj/rankplot/render"
	"github.com/sartorproj/rankplot/table"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultRunOutput       = "run_256.pgf"
	DefaultRankTimesOutput = "ranktimes.pgf"
	DefaultLogLevel        = "info"
	DefaultWidthIn         = 3.5
	DefaultHeightIn        = 3.5 / 1.8
	DefaultFontSizePt      = 9
	DefaultBoxWidthPt      = 5
)

// Config is the top-level rankplot configuration.
type Config struct {
	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// Format forces the output format (pgf | tex | svg | pdf | eps | png).
	// Empty means: derive it from the output file extension.
	Format string `yaml:"format"`

	Input     InputConfig  `yaml:"input"`
	Figure    FigureConfig `yaml:"figure"`
	Run       OutputConfig `yaml:"run"`
	RankTimes OutputConfig `yaml:"ranktimes"`
	BoxPlot   BoxConfig    `yaml:"boxplot"`
}

// InputConfig controls how simulator CSV files are read.
type InputConfig struct {
	// Comment is a single character; lines starting with it are skipped.
	// Empty means every line is data.
	Comment string `yaml:"comment"`
}

// FigureConfig sets the physical size of every figure.
type FigureConfig struct {
	WidthIn    float64 `yaml:"width_in"`
	HeightIn   float64 `yaml:"height_in"`
	FontSizePt float64 `yaml:"font_size_pt"`
}

// OutputConfig names the file one chart command writes.
type OutputConfig struct {
	Output string `yaml:"output"`
}

// BoxConfig holds grouped box plot settings.
type BoxConfig struct {
	// BoxWidthPt is the width of a single box in points.
	BoxWidthPt float64 `yaml:"box_width_pt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Figure: FigureConfig{
			WidthIn:    DefaultWidthIn,
			HeightIn:   DefaultHeightIn,
			FontSizePt: DefaultFontSizePt,
		},
		Run:       OutputConfig{Output: DefaultRunOutput},
		RankTimes: OutputConfig{Output: DefaultRankTimesOutput},
		BoxPlot:   BoxConfig{BoxWidthPt: DefaultBoxWidthPt},
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Figure.WidthIn <= 0 {
		return fmt.Errorf("figure.width_in must be positive")
	}
	if cfg.Figure.HeightIn <= 0 {
		return fmt.Errorf("figure.height_in must be positive")
	}
	if cfg.Figure.FontSizePt <= 0 {
		return fmt.Errorf("figure.font_size_pt must be positive")
	}
	if cfg.BoxPlot.BoxWidthPt <= 0 {
		return fmt.Errorf("boxplot.box_width_pt must be positive")
	}
	if cfg.Run.Output == "" {
		return fmt.Errorf("run.output is required")
	}
	if cfg.RankTimes.Output == "" {
		return fmt.Errorf("ranktimes.output is required")
	}
	if c := cfg.Input.Comment; c != "" {
		r, size := utf8.DecodeRuneInString(c)
		if size != len(c) || r == ',' || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
			return fmt.Errorf("input.comment %q must be a single character other than a comma, quote or newline", c)
		}
	}
	if cfg.Format != "" {
		if _, err := render.ParseFormat(cfg.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := logging.CheckLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// RenderOptions resolves the figure settings for a chart written to path.
// An explicit Format wins over the path's extension.
func (c *Config) RenderOptions(path string) (render.Options, error) {
	var (
		f   render.Format
		err error
	)
	if c.Format != "" {
		f, err = render.ParseFormat(c.Format)
	} else {
		f, err = render.FormatFromPath(path)
	}
	if err != nil {
		return render.Options{}, err
	}

	return render.Options{
		Format:   f,
		Width:    vg.Length(c.Figure.WidthIn) * vg.Inch,
		Height:   vg.Length(c.Figure.HeightIn) * vg.Inch,
		FontSize: vg.Points(c.Figure.FontSizePt),
		BoxWidth: vg.Points(c.BoxPlot.BoxWidthPt),
	}, nil
}

// TableOptions returns the CSV options for reading simulator output.
func (c *Config) TableOptions() *table.Options {
	opts := table.DefaultOptions()
	if c.Input.Comment != "" {
		opts.Comment, _ = utf8.DecodeRuneInString(c.Input.Comment)
	}
	return opts
}
