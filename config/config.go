package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/stockcharts/chart"
	"github.com/rustyeddy/stockcharts/market"
)

// EnvPrefix prefixes every environment override, e.g. STOCKCHARTS_DATA_DIR.
const EnvPrefix = "STOCKCHARTS"

// Config represents the complete charting run configuration
type Config struct {
	Data        DataConfig         `json:"data" yaml:"data"`
	Instruments []InstrumentConfig `json:"instruments" yaml:"instruments"`
	Ranges      RangesConfig       `json:"ranges" yaml:"ranges"`
	Snapshot    SnapshotConfig     `json:"snapshot" yaml:"snapshot"`
	Charts      ChartsConfig       `json:"charts" yaml:"charts"`
	Output      OutputConfig       `json:"output" yaml:"output"`
	Journal     JournalConfig      `json:"journal" yaml:"journal"`
}

// DataConfig locates the input files
type DataConfig struct {
	Dir        string `json:"dir" yaml:"dir"`
	DateLayout string `json:"date_layout,omitempty" yaml:"date_layout,omitempty"`
}

// InstrumentConfig names one equity and its price file
type InstrumentConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Name   string `json:"name" yaml:"name"`
	File   string `json:"file" yaml:"file"`
}

// RangesConfig holds the two year ranges charted
type RangesConfig struct {
	Recent     market.YearRange `json:"recent" yaml:"recent"`
	Historical market.YearRange `json:"historical" yaml:"historical"`
}

// SnapshotConfig picks the single day shown in the indicator bar chart
type SnapshotConfig struct {
	Instrument string `json:"instrument" yaml:"instrument"`
	Date       string `json:"date" yaml:"date"` // YYYY-MM-DD
}

// ChartsConfig contains palette choices
type ChartsConfig struct {
	CandlePalette string   `json:"candle_palette" yaml:"candle_palette"`
	TrendPalettes []string `json:"trend_palettes" yaml:"trend_palettes"`
	BarColors     []string `json:"bar_colors,omitempty" yaml:"bar_colors,omitempty"`
	ShowTrend     bool     `json:"show_trend" yaml:"show_trend"`
}

// OutputConfig contains render and serve targets
type OutputConfig struct {
	Dir  string `json:"dir" yaml:"dir"`
	Addr string `json:"addr" yaml:"addr"`
}

// JournalConfig contains export parameters
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// envOverrides lists the values that may come from the environment.
type envOverrides struct {
	DataDir     string `envconfig:"DATA_DIR"`
	OutputDir   string `envconfig:"OUTPUT_DIR"`
	Addr        string `envconfig:"ADDR"`
	JournalType string `envconfig:"JOURNAL_TYPE"`
	JournalPath string `envconfig:"JOURNAL_PATH"`
}

// Load reads path when it exists, falls back to Default otherwise, then
// applies .env and STOCKCHARTS_* environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		c, err := LoadFromFile(path)
		switch {
		case err == nil:
			cfg = c
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from STOCKCHARTS_* variables.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if env.DataDir != "" {
		c.Data.Dir = env.DataDir
	}
	if env.OutputDir != "" {
		c.Output.Dir = env.OutputDir
	}
	if env.Addr != "" {
		c.Output.Addr = env.Addr
	}
	if env.JournalType != "" {
		c.Journal.Type = env.JournalType
	}
	if env.JournalPath != "" {
		c.Journal.Path = env.JournalPath
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument is required")
	}
	seen := make(map[string]bool, len(c.Instruments))
	for i, in := range c.Instruments {
		if in.Symbol == "" {
			return fmt.Errorf("instruments[%d].symbol is required", i)
		}
		if in.File == "" {
			return fmt.Errorf("instruments[%d].file is required", i)
		}
		// symbols compare case insensitively
		key := strings.ToUpper(in.Symbol)
		if seen[key] {
			return fmt.Errorf("duplicate instrument: %s", in.Symbol)
		}
		seen[key] = true
	}
	if c.Ranges.Recent.Start > c.Ranges.Recent.End {
		return fmt.Errorf("ranges.recent start must not be after end")
	}
	if c.Ranges.Historical.Start > c.Ranges.Historical.End {
		return fmt.Errorf("ranges.historical start must not be after end")
	}
	if c.Snapshot.Instrument != "" && !seen[strings.ToUpper(c.Snapshot.Instrument)] {
		return fmt.Errorf("unknown snapshot instrument: %s", c.Snapshot.Instrument)
	}
	if c.Snapshot.Instrument != "" {
		if _, err := market.ParseDate(c.Snapshot.Date); err != nil {
			return fmt.Errorf("snapshot.date: %w", err)
		}
	}
	if _, err := chart.PaletteByName(c.Charts.CandlePalette); err != nil {
		return fmt.Errorf("charts.candle_palette: %w", err)
	}
	for _, p := range c.Charts.TrendPalettes {
		if _, err := chart.PaletteByName(p); err != nil {
			return fmt.Errorf("charts.trend_palettes: %w", err)
		}
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s type", c.Journal.Type)
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// InstrumentPath resolves an instrument file against data.dir.
func (c *Config) InstrumentPath(in InstrumentConfig) string {
	if filepath.IsAbs(in.File) || c.Data.Dir == "" {
		return in.File
	}
	return filepath.Join(c.Data.Dir, in.File)
}

// Instrument finds an instrument by symbol.
func (c *Config) Instrument(symbol string) (InstrumentConfig, bool) {
	for _, in := range c.Instruments {
		if strings.EqualFold(in.Symbol, symbol) {
			return in, true
		}
	}
	return InstrumentConfig{}, false
}

// DateLayouts returns the configured date layout, or nil for the default
// set.
func (c *Config) DateLayouts() []string {
	if c.Data.DateLayout == "" {
		return nil
	}
	return []string{c.Data.DateLayout}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./data",
		},
		Instruments: []InstrumentConfig{
			{Symbol: "AAPL", Name: "Apple", File: "apple.csv"},
			{Symbol: "MSFT", Name: "Microsoft", File: "MicroSoft.csv"},
			{Symbol: "SSNLF", Name: "Samsung", File: "Samsung.csv"},
		},
		Ranges: RangesConfig{
			Recent:     market.YearRange{Start: 2020, End: 2022},
			Historical: market.YearRange{Start: 2007, End: 2009},
		},
		Snapshot: SnapshotConfig{
			Instrument: "AAPL",
			Date:       "2022-03-17",
		},
		Charts: ChartsConfig{
			CandlePalette: "candles",
			TrendPalettes: []string{"default", "colorblind"},
		},
		Output: OutputConfig{
			Dir:  "./charts",
			Addr: "localhost:8080",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
