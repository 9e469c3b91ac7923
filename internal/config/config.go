// Package config loads gridwalk settings from defaults, an optional YAML
// file, GRIDWALK_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/logging"
	"github.com/katalvlaran/gridwalk/playback"
	"github.com/katalvlaran/gridwalk/search"
)

// EnvPrefix prefixes every environment override, e.g. GRIDWALK_ROWS.
const EnvPrefix = "GRIDWALK"

// Viper keys.
const (
	KeyRows      = "rows"
	KeyCols      = "cols"
	KeyStart     = "start"
	KeyEnd       = "end"
	KeyWalls     = "walls"
	KeyMap       = "map"
	KeyAlgorithm = "algorithm"
	KeyStepDelay = "step_delay"
	KeyCacheSize = "cache_size"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Config holds every tunable setting.
type Config struct {
	Rows      int           `mapstructure:"rows" yaml:"rows"`
	Cols      int           `mapstructure:"cols" yaml:"cols"`
	Start     string        `mapstructure:"start" yaml:"start"`
	End       string        `mapstructure:"end" yaml:"end"`
	Walls     []string      `mapstructure:"walls" yaml:"walls,omitempty"`
	Map       string        `mapstructure:"map" yaml:"map,omitempty"`
	Algorithm string        `mapstructure:"algorithm" yaml:"algorithm"`
	StepDelay time.Duration `mapstructure:"step_delay" yaml:"step_delay"`
	CacheSize int           `mapstructure:"cache_size" yaml:"cache_size"`
	Log       LogConfig     `mapstructure:"log" yaml:"log"`
}

// LogConfig selects logger level and format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in settings: the stock 12×24 board with Start at
// (2,2) and End at (9,20), BFS, a 20ms step delay and info-level text logs.
func Default() Config {
	opts := grid.DefaultOptions()
	return Config{
		Rows:      opts.Rows,
		Cols:      opts.Cols,
		Start:     FormatPosition(opts.Start),
		End:       FormatPosition(opts.End),
		Algorithm: search.BFS.String(),
		StepDelay: playback.DefaultStepDelay,
		CacheSize: search.DefaultCacheSize,
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyRows, d.Rows)
	v.SetDefault(KeyCols, d.Cols)
	v.SetDefault(KeyStart, d.Start)
	v.SetDefault(KeyEnd, d.End)
	v.SetDefault(KeyMap, "")
	v.SetDefault(KeyAlgorithm, d.Algorithm)
	v.SetDefault(KeyStepDelay, d.StepDelay)
	v.SetDefault(KeyCacheSize, d.CacheSize)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
}

// Load reads configuration into a Config. If path is empty, gridwalk.yaml is
// looked up in the working directory and then $HOME; a missing file is not
// an error. An explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gridwalk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	if c.Map == "" {
		if c.Rows <= 0 || c.Cols <= 0 {
			return fmt.Errorf("config: rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
		}
		if c.Rows > grid.MaxCells/c.Cols {
			return fmt.Errorf("config: %w: %dx%d board exceeds %d cells", grid.ErrInvalidLayout, c.Rows, c.Cols, grid.MaxCells)
		}
		if _, err := ParsePosition(c.Start); err != nil {
			return fmt.Errorf("config: start: %w", err)
		}
		if _, err := ParsePosition(c.End); err != nil {
			return fmt.Errorf("config: end: %w", err)
		}
		if _, err := ParsePositions(c.Walls); err != nil {
			return fmt.Errorf("config: walls: %w", err)
		}
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("config: step_delay must not be negative, got %s", c.StepDelay)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SearchAlgorithm returns the configured algorithm.
func (c *Config) SearchAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algorithm)
}

// Grid builds the initial board: from the ASCII map file when Map is set,
// otherwise from Rows, Cols, Start, End and Walls.
func (c *Config) Grid() (*grid.Grid, error) {
	if c.Map != "" {
		data, err := os.ReadFile(c.Map)
		if err != nil {
			return nil, fmt.Errorf("config: read map: %w", err)
		}
		return grid.Parse(string(data))
	}
	start, err := ParsePosition(c.Start)
	if err != nil {
		return nil, err
	}
	end, err := ParsePosition(c.End)
	if err != nil {
		return nil, err
	}
	walls, err := ParsePositions(c.Walls)
	if err != nil {
		return nil, err
	}
	return grid.New(c.Rows, c.Cols, start, end, walls...)
}

// Write encodes c as YAML, suitable for a gridwalk.yaml file.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// ParsePosition parses "row,col".
func ParsePosition(s string) (grid.Position, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Position{}, fmt.Errorf("position %q: col: %w", s, err)
	}
	return grid.Pos(row, col), nil
}

// ParsePositions parses every entry with ParsePosition.
func ParsePositions(ss []string) ([]grid.Position, error) {
	out := make([]grid.Position, 0, len(ss))
	for _, s := range ss {
		p, err := ParsePosition(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// FormatPosition renders p as "row,col".
func FormatPosition(p grid.Position) string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}
