// Package config loads flightpath.toml. Load reads the file, decodes it with
// BurntSushi/toml, fills defaults and validates every section.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded flightpath.toml.
type Config struct {
	Dataset Dataset `toml:"dataset"`
	Query   Query   `toml:"query"`
	Log     Log     `toml:"log"`
	Server  Server  `toml:"server"`
	Output  Output  `toml:"output"`
}

// Dataset describes the route file and how rows become routes.
type Dataset struct {
	Path          string `toml:"path"`
	Bidirectional bool   `toml:"bidirectional"`
	MultiEdges    bool   `toml:"multi_edges"`
}

// Query tunes the shortest-path engine. MaxDistance 0 means unlimited.
type Query struct {
	MaxDistance float64 `toml:"max_distance"`
}

// Log selects the logrus level and formatter.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Server configures the HTTP API.
type Server struct {
	Addr    string `toml:"addr"`
	Enabled bool   `toml:"enabled"`
}

// Output controls how distances are printed. Precision 0 (unset) means 2.
type Output struct {
	Precision int `toml:"precision"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(string(data))
}

// Parse decodes TOML text, applies defaults and validates the result.
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateDataset(&cfg); err != nil {
		return nil, err
	}
	if err := validateQuery(&cfg); err != nil {
		return nil, err
	}
	if err := validateLog(&cfg); err != nil {
		return nil, err
	}
	if err := validateOutput(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		cfg.Dataset.Path = "data/routes.csv"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if strings.TrimSpace(cfg.Log.Format) == "" {
		cfg.Log.Format = "text"
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Output.Precision == 0 {
		cfg.Output.Precision = 2
	}
}

func validateDataset(cfg *Config) error {
	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		return fmt.Errorf("%w: dataset.path is empty", ErrInvalidConfig)
	}

	return nil
}

func validateQuery(cfg *Config) error {
	d := cfg.Query.MaxDistance
	if d < 0 || math.IsNaN(d) {
		return fmt.Errorf("%w: query.max_distance must be >= 0, got %v", ErrInvalidConfig, d)
	}

	return nil
}

func validateLog(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be \"text\" or \"json\", got %q", ErrInvalidConfig, cfg.Log.Format)
	}

	return nil
}

func validateOutput(cfg *Config) error {
	if cfg.Output.Precision < 1 || cfg.Output.Precision > 6 {
		return fmt.Errorf("%w: output.precision must be in [1,6], got %d", ErrInvalidConfig, cfg.Output.Precision)
	}

	return nil
}

// ConfigureLogger applies the [log] section to l.
func (c *Config) ConfigureLogger(l *logrus.Logger) {
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		l.SetLevel(lvl)
	}
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
