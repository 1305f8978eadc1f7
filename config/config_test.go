package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/flightpath/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "data/routes.csv", cfg.Dataset.Path)
	assert.False(t, cfg.Dataset.Bidirectional)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Zero(t, cfg.Query.MaxDistance)
}

func TestParse_Sections(t *testing.T) {
	cfg, err := config.Parse(`
[dataset]
path = "airports.csv"
bidirectional = true
multi_edges = true

[query]
max_distance = 2500.5

[log]
level = "debug"
format = "json"

[server]
addr = "127.0.0.1:9000"
enabled = true

[output]
precision = 3
`)
	require.NoError(t, err)
	assert.Equal(t, config.Dataset{Path: "airports.csv", Bidirectional: true, MultiEdges: true}, cfg.Dataset)
	assert.Equal(t, 2500.5, cfg.Query.MaxDistance)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, config.Server{Addr: "127.0.0.1:9000", Enabled: true}, cfg.Server)
	assert.Equal(t, 3, cfg.Output.Precision)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative distance":  "[query]\nmax_distance = -1",
		"bad level":          "[log]\nlevel = \"loud\"",
		"bad format":         "[log]\nformat = \"xml\"",
		"bad precision":      "[output]\nprecision = 9",
		"negative precision": "[output]\nprecision = -1",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(doc)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse("[dataset\npath=")
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dataset]\npath = \"x.csv\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x.csv", cfg.Dataset.Path)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigureLogger(t *testing.T) {
	cfg, err := config.Parse("[log]\nlevel = \"warn\"\nformat = \"json\"")
	require.NoError(t, err)

	l := logrus.New()
	cfg.ConfigureLogger(l)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestParse_ZeroPrecisionMeansDefault(t *testing.T) {
	cfg, err := config.Parse("[output]\nprecision = 0")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Output.Precision)
}
