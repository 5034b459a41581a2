package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	set := cfg.Settings()
	assert.Equal(t, graph.DefaultSettings().Padding, set.Padding)
	assert.Equal(t, graph.DefaultSettings().Gutter, set.Gutter)
	assert.Equal(t, 10, set.X.MaxDivisions)
	assert.Equal(t, 5, set.Y.Subdivisions)
	assert.Equal(t, "%Y-%m-%d", set.X.Format.TimeFormat)
	assert.Equal(t, graph.Category10, cfg.Colors())
	assert.Equal(t, graph.CurveLinear, set.Curve)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "graph.yaml")
	body := []byte(`
width: 1024
palette: tableau10
curve: step-after
margins:
  left: 40
x_axis:
  max_divisions: -1
  time_format: "%d %b"
y_axis:
  min_spacing: 30
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(file, body, 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 40.0, cfg.Margins.Left)
	assert.Equal(t, 12.0, cfg.Margins.Top)
	assert.Equal(t, graph.Unbounded, cfg.XAxis.MaxDivisions)
	assert.Equal(t, "%d %b", cfg.XAxis.TimeFormat)
	assert.Equal(t, 30.0, cfg.YAxis.MinSpacing)
	assert.Equal(t, 10, cfg.YAxis.MaxDivisions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, graph.Tableau10, cfg.Colors())
	assert.Equal(t, graph.CurveStepAfter, cfg.Settings().Curve)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GRAPH_HEIGHT", "480")
	t.Setenv("GRAPH_X_AXIS_SUBDIVISIONS", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 480.0, cfg.Height)
	assert.Equal(t, 2, cfg.XAxis.Subdivisions)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "graph.yaml")
	body := []byte(`
curve: spline
x_axis:
  max_divisions: 0
y_axis:
  time_format: "%q"
`)
	require.NoError(t, os.WriteFile(file, body, 0o644))
	_, err = Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x_axis")
	assert.Contains(t, err.Error(), "y_axis")
	assert.Contains(t, err.Error(), "spline")
}
