package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
server:
  host: 127.0.0.1
  port: 9000
auth:
  enabled: true
  secret: topsecret
  issuer: hexview
grid:
  shape: rectangle
  width: 12
  height: 6
  orientation: flat
  size: 18.5
  origin_x: -10
render:
  palette: terrain
  labels: true
  seed: 42
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "topsecret", cfg.Auth.Secret)
	assert.Equal(t, "rectangle", cfg.Grid.Shape)
	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, "flat", cfg.Grid.Orientation)
	assert.Equal(t, 18.5, cfg.Grid.Size)
	assert.Equal(t, -10.0, cfg.Grid.OriginX)
	assert.Equal(t, "terrain", cfg.Render.Palette)
	assert.True(t, cfg.Render.Labels)
	assert.Equal(t, int64(42), cfg.Render.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTemp(t, "server:\n  host: 0.0.0.0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 64, cfg.Server.MaxShapeRadius)
	assert.Equal(t, "hexagon", cfg.Grid.Shape)
	assert.Equal(t, 5, cfg.Grid.Radius)
	assert.Equal(t, "pointy", cfg.Grid.Orientation)
	assert.Equal(t, 24.0, cfg.Grid.Size)
	assert.Equal(t, "flat", cfg.Render.Palette)
	assert.Equal(t, 2, cfg.Render.Supersample)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Auth.Enabled)
}

func TestDefaultMatchesEmptyLoad(t *testing.T) {
	path := writeTemp(t, "")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := writeTemp(t, "server: [not, a, mapping")
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
