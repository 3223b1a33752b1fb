package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-suggester/internal/logger"
	"recipe-suggester/internal/suggest"
)

// isolated returns options that ignore the developer's own config and .env files.
func isolated(t *testing.T, args ...string) Options {
	t.Helper()
	return Options{Args: args, SearchPaths: []string{t.TempDir()}}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, "foods.csv", cfg.CatalogPath)
	assert.Equal(t, 3, cfg.GridSize)
	assert.Equal(t, 9, cfg.DisplaySize())
	assert.Equal(t, suggest.DefaultMinRanked, cfg.MinRanked)
	assert.Equal(t, "ranked", cfg.Truncate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Enabled)
	assert.True(t, cfg.Debug.Timing)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "recipe-suggester.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
catalog: from-file.csv
grid_size: 4
truncate: shuffle
log:
  level: debug
`), 0o644))

	opts := Options{SearchPaths: []string{dir}}
	cfg, err := LoadWithOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, "from-file.csv", cfg.CatalogPath)
	assert.Equal(t, 4, cfg.GridSize)
	assert.Equal(t, "shuffle", cfg.Truncate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, file, cfg.ConfigFile)

	t.Setenv("RECIPE_GRID_SIZE", "2")
	t.Setenv("RECIPE_LOG_LEVEL", "warn")
	cfg, err = LoadWithOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.GridSize)
	assert.Equal(t, "warn", cfg.Log.Level)

	opts.Args = []string{"--grid-size=5", "--catalog", "from-flag.csv"}
	cfg, err = LoadWithOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.GridSize)
	assert.Equal(t, "from-flag.csv", cfg.CatalogPath)

	opts.Args = []string{"--catalog", "from-flag.csv", "positional.csv"}
	cfg, err = LoadWithOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, "positional.csv", cfg.CatalogPath)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RECIPE_SEED=1234\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("RECIPE_SEED") })

	cfg, err := LoadWithOptions(Options{EnvFiles: []string{envFile, filepath.Join(dir, "missing.env")}, SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, int64(1234), cfg.EngineConfig().Seed)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	_, err := LoadWithOptions(isolated(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"grid too small", []string{"--grid-size=0"}},
		{"grid too large", []string{"--grid-size=11"}},
		{"bad truncate", []string{"--truncate=random"}},
		{"bad level", []string{"--log-level=loud"}},
		{"empty catalog", []string{"--catalog="}},
		{"unknown flag", []string{"--colour=green"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithOptions(isolated(t, tt.args...))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg, err := LoadWithOptions(isolated(t, "--truncate=shuffle", "--seed=9"))
	require.NoError(t, err)

	engineCfg := cfg.EngineConfig()
	assert.Equal(t, suggest.TruncateShuffled, engineCfg.Truncate)
	assert.Equal(t, int64(9), engineCfg.Seed)
	assert.Equal(t, suggest.DefaultMinRanked, engineCfg.MinRanked)
}

func TestDebugConfig(t *testing.T) {
	cfg, err := LoadWithOptions(isolated(t, "--log-level=debug", "--log-json", "--log-file=/tmp/x.log"))
	require.NoError(t, err)

	dc := cfg.DebugConfig()
	assert.Equal(t, logger.DebugLevel, dc.LogLevel)
	assert.True(t, dc.UseJSONLogging)
	assert.True(t, dc.EnableTimingTracking)
	assert.Equal(t, "/tmp/x.log", dc.LogFile)

	cfg, err = LoadWithOptions(isolated(t, "--production", "--log-level=debug"))
	require.NoError(t, err)

	dc = cfg.DebugConfig()
	assert.Equal(t, logger.WarnLevel, dc.LogLevel)
	assert.True(t, dc.UseJSONLogging)
	assert.False(t, dc.EnableTimingTracking)
}
