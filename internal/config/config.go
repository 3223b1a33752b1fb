// Package config assembles the application settings from, in rising order of
// precedence: built-in defaults, an optional config file, a .env file, the
// process environment (RECIPE_ prefix) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/logger"
	"recipe-suggester/internal/suggest"
)

const (
	AppName   = "recipe-suggester"
	EnvPrefix = "RECIPE"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	CatalogPath string `mapstructure:"catalog"`
	GridSize    int    `mapstructure:"grid_size"`
	MinRanked   int    `mapstructure:"min_ranked"`
	Truncate    string `mapstructure:"truncate"`
	Seed        int64  `mapstructure:"seed"`
	Production  bool   `mapstructure:"production"`

	Log   LogConfig   `mapstructure:"log"`
	Debug DebugConfig `mapstructure:"debug"`

	// ConfigFile is the file that was read, empty when none was found
	ConfigFile string `mapstructure:"-"`
}

type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	JSON    bool   `mapstructure:"json"`
	File    string `mapstructure:"file"`
}

type DebugConfig struct {
	Timing bool `mapstructure:"timing"`
}

// Options controls where Load looks for its sources
type Options struct {
	Args        []string
	EnvFiles    []string
	SearchPaths []string
}

func DefaultOptions(args []string) Options {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	return Options{
		Args:        args,
		EnvFiles:    []string{".env"},
		SearchPaths: paths,
	}
}

// Load reads the configuration for the given command-line arguments
func Load(args []string) (*Config, error) {
	return LoadWithOptions(DefaultOptions(args))
}

func LoadWithOptions(opts Options) (*Config, error) {
	for _, file := range opts.EnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	fs := newFlagSet()
	if err := fs.Parse(opts.Args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile, _ := fs.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(AppName)
		for _, path := range opts.SearchPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// a bare positional argument names the catalog, as in `recipe-suggester foods.csv`
	if fs.NArg() > 0 {
		v.Set("catalog", fs.Arg(0))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "foods.csv")
	v.SetDefault("grid_size", 3)
	v.SetDefault("min_ranked", suggest.DefaultMinRanked)
	v.SetDefault("truncate", suggest.TruncateRanked.String())
	v.SetDefault("seed", 0)
	v.SetDefault("production", false)
	v.SetDefault("log.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("debug.timing", true)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("catalog", "foods.csv", "path to the food catalog")
	fs.Int("grid-size", 3, "cards per grid row and column")
	fs.String("truncate", "ranked", "how to cut an over-full suggestion list: ranked or shuffle")
	fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.Bool("log-json", false, "write JSON log lines")
	fs.String("log-file", "", "append logs to this file instead of stdout")
	fs.Bool("production", false, "JSON logs at warn level, no timing")
	return fs
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"catalog":    "catalog",
		"grid_size":  "grid-size",
		"truncate":   "truncate",
		"seed":       "seed",
		"log.level":  "log-level",
		"log.json":   "log-json",
		"log.file":   "log-file",
		"production": "production",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("%w: catalog path is required", ErrInvalidConfig)
	}
	if c.GridSize < 1 || c.GridSize > 10 {
		return fmt.Errorf("%w: grid size must be between 1 and 10, got %d", ErrInvalidConfig, c.GridSize)
	}
	if c.MinRanked < 0 {
		return fmt.Errorf("%w: min ranked must not be negative, got %d", ErrInvalidConfig, c.MinRanked)
	}
	if _, err := suggest.ParseTruncateMode(c.Truncate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DisplaySize is the number of cards on one page
func (c *Config) DisplaySize() int {
	return c.GridSize * c.GridSize
}

func (c *Config) EngineConfig() *suggest.Config {
	mode, _ := suggest.ParseTruncateMode(c.Truncate)
	return &suggest.Config{
		MinRanked: c.MinRanked,
		Truncate:  mode,
		Seed:      c.Seed,
	}
}

func (c *Config) DebugConfig() debug.Config {
	cfg := debug.DefaultConfig()
	if c.Production {
		cfg = debug.ProductionConfig()
	} else {
		level, _ := logger.ParseLevel(c.Log.Level)
		cfg.LogLevel = level
		cfg.UseJSONLogging = c.Log.JSON
		cfg.EnableTimingTracking = c.Debug.Timing
	}
	cfg.EnableLogging = c.Log.Enabled
	cfg.LogFile = c.Log.File
	return cfg
}
