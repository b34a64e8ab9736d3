// Package config loads urbanpath's runtime settings from the .urbanpath config
// file, URBANPATH_* environment variables and command-line flags via viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/urbanpath/loader"
)

// EnvPrefix is prepended to every environment override, e.g. URBANPATH_DATA_DIR.
const EnvPrefix = "URBANPATH"

// FilesConfig names the record files inside the data directory.
type FilesConfig struct {
	Stations  string `mapstructure:"stations"`
	Routes    string `mapstructure:"routes"`
	Closures  string `mapstructure:"closures"`
	Accidents string `mapstructure:"accidents"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	Report   string        `mapstructure:"report"`
}

// Config holds all runtime configuration for an urbanpath invocation.
type Config struct {
	DataDir  string      `mapstructure:"data_dir"`
	Network  string      `mapstructure:"network"`
	DB       string      `mapstructure:"db"`
	Directed bool        `mapstructure:"directed"`
	LogLevel string      `mapstructure:"log_level"`
	Verbose  bool        `mapstructure:"verbose"`
	Files    FilesConfig `mapstructure:"files"`
	Watch    WatchConfig `mapstructure:"watch"`
}

// Init points v at the config file: cfgFile when given, otherwise .urbanpath
// in the working directory or the home directory. Environment variables with
// EnvPrefix override file values. A missing default config file is not an
// error; an explicit cfgFile that cannot be read is.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".urbanpath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
	}

	return nil
}

// Load reads configuration from v, applying built-in defaults for any values
// not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	files := loader.DefaultFiles()
	v.SetDefault("data_dir", ".")
	v.SetDefault("network", "")
	v.SetDefault("db", "urbanpath.db")
	v.SetDefault("directed", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("verbose", false)
	v.SetDefault("files.stations", files.Stations)
	v.SetDefault("files.routes", files.Routes)
	v.SetDefault("files.closures", files.Closures)
	v.SetDefault("files.accidents", files.Accidents)
	v.SetDefault("watch.debounce", 200*time.Millisecond)
	v.SetDefault("watch.report", "stats")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoaderFiles converts the file names for the loader package.
func (c Config) LoaderFiles() loader.Files {
	return loader.Files{
		Stations:  c.Files.Stations,
		Routes:    c.Files.Routes,
		Closures:  c.Files.Closures,
		Accidents: c.Files.Accidents,
	}
}

// Level parses LogLevel; Verbose forces debug.
func (c Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}
