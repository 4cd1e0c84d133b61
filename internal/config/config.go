// Package config loads CLI configuration from a TOML file and GRABBY_
// environment variables, with sane defaults when neither is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root CLI configuration.
type Config struct {
	Downloads DownloadsConfig `mapstructure:"downloads"`
	Simulate  SimulateConfig  `mapstructure:"simulate"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DownloadsConfig controls the destination policy.
type DownloadsConfig struct {
	// Dir is the folder downloads are saved into when Prompt is false.
	Dir string `mapstructure:"dir"`
	// Prompt defers every destination decision to the engine's dialog.
	Prompt bool `mapstructure:"prompt"`
}

// SimulateConfig controls the fake engine run.
type SimulateConfig struct {
	Count   int `mapstructure:"count"`
	Workers int `mapstructure:"workers"`
	Updates int `mapstructure:"updates"`
}

// LoggingConfig mirrors the GRABBY_LOG_* environment variables.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the first config.toml found in the grabby
// user config directory or the working directory. A missing file is not an
// error; defaults and environment variables still apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "grabby"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("GRABBY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("downloads.dir", defaultDownloadDir())
	v.SetDefault("downloads.prompt", false)
	v.SetDefault("simulate.count", 3)
	v.SetDefault("simulate.workers", 2)
	v.SetDefault("simulate.updates", 4)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
