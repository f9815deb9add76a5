package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/pulse/internal/model"
)

// cliConfig holds the dashboard-relevant configuration.
type cliConfig struct {
	File       string  `mapstructure:"file"`
	Skin       string  `mapstructure:"skin"`
	Zoom       float64 `mapstructure:"zoom"`
	Timezone   string  `mapstructure:"timezone"`
	LineBuffer int     `mapstructure:"line-buffer"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("file", "")
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("zoom", model.DefaultZoom)
	v.SetDefault("timezone", "")
	v.SetDefault("line-buffer", model.DefaultLineBuffer)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "pulse", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Zoom < model.MinZoom || cfg.Zoom > model.MaxZoom {
		return cfg, fmt.Errorf("zoom %v out of range [%v, %v]",
			cfg.Zoom, model.MinZoom, model.MaxZoom)
	}

	return cfg, nil
}

// location resolves the configured timezone for day bucketing; empty
// means local time.
func (c cliConfig) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
