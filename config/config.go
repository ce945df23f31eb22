package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	envPrefix         = "PAGETEMPLATE"
)

// Config is the validated runtime configuration.
type Config struct {
	// TemplatePath is the operator-managed template directory. Empty disables it.
	TemplatePath string

	LogLevel        slog.Level
	LoadConcurrency int
}

// GetTemplatePath returns the external template directory; it satisfies catalog.PathProvider.
func (c Config) GetTemplatePath() string { return c.TemplatePath }

// Load reads configuration from config.yaml in searchPaths (default "." and "config")
// and from the environment. A missing config file is not an error.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{".", "config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("template.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("load.concurrency", 4)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		TemplatePath:    strings.TrimSpace(v.GetString("template.path")),
		LoadConcurrency: v.GetInt("load.concurrency"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v.GetString("log.level")))); err != nil {
		return Config{}, fmt.Errorf("invalid log.level %q: %w", v.GetString("log.level"), err)
	}
	if cfg.LoadConcurrency <= 0 {
		return Config{}, fmt.Errorf("invalid load.concurrency %d", cfg.LoadConcurrency)
	}
	return cfg, nil
}
