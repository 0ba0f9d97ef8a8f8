package main

import (
	"errors"
	"fmt"
)

// envPrefix namespaces environment overrides, e.g. MYERSED_BACKEND.
const envPrefix = "MYERSED"

type config struct {
	Backend  string `mapstructure:"backend"`
	Verify   bool   `mapstructure:"verify"`
	ASCII    bool   `mapstructure:"ascii"`
	LogLevel string `mapstructure:"log_level"`
	Workers  int    `mapstructure:"workers"`
}

var errInvalidConfig = errors.New("invalid config")

// loadConfig resolves flags, environment and the optional config file, in
// that order of precedence.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if _, ok := backends[a.cfg.Backend]; !ok {
		return fmt.Errorf("%w: unknown backend %q (available: %v)", errInvalidConfig, a.cfg.Backend, backendNames())
	}
	if a.cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", errInvalidConfig, a.cfg.Workers)
	}
	return nil
}
