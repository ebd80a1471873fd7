package config

import (
	"fmt"
	"time"

	"github.com/fin-tools/calc-atlas/pkg/services/loan"
	"github.com/fin-tools/calc-atlas/pkg/services/numeric"
	"github.com/spf13/viper"
)

// Config is the service configuration for the web entrypoint.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	History         History       `mapstructure:"history"`
	Cache           Cache         `mapstructure:"cache"`
	Engine          Engine        `mapstructure:"engine"`
}

type History struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type Cache struct {
	RedisAddr string `mapstructure:"redis_addr"`
}

// Engine tunes the calculation core. MaxSafeValue overrides the numeric
// package ceiling; MaxPeriods bounds amortization runs.
type Engine struct {
	MaxPeriods   int     `mapstructure:"max_periods"`
	MaxSafeValue float64 `mapstructure:"max_safe_value"`
}

// Load reads the config file at path. A missing path yields defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "calc-atlas.db")
	v.SetDefault("engine.max_periods", 0)
	v.SetDefault("engine.max_safe_value", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Apply pushes engine tunables into the calculation core.
func (e Engine) Apply() {
	if e.MaxSafeValue > 0 {
		numeric.MaxSafeCalculationValue = e.MaxSafeValue
	}
	if e.MaxPeriods > 0 {
		loan.DefaultLimits.MaxPeriods = e.MaxPeriods
	}
}
