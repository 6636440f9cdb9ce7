// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matinv/matrix"
)

// envPrefix namespaces environment overrides, e.g. MATINV_MAX_ITERATIONS.
const envPrefix = "MATINV"

// Configuration keys; each is also a persistent flag of the root command.
const (
	keyMethod         = "method"
	keyTolerance      = "tolerance"
	keyMaxIterations  = "max-iterations"
	keyPivotTolerance = "pivot-tolerance"
	keyMaxSize        = "max-size"
	keyMaxAbs         = "max-abs"
	keyDetThreshold   = "det-threshold"
)

// Config is the resolved configuration shared by all subcommands.
// Precedence: flag > environment > config file > default.
type Config struct {
	Method         string  `mapstructure:"method"`
	Tolerance      float64 `mapstructure:"tolerance"`
	MaxIterations  int     `mapstructure:"max-iterations"`
	PivotTolerance float64 `mapstructure:"pivot-tolerance"`
	MaxSize        int     `mapstructure:"max-size"`
	MaxAbs         float64 `mapstructure:"max-abs"`
	DetThreshold   float64 `mapstructure:"det-threshold"`
}

// addConfigFlags registers the configuration keys on fs with their defaults.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String(keyMethod, "lup", "inversion method: schulz or lup")
	fs.Float64(keyTolerance, matrix.DefaultTolerance, "Schulz convergence tolerance on ‖X_next − X‖_F")
	fs.Int(keyMaxIterations, matrix.DefaultMaxIterations, "Schulz iteration budget")
	fs.Float64(keyPivotTolerance, matrix.DefaultPivotTolerance, "smallest acceptable LUP pivot magnitude")
	fs.Int(keyMaxSize, matrix.DefaultMaxSize, "largest accepted matrix order")
	fs.Float64(keyMaxAbs, matrix.DefaultMaxAbs, "largest accepted entry magnitude")
	fs.Float64(keyDetThreshold, matrix.DefaultSingularThreshold, "|det| below which the pre-check rejects the matrix")
}

// loadConfig resolves Config from v after binding fs. When cfgFile is set
// it must exist; its format follows the extension (yaml, json, toml, ...).
func loadConfig(v *viper.Viper, fs *pflag.FlagSet, cfgFile string) (*Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the matrix option constructors would panic on.
func (c *Config) Validate() error {
	if _, err := matrix.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("--%s: %w", keyMethod, err)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("--%s must be finite and > 0, got %g", keyTolerance, c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("--%s must be > 0, got %d", keyMaxIterations, c.MaxIterations)
	}
	if !(c.PivotTolerance >= 0) || math.IsInf(c.PivotTolerance, 0) {
		return fmt.Errorf("--%s must be finite and >= 0, got %g", keyPivotTolerance, c.PivotTolerance)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("--%s must be > 0, got %d", keyMaxSize, c.MaxSize)
	}
	if !(c.MaxAbs > 0) {
		return fmt.Errorf("--%s must be > 0, got %g", keyMaxAbs, c.MaxAbs)
	}
	if !(c.DetThreshold >= 0) {
		return fmt.Errorf("--%s must be >= 0, got %g", keyDetThreshold, c.DetThreshold)
	}

	return nil
}

// MatrixOptions maps the configuration onto kernel options.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithMaxIterations(c.MaxIterations),
		matrix.WithTolerance(c.Tolerance),
		matrix.WithPivotTolerance(c.PivotTolerance),
	}
}
