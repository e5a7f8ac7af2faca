// SPDX-License-Identifier: MIT

// Package config loads pairmatch settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairmatch/dataset"
	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all pairmatch configuration.
type Config struct {
	// Matching defaults
	Metric      string `yaml:"metric"`
	Rounding    string `yaml:"rounding"` // truncate, nearest
	IDColumn    string `yaml:"id_column"`
	RejectEmpty bool   `yaml:"reject_empty"`
	BatchLimit  int    `yaml:"batch_limit"` // 0 = GOMAXPROCS

	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Server configures the HTTP service.
type Server struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Metric:   string(distance.Euclidean),
		Rounding: matrix.Truncate.String(),
		IDColumn: dataset.DefaultIDColumn,
		Log:      Log{Level: "info"},
		Server: Server{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   60 * time.Second,
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   8 << 20,
		},
	}
}

// Load reads path over the defaults, then applies PAIRMATCH_* environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()

	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PAIRMATCH_METRIC"); v != "" {
		c.Metric = v
	}
	if v := os.Getenv("PAIRMATCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PAIRMATCH_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if !distance.IsPrecomputed(distance.Metric(c.Metric)) {
		if _, err := distance.Lookup(distance.Metric(c.Metric)); err != nil {
			return fmt.Errorf("%w: metric: %w", ErrInvalid, err)
		}
	}
	if _, err := matrix.ParseRounding(c.Rounding); err != nil {
		return fmt.Errorf("%w: rounding: %w", ErrInvalid, err)
	}
	if c.BatchLimit < 0 {
		return fmt.Errorf("%w: batch_limit %d is negative", ErrInvalid, c.BatchLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	s := c.Server
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.RequestTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalid)
	}
	if s.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes %d is negative", ErrInvalid, s.MaxBodyBytes)
	}

	return nil
}

// MatchOptions translates the matching defaults into match options.
// Call it on a validated Config.
func (c *Config) MatchOptions(logger *zap.Logger) []match.Option {
	opts := []match.Option{match.WithLogger(logger)}
	if r, err := matrix.ParseRounding(c.Rounding); err == nil {
		opts = append(opts, match.WithRounding(r))
	}
	if c.RejectEmpty {
		opts = append(opts, match.WithRejectEmpty())
	}
	if c.BatchLimit > 0 {
		opts = append(opts, match.WithBatchLimit(c.BatchLimit))
	}

	return opts
}

// Build creates the zap logger described by l.
func (l Log) Build() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
