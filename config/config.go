// Package config loads the sixpack client configuration from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultBaseURL is the address of a sixpack server running locally with its default port.
	DefaultBaseURL = "http://localhost:5000"

	// DefaultTimeout bounds every request made to the sixpack server.
	DefaultTimeout = 30 * time.Second

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"
)

// SixpackConfig is the configuration for connecting to a sixpack server.
type SixpackConfig struct {
	BaseURL   string        `mapstructure:"base_url" yaml:"base_url"`     // The URL of the sixpack server, e.g. http://localhost:5000
	ClientID  string        `mapstructure:"client_id" yaml:"client_id"`   // Identifies the participant. A random id is generated when empty.
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"` // Forwarded to the server for bot detection
	IPAddress string        `mapstructure:"ip_address" yaml:"ip_address"` // Forwarded to the server for bot detection
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`       // Per request timeout
}

// LogConfig is the configuration for the logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // One of debug, info, warn, error
}

// ZapLevel parses the configured level.
func (c LogConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(c.Level)
}

// Config wraps the entire configuration for the sixpack client.
type Config struct {
	Sixpack SixpackConfig `mapstructure:"sixpack" yaml:"sixpack"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// Load reads filePath when it exists and then applies any SIXPACK_* environment variables on
// top. A missing file is not an error: the environment and defaults are used instead.
func Load(filePath string) (*Config, error) {
	_, err := os.Stat(filePath)
	readFile := !errors.Is(err, fs.ErrNotExist)

	return load(filePath, readFile, true)
}

// LoadEnv builds the config from the environment and defaults only.
func LoadEnv() (*Config, error) {
	return load("", false, true)
}

// LoadFile builds the config from filePath and defaults, ignoring the environment.
func LoadFile(filePath string) (*Config, error) {
	return load(filePath, true, false)
}

func load(filePath string, readFile, useEnv bool) (*Config, error) {
	v := newViper()

	if useEnv {
		if err := bindEnvs(v); err != nil {
			return nil, fmt.Errorf("failed to bind env vars: %w", err)
		}
	}

	if readFile {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("sixpack.base_url", DefaultBaseURL)
	v.SetDefault("sixpack.timeout", DefaultTimeout)
	v.SetDefault("log.level", DefaultLogLevel)

	return v
}

var (
	// envBindings lists the environment variables read for each config key, preferred name
	// first.
	envBindings = map[string][]string{
		"sixpack.base_url":   {"SIXPACK_BASE_URL", "SIXPACK_URL"},
		"sixpack.client_id":  {"SIXPACK_CLIENT_ID"},
		"sixpack.user_agent": {"SIXPACK_USER_AGENT"},
		"sixpack.ip_address": {"SIXPACK_IP_ADDRESS"},
		"sixpack.timeout":    {"SIXPACK_TIMEOUT"},
		"log.level":          {"SIXPACK_LOG_LEVEL", "LOG_LEVEL"},
	}
)

// bindEnvs registers envBindings with v.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
