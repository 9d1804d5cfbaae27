// Package config loads triviatui settings from (in increasing precedence)
// defaults, an optional YAML file, a .env file, TRIVIA_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TRIVIA_BASE_URL.
const EnvPrefix = "TRIVIA"

// Config holds the application configuration.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`        // trivia backend root
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // 0 disables the timeout
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
	OTel           OTel          `mapstructure:"otel"`
}

// OTel configures trace export. An empty Endpoint disables export.
type OTel struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// Flags returns the command-line flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("triviatui", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("base-url", "", "trivia backend base URL")
	fs.Duration("timeout", 0, "per-request timeout (0 = none)")
	fs.String("log-file", "", "file to write logs to")
	fs.Bool("debug", false, "enable debug logging")
	return fs
}

// Load resolves the configuration. fs may be nil; when non-nil it must have
// been created by Flags and already parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// A missing .env is normal; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("triviatui")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "triviatui"))
	}

	v.SetDefault("base_url", "http://127.0.0.1:5000")
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("log_file", filepath.Join(os.TempDir(), "triviatui.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.service_name", "triviatui")
	v.SetDefault("otel.insecure", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Standard OTel variable, honored without the prefix.
	_ = v.BindEnv("otel.endpoint", EnvPrefix+"_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("otel.service_name", EnvPrefix+"_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
	}

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
	if fs != nil {
		if debug, _ := fs.GetBool("debug"); debug {
			cfg.LogLevel = "debug"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("config: base_url is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"base_url":        "base-url",
		"request_timeout": "timeout",
		"log_file":        "log-file",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}
