/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the service configuration.
//
// Values are layered, later sources overriding earlier ones:
//   - built-in defaults (Default)
//   - an optional YAML file
//   - environment variables prefixed with USERSVC_, where "__" separates
//     nesting levels (USERSVC_STORE__TABLE_NAME -> store.table_name)
//
// A `.env` file in the working directory is loaded into the process
// environment before anything is read.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env, if present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every environment variable read.
	EnvPrefix = "USERSVC_"

	// FileEnvVar names the environment variable holding a config file path.
	FileEnvVar = EnvPrefix + "CONFIG_FILE"
)

// Config is the root configuration object for the service.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Store   StoreConfig   `koanf:"store" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// StoreConfig holds the DynamoDB connection and behaviour settings.
type StoreConfig struct {
	Region    string `koanf:"region" validate:"required"`
	TableName string `koanf:"table_name" validate:"required"`
	// Endpoint overrides the DynamoDB endpoint (e.g. http://localhost:8000).
	Endpoint string `koanf:"endpoint" validate:"omitempty,url"`
	// AccessKey and SecretKey select static credentials; leave both empty to
	// use the default AWS credential chain.
	AccessKey   string `koanf:"access_key" validate:"required_with=SecretKey"`
	SecretKey   string `koanf:"secret_key" validate:"required_with=AccessKey"`
	MaxAttempts int    `koanf:"max_attempts" validate:"gte=0"`

	ConsistentRead bool `koanf:"consistent_read"`
	// StrictUpdate makes updates of a missing key fail with 404 instead of
	// creating a partial record.
	StrictUpdate bool `koanf:"strict_update"`

	ScanPageSize int32 `koanf:"scan_page_size" validate:"gte=0"`
	// ScanMaxItems caps the number of records a list request returns. 0 = no cap.
	ScanMaxItems int `koanf:"scan_max_items" validate:"gte=0"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Store: StoreConfig{
			Region:    "us-east-1",
			TableName: "crud_op",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or the
// file named by USERSVC_CONFIG_FILE when path is empty) and the environment,
// then validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(FileEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// envKey maps USERSVC_STORE__TABLE_NAME to store.table_name.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
