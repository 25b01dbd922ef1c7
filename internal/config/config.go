// Package config loads the EcoSim configuration file and applies
// environment overrides. The file is optional: every field has a default
// so the binary runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ecosim/ecosim/internal/logging"
)

// Env variable names recognized as overrides. CLI flags take precedence
// over these, which take precedence over the file.
const (
	EnvLogLevel   = "ECOSIM_LOG_LEVEL"
	EnvLogFormat  = "ECOSIM_LOG_FORMAT"
	EnvListenAddr = "ECOSIM_LISTEN_ADDR"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ServerConfig is the HTTP server section of the config file.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`

	// CORSOrigins lists allowed origins for the dashboard. "*" allows any.
	CORSOrigins []string `yaml:"cors_origins"`
}

// AuditConfig is the live-auditor section of the config file.
type AuditConfig struct {
	// Dropzone is the directory watched for incoming .txt reports.
	Dropzone string `yaml:"dropzone"`

	// OutputFile is the JSONL file audit records are appended to and the
	// live-audits endpoint reads from.
	OutputFile string `yaml:"output_file"`
}

// Config is the root configuration document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Audit   AuditConfig   `yaml:"audit"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr:        ":8085",
			CORSOrigins: []string{"*"},
		},
		Audit: AuditConfig{
			Dropzone:   "dropzone",
			OutputFile: "live_audits.jsonl",
		},
	}
}

// DefaultPath returns the conventional config file location,
// $HOME/.ecosim/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecosim", "config.yaml")
}

// Load reads the config file at path, merges it over Default(), and
// applies environment overrides.
//
// A missing file is not an error: defaults plus env overrides are
// returned. A file that exists but fails to parse is an error, since
// silently ignoring a broken config hides operator mistakes.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides mutates cfg with any recognized environment values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Server.Addr = v
	}
}

// ToLoggingConfig bridges the config file's logging section to the
// logging package's constructor input.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}
