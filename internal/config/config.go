package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		// Path is the SQLite database file; the parent directory is
		// created on startup if it does not exist.
		Path string `yaml:"path" env:"DB_PATH"`
	} `yaml:"database"`

	Admin struct {
		// Password is the login secret; SessionToken is the value issued
		// as the admin_session cookie. They are independent secrets and
		// both are required for any admin operation to work.
		Password      string `yaml:"password" env:"ADMIN_PASSWORD"`
		SessionToken  string `yaml:"session_token" env:"ADMIN_TOKEN"`
		SessionMaxAge string `yaml:"session_max_age" env:"ADMIN_SESSION_MAX_AGE"`
	} `yaml:"admin"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USER"`
		Password  string `yaml:"password" env:"SMTP_PASS"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
		ContactTo string `yaml:"contact_to" env:"CONTACT_TO"`
		CareersTo string `yaml:"careers_to" env:"CAREERS_TO"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Path = "data/careers.db"

	config.Admin.SessionMaxAge = "8h"

	config.SMTP.Host = "smtp.gmail.com"
	config.SMTP.Port = 465
	config.SMTP.FromName = "VelanDev Website"
	config.SMTP.UseTLS = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if _, err := time.ParseDuration(config.Admin.SessionMaxAge); err != nil {
		return fmt.Errorf("invalid admin session max age format: %w", err)
	}

	// Admin and SMTP secrets are allowed to be absent here: their absence
	// surfaces per-operation as a configuration error so the rest of the
	// site keeps working.
	return nil
}

// SessionMaxAge returns the parsed admin cookie lifetime
func (c *Config) SessionMaxAge() time.Duration {
	d, err := time.ParseDuration(c.Admin.SessionMaxAge)
	if err != nil {
		return 8 * time.Hour
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
