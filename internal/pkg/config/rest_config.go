package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values used when neither the config file nor the environment set them.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = "8080"
	DefaultSQLiteDSN = "file:accounts.db"
)

// RestConfig holds the settings of the accounts REST API
type RestConfig struct {
	Host       string           `yaml:"host" validate:"omitempty,hostname|ip"`
	Port       string           `yaml:"port" validate:"required,numeric"`
	ForceHTTPS bool             `yaml:"force_https"`
	Database   DatabaseSettings `yaml:"database"`
	Logger     LoggerSettings   `yaml:"logger"`
}

// Address returns the host:port pair the HTTP server listens on.
func (c *RestConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Validate checks the REST settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	return c.Logger.Validate()
}

// NewDefaultRestConfig returns the settings the service runs with when no config file is present
func NewDefaultRestConfig() *RestConfig {
	return &RestConfig{
		Host: DefaultHost,
		Port: DefaultPort,
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  DefaultSQLiteDSN,
		},
		Logger: LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeConsole,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// InitializeRestConfig loads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result. A missing file is not an error.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := NewDefaultRestConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 - config path is provided by the operator
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *RestConfig, lookup func(string) (string, bool)) error {
	overrides := map[string]*string{
		"HOST":          &cfg.Host,
		"PORT":          &cfg.Port,
		"DATABASE_TYPE": &cfg.Database.Type,
		"DATABASE_URI":  &cfg.Database.DSN,
		"DATABASE_NAME": &cfg.Database.DBName,
		"LOG_LEVEL":     &cfg.Logger.LogLevel,
		"LOG_TYPE":      &cfg.Logger.LogType,
		"LOG_FILE_PATH": &cfg.Logger.FilePath,
	}
	for key, target := range overrides {
		if value, ok := lookup(key); ok && value != "" {
			*target = value
		}
	}

	if value, ok := lookup("FORCE_HTTPS"); ok && value != "" {
		forceHTTPS, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid FORCE_HTTPS value %q: %w", value, err)
		}
		cfg.ForceHTTPS = forceHTTPS
	}

	return nil
}
