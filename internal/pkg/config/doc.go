// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overlaid with environment variables and
// validated before they are handed to the rest of the application. The REST API
// and the CLI share the same configuration layout.
package config
