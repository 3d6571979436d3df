// Package config defines the configuration settings for the booking service
// and loads them from YAML files with environment variable overrides.
package config
