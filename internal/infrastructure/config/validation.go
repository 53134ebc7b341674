package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBindings(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	if !validLogLevels[config.Logging.Level] {
		return []string{fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level)}
	}
	return nil
}

// validateBindings checks required fields only. Unresolvable key names are
// not rejected here; the engine registers them inert and logs a warning.
func validateBindings(config *Config) []string {
	var validationErrors []string
	for i, b := range config.Bindings {
		if strings.TrimSpace(b.Keys) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("bindings[%d].keys must not be empty", i))
		}
		if b.Action == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("bindings[%d].action must not be empty", i))
		}
	}
	return validationErrors
}
