// Package config loads the optional model-level configuration document.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator lets configuration types carry their own validation, run
// automatically after unmarshalling.
type Validator interface {
	Validate() error
}

// LoadYAML unmarshals the YAML file at path into target and validates it if
// the target implements Validator.
func LoadYAML[T any](path string, target *T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	return LoadYAMLFromString(string(data), target)
}

// LoadYAMLFromString is the in-memory variant of LoadYAML.
func LoadYAMLFromString[T any](content string, target *T) error {
	if err := yaml.Unmarshal([]byte(content), target); err != nil {
		return fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return nil
}
