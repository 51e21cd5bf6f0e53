//nolint:revive // Package utils is used for utility functions
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// ParseYamlFromBytes parses YAML data from bytes into a data structure
func ParseYamlFromBytes(b []byte, data any) error {
	if err := yaml.Unmarshal(b, data); err != nil {
		return fmt.Errorf("error unmarshal yaml: %w", err)
	}
	return nil
}

// ParseYamlFromFile parses YAML data from a file into a data structure
func ParseYamlFromFile(path string, data any) error {
	//nolint:gosec // G304: Config path is constructed by application
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("file read error: %w", err)
	}
	return ParseYamlFromBytes(b, data)
}

// WriteYamlToFile encodes data as YAML and writes it with owner-only
// permissions, creating parent directories as needed.
func WriteYamlToFile(path string, data any) error {
	b, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshal yaml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return fmt.Errorf("file write error: %w", err)
	}
	return nil
}
