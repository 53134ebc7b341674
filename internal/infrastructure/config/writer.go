package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = `# keymaster configuration
# Each [[bindings]] entry binds a shortcut expression to an action.
# Modifiers: shift/⇧, alt/option/⌥, ctrl/control/⌃, command/⌘.
# Bindings with a scope only fire while that scope is active; "all" always fires.

`

// WriteConfig encodes cfg as TOML to path, creating parent directories.
// Bindings are written as [[bindings]] tables in order.
func WriteConfig(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
