package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema describing Config.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/keymaster/config.schema.json"
	schema.Title = "Keymaster Configuration"
	schema.Description = "Shortcut bindings, scopes and logging for keymaster"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json into dir.
// This is called automatically when a default config is created.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
