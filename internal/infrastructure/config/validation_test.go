package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Bindings(t *testing.T) {
	tests := []struct {
		name    string
		binding BindingConfig
		wantErr string
	}{
		{name: "valid", binding: BindingConfig{Keys: "ctrl+k", Action: "kill"}},
		{name: "unresolvable keys are accepted", binding: BindingConfig{Keys: "hyper+zz", Action: "x"}},
		{name: "empty keys", binding: BindingConfig{Keys: "  ", Action: "x"}, wantErr: "bindings[0].keys"},
		{name: "empty action", binding: BindingConfig{Keys: "a"}, wantErr: "bindings[0].action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Bindings = []BindingConfig{tt.binding}

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "chatty"
	cfg.Bindings = []BindingConfig{{}}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "bindings[0].keys")
	assert.Contains(t, err.Error(), "bindings[0].action")
}
