package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/keymaster/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	file      string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	ctx context.Context
}

// NewManager creates a configuration manager. An empty path selects
// config.toml in the XDG config directory (or the working directory).
func NewManager(ctx context.Context, path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
		path = filepath.Join(configDir, configFileName)
	}

	v.SetEnvPrefix("KEYMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "KEYMASTER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYMASTER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KEYMASTER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYMASTER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		file:      path,
		callbacks: make([]func(*Config), 0),
		ctx:       ctx,
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file first when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.file
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.file,
			createErr,
		)
	}
	m.viper.SetConfigFile(m.file)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	if strings.TrimSpace(config.Engine.DefaultScope) == "" {
		config.Engine.DefaultScope = scopeAll
	}

	for i := range config.Bindings {
		config.Bindings[i].Scope = strings.TrimSpace(config.Bindings[i].Scope)
		if config.Bindings[i].Scope == "" {
			config.Bindings[i].Scope = scopeAll
		}
		config.Bindings[i].Action = strings.TrimSpace(config.Bindings[i].Action)
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Bindings = append([]BindingConfig(nil), m.config.Bindings...)
	configCopy.Engine.IgnoreInputTags = append([]string(nil), m.config.Engine.IgnoreInputTags...)
	return &configCopy
}

// SetContext replaces the context used for logging, typically once the
// logger configured by the loaded file exists.
func (m *Manager) SetContext(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.file
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	log := logging.FromContext(m.ctx)

	if err := WriteConfig(DefaultConfig(), m.file); err != nil {
		return err
	}
	log.Info().Str("file", m.file).Msg("created default configuration file")

	schemaFile, err := GenerateSchemaFile(filepath.Dir(m.file))
	if err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
		return nil
	}
	log.Debug().Str("file", schemaFile).Msg("generated JSON schema")
	return nil
}

// setDefaults sets default configuration values in Viper.
// Bindings have no default: a file without bindings has none.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("engine.default_scope", defaults.Engine.DefaultScope)
	m.viper.SetDefault("engine.ignore_input_tags", defaults.Engine.IgnoreInputTags)
}
