package config

// Config is the keymaster configuration file.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Engine  EngineConfig  `mapstructure:"engine" yaml:"engine" toml:"engine" json:"engine"`
	// Bindings are registered in file order, which is also dispatch order.
	Bindings []BindingConfig `mapstructure:"bindings" yaml:"bindings" toml:"bindings" json:"bindings"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// EngineConfig holds dispatch engine settings.
type EngineConfig struct {
	// DefaultScope is the scope active at startup ("all" when empty).
	DefaultScope string `mapstructure:"default_scope" yaml:"default_scope" toml:"default_scope" json:"default_scope"`
	// IgnoreInputTags lists target tag names whose key events are never dispatched.
	IgnoreInputTags []string `mapstructure:"ignore_input_tags" yaml:"ignore_input_tags" toml:"ignore_input_tags" json:"ignore_input_tags"`
}

// BindingConfig binds a shortcut expression to a named action.
type BindingConfig struct {
	// Keys is a shortcut expression, e.g. "ctrl+s, ⌘+s".
	Keys        string `mapstructure:"keys" yaml:"keys" toml:"keys" json:"keys" jsonschema:"required"`
	Scope       string `mapstructure:"scope" yaml:"scope" toml:"scope,omitempty" json:"scope,omitempty"`
	Action      string `mapstructure:"action" yaml:"action" toml:"action" json:"action" jsonschema:"required"`
	Description string `mapstructure:"description" yaml:"description" toml:"description,omitempty" json:"description,omitempty"`
}

// Scopes returns the distinct binding scopes in first-seen order.
// Bindings without a scope count as "all".
func (c *Config) Scopes() []string {
	seen := make(map[string]struct{})
	var scopes []string
	for _, b := range c.Bindings {
		scope := b.Scope
		if scope == "" {
			scope = scopeAll
		}
		if _, ok := seen[scope]; ok {
			continue
		}
		seen[scope] = struct{}{}
		scopes = append(scopes, scope)
	}
	return scopes
}
