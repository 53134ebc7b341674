package config

// Default configuration constants
const (
	scopeAll = "all"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Engine: EngineConfig{
			DefaultScope:    scopeAll,
			IgnoreInputTags: []string{"INPUT", "SELECT", "TEXTAREA"},
		},
		Bindings: []BindingConfig{
			{Keys: "ctrl+q, esc", Action: "quit", Description: "Quit"},
			{Keys: "ctrl+n", Action: "scope-next", Description: "Next scope"},
			{Keys: "ctrl+r", Action: "scope-reset", Description: "Reset scope to all"},
			{Keys: "ctrl+s, ⌘+s", Action: "save", Description: "Save"},
			{Keys: "ctrl+shift+k", Scope: "editor", Action: "delete-line", Description: "Delete line"},
			{Keys: "ctrl+/", Scope: "editor", Action: "toggle-comment", Description: "Toggle comment"},
			{Keys: "j, down", Scope: "browser", Action: "select-next", Description: "Next item"},
			{Keys: "k, up", Scope: "browser", Action: "select-previous", Description: "Previous item"},
		},
	}
}
