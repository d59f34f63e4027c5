package interfaces

// Settings represents the application settings
type Settings struct {
	DefaultConfig  string `toml:"default_config"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ConfirmSubmit  bool   `toml:"confirm_submit"`
	ShowValues     bool   `toml:"show_values"`
	UserAgent      string `toml:"user_agent"`
}

// SettingsManager handles settings loading and resolution
type SettingsManager interface {
	// Load loads settings from the specified path
	Load(path string) (*Settings, error)

	// Resolve applies precedence rules (flags > env > settings file > defaults)
	Resolve() (*Settings, error)

	// Validate validates the settings values
	Validate(settings *Settings) error
}
