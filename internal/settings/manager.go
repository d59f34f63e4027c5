package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"formfill-cli/internal/interfaces"
)

// Manager implements the SettingsManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new settings manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("FORMFILL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default settings values
func setDefaults(v *viper.Viper) {
	v.SetDefault("default_config", "config.txt")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("confirm_submit", false)
	v.SetDefault("show_values", true)
	v.SetDefault("user_agent", "formfill-cli")
}

// Load loads settings from the specified path
func (m *Manager) Load(path string) (*interfaces.Settings, error) {
	if path == "" {
		// Use default settings path
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "formfill", "config.toml")
	}

	path = expandPath(path)

	// Settings file is optional, fall back to defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.getSettingsFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return m.getSettingsFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > settings file > defaults)
func (m *Manager) Resolve() (*interfaces.Settings, error) {
	settings := m.getSettingsFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(settings)

	return settings, nil
}

// applyFlagOverrides applies flag values over the settings
func (m *Manager) applyFlagOverrides(settings *interfaces.Settings) {
	if val, exists := m.flags["default_config"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.DefaultConfig = expandPath(str)
		}
	}

	if val, exists := m.flags["timeout_seconds"]; exists && val != nil {
		if n, ok := val.(int); ok && n > 0 {
			settings.TimeoutSeconds = n
		}
	}

	if val, exists := m.flags["confirm_submit"]; exists && val != nil {
		if b, ok := val.(bool); ok {
			settings.ConfirmSubmit = b
		}
	}

	if val, exists := m.flags["show_values"]; exists && val != nil {
		if b, ok := val.(bool); ok {
			settings.ShowValues = b
		}
	}

	if val, exists := m.flags["user_agent"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.UserAgent = str
		}
	}
}

// Validate validates the settings values
func (m *Manager) Validate(settings *interfaces.Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	if settings.DefaultConfig == "" {
		return fmt.Errorf("default_config cannot be empty")
	}

	if settings.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid timeout_seconds: %d (must be positive)", settings.TimeoutSeconds)
	}
	if settings.TimeoutSeconds > 600 {
		return fmt.Errorf("invalid timeout_seconds: %d (must be 600 or less)", settings.TimeoutSeconds)
	}

	return nil
}

// getSettingsFromViper converts viper state to a Settings struct
// This handles env > settings file > defaults precedence (flags are applied separately)
func (m *Manager) getSettingsFromViper() *interfaces.Settings {
	return &interfaces.Settings{
		DefaultConfig:  expandPath(m.v.GetString("default_config")),
		TimeoutSeconds: m.v.GetInt("timeout_seconds"),
		ConfirmSubmit:  m.v.GetBool("confirm_submit"),
		ShowValues:     m.v.GetBool("show_values"),
		UserAgent:      m.v.GetString("user_agent"),
	}
}

// MergeSettings merges another settings value into this manager
func (m *Manager) MergeSettings(other *interfaces.Settings) {
	if other == nil {
		return
	}

	if other.DefaultConfig != "" {
		m.v.Set("default_config", other.DefaultConfig)
	}
	if other.TimeoutSeconds > 0 {
		m.v.Set("timeout_seconds", other.TimeoutSeconds)
	}
	if other.UserAgent != "" {
		m.v.Set("user_agent", other.UserAgent)
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
