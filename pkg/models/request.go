package models

// SubmitRequest represents the main application state for a form submission run
type SubmitRequest struct {
	ConfigPath   string
	SettingsPath string
	Timeout      int
	DryRun       bool
	AssumeYes    bool
}

// ConvertRequest represents the state for turning a live form into a config skeleton
type ConvertRequest struct {
	Source        string
	Output        string
	SettingsPath  string
	Timeout       int
	FromClipboard bool
	Force         bool
	AssumeYes     bool
}

// CheckRequest represents a grammar check of a config file without submission
type CheckRequest struct {
	ConfigPath   string
	SettingsPath string
}
