package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Error types for different categories of failures
var (
	ErrSettingsInvalid  = errors.New("settings error")
	ErrConfigInvalid    = errors.New("config error")
	ErrSubmitFailed     = errors.New("submit error")
	ErrConvertFailed    = errors.New("convert error")
	ErrOutputFailed     = errors.New("output error")
	ErrValidationFailed = errors.New("validation error")
)

// FormfillError represents a structured error with actionable guidance
type FormfillError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *FormfillError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *FormfillError) Unwrap() error {
	return e.Cause
}

// Error constructors with actionable guidance

func NewSettingsError(message string, cause error) *FormfillError {
	guidance := "Check your settings file syntax. " +
		"Use 'formfill --settings /path/to/config.toml' to specify a different settings file."

	if strings.Contains(message, "permission") {
		guidance = "Check file permissions for your settings directory. " +
			"Ensure you have read access to ~/.config/formfill/"
	} else if strings.Contains(message, "not found") || strings.Contains(message, "does not exist") {
		guidance = "The settings file doesn't exist. Create ~/.config/formfill/config.toml " +
			"or specify a different path with the --settings flag."
	}

	return &FormfillError{
		Type:     ErrSettingsInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewConfigError(path string, cause error) *FormfillError {
	message := fmt.Sprintf("failed to process config '%s'", path)
	guidance := "Each field line must look like 'type-key;Title=value' with the form link " +
		"on the first line. Generate a starting point with 'formfill convert <form-link>'."

	if cause != nil {
		switch {
		case strings.Contains(cause.Error(), "no such file") || strings.Contains(cause.Error(), "does not exist"):
			guidance = fmt.Sprintf("Config file '%s' does not exist. Check the path spelling, "+
				"or create one with 'formfill convert <form-link> %s'.", path, path)
		case strings.Contains(cause.Error(), "permission"):
			guidance = fmt.Sprintf("Permission denied reading '%s'. Ensure you have read access "+
				"to the file and its parent directories.", path)
		case strings.Contains(cause.Error(), "missing form URL") || strings.Contains(cause.Error(), "no content"):
			guidance = "The first line that is not blank or a comment must be the form link " +
				"or its 56-character form ID."
		case strings.Contains(cause.Error(), "duplicate"):
			guidance = "Every entry key may appear on one line only. Remove or rename the repeated line."
		}
	}

	return &FormfillError{
		Type:     ErrConfigInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewSubmitError(url string, cause error) *FormfillError {
	message := fmt.Sprintf("failed to submit to '%s'", url)
	guidance := "Check your network connection and that the form link is correct."

	if cause != nil {
		if strings.Contains(cause.Error(), "unexpected status") {
			guidance = "The form rejected the submission. It may be closed, require sign-in, " +
				"or the entry keys may no longer match. Re-run 'formfill convert' to refresh the config."
		} else if strings.Contains(cause.Error(), "deadline exceeded") || strings.Contains(cause.Error(), "Timeout") {
			guidance = "The request timed out. Increase the limit with --timeout or " +
				"timeout_seconds in your settings file."
		}
	}

	return &FormfillError{
		Type:     ErrSubmitFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewConvertError(source string, cause error) *FormfillError {
	message := fmt.Sprintf("failed to convert '%s'", source)
	guidance := "Pass a full Google Forms link, its 56-character form ID, or a .url/.desktop " +
		"shortcut file pointing at the form."

	if cause != nil {
		if source == "clipboard" || strings.Contains(cause.Error(), "clipboard") {
			guidance = "Clipboard access failed or held no link. Copy the form link first, " +
				"or pass it as an argument instead of --clipboard."
		} else if strings.Contains(cause.Error(), "unexpected status") {
			guidance = "The form page could not be fetched. The form may be private or the " +
				"link may be stale. Open it in a browser to verify."
		} else if strings.Contains(cause.Error(), "cannot convert") {
			guidance = "The source does not look like a form link. Expected " +
				"'https://docs.google.com/forms/...' or a bare 56-character form ID."
		}
	}

	return &FormfillError{
		Type:     ErrConvertFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewOutputError(path string, cause error) *FormfillError {
	message := fmt.Sprintf("failed to write output to '%s'", path)
	guidance := fmt.Sprintf("Check that the directory for '%s' exists and you have write "+
		"permissions. Omit the output path to print to stdout instead.", path)

	return &FormfillError{
		Type:     ErrOutputFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewValidationError(field string, value interface{}, reason string) *FormfillError {
	message := fmt.Sprintf("validation failed for %s: %v (%s)", field, value, reason)
	guidance := "Check the input value and ensure it meets the required format."

	switch field {
	case "config_path":
		guidance = "Pass an existing config file, for example 'formfill party.txt'. " +
			"Without an argument the default_config from your settings is used."
	case "settings_path":
		guidance = "The --settings flag must point at an existing TOML file. " +
			"Remove the flag to use ~/.config/formfill/config.toml."
	case "timeout":
		guidance = "The timeout is in seconds and must be positive. Example: --timeout 60"
	case "source":
		guidance = "Provide the form to convert: 'formfill convert <form-link>', " +
			"or use --clipboard to read the link from the clipboard."
	}

	return &FormfillError{
		Type:     ErrValidationFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    nil,
	}
}

// Recovery strategies

// RecoverFromError attempts to recover from common errors with fallback strategies
func RecoverFromError(err error) error {
	if err == nil {
		return nil
	}

	var ffErr *FormfillError
	if !errors.As(err, &ffErr) {
		// Wrap unknown errors
		return &FormfillError{
			Type:     errors.New("unknown error"),
			Message:  err.Error(),
			Guidance: "An unexpected error occurred. Please check your inputs and try again.",
			Cause:    err,
		}
	}

	// Apply recovery strategies based on error type
	switch ffErr.Type {
	case ErrSettingsInvalid:
		return recoverFromSettingsError(ffErr)
	case ErrSubmitFailed:
		return recoverFromSubmitError(ffErr)
	default:
		return ffErr
	}
}

func recoverFromSettingsError(err *FormfillError) error {
	// Try to create the default settings directory if it doesn't exist
	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return err // Can't recover
	}

	settingsDir := fmt.Sprintf("%s/.config/formfill", homeDir)
	if _, statErr := os.Stat(settingsDir); os.IsNotExist(statErr) {
		if mkdirErr := os.MkdirAll(settingsDir, 0755); mkdirErr != nil {
			// Add recovery attempt info to guidance
			err.Guidance += fmt.Sprintf("\n\nAttempted to create settings directory '%s' but failed: %v",
				settingsDir, mkdirErr)
			return err
		}

		// Successfully created directory
		err.Guidance += fmt.Sprintf("\n\nCreated settings directory '%s'. You can now create a config.toml file there.",
			settingsDir)
	}

	return err
}

func recoverFromSubmitError(err *FormfillError) error {
	// A dry run shows the payload without needing the network
	if strings.Contains(err.Message, "failed to submit") {
		err.Guidance += "\n\nUse --dry-run to inspect the payload without submitting."
	}
	return err
}

// IsRecoverableError checks if an error can be recovered from
func IsRecoverableError(err error) bool {
	var ffErr *FormfillError
	if !errors.As(err, &ffErr) {
		return false
	}

	// Some errors are recoverable with a fallback
	switch ffErr.Type {
	case ErrOutputFailed:
		return true // Can fall back to stdout
	default:
		return false
	}
}
