package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"formfill-cli/internal/convert"
	"formfill-cli/internal/form"
	"formfill-cli/internal/interactive"
	"formfill-cli/internal/interfaces"
	"formfill-cli/internal/settings"
	"formfill-cli/internal/submit"
	"formfill-cli/pkg/models"
)

// Run executes the main application logic: read a config file, resolve
// its fields, and submit the answers to the form
func Run(request *models.SubmitRequest) error {
	if err := validateRequest(request); err != nil {
		return RecoverFromError(err)
	}

	cfg, err := loadSettings(request.SettingsPath, request.Timeout)
	if err != nil {
		return RecoverFromError(NewSettingsError(err.Error(), err))
	}

	configPath := request.ConfigPath
	if configPath == "" {
		configPath = cfg.DefaultConfig
	}

	text, err := os.ReadFile(configPath)
	if err != nil {
		return RecoverFromError(NewConfigError(configPath, err))
	}

	prompter := interactive.NewPrompter()

	// With --yes the prompted fields keep their defaults
	var prompt form.PromptFunc
	if !request.AssumeYes {
		prompt = prompter.Prompt
	}

	doc, err := form.BuildDocument(string(text), prompt)
	if err != nil {
		if errors.Is(err, interactive.ErrAborted) {
			return err
		}
		return RecoverFromError(NewConfigError(configPath, err))
	}

	if cfg.ShowValues {
		printSummary(doc)
	}

	if request.DryRun {
		fmt.Println("Dry run, not submitting")
		fmt.Printf("POST %s\n", doc.URL)
		fmt.Println(doc.EntryValues().Encode())
		return nil
	}

	if cfg.ConfirmSubmit && !request.AssumeYes {
		confirmed, err := prompter.Confirm(fmt.Sprintf("Submit %d answers?", len(doc.Entries())), true)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Submission cancelled")
			return nil
		}
	}

	client := submit.New(
		submit.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		submit.WithUserAgent(cfg.UserAgent),
	)
	if err := client.Submit(context.Background(), doc); err != nil {
		return RecoverFromError(NewSubmitError(doc.URL, err))
	}

	fmt.Printf("Submitted %d answers to %s\n", len(doc.Entries()), doc.URL)
	return nil
}

// RunConvert fetches a live form and writes a config skeleton for it
func RunConvert(request *models.ConvertRequest) error {
	if err := validateConvertRequest(request); err != nil {
		return RecoverFromError(err)
	}

	cfg, err := loadSettings(request.SettingsPath, request.Timeout)
	if err != nil {
		return RecoverFromError(NewSettingsError(err.Error(), err))
	}

	prompter := interactive.NewPrompter()

	source := request.Source
	if request.FromClipboard {
		source, err = prompter.ReadLink()
		if err != nil {
			return RecoverFromError(NewConvertError("clipboard", err))
		}
	}

	converter := convert.New(
		convert.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		convert.WithUserAgent(cfg.UserAgent),
	)
	skeleton, err := converter.Convert(context.Background(), source)
	if err != nil {
		return RecoverFromError(NewConvertError(source, err))
	}

	return writeSkeleton(skeleton, request.Output, request.Force, request.AssumeYes, prompter)
}

// RunCheck parses a config file and reports grammar problems without
// prompting or submitting anything
func RunCheck(request *models.CheckRequest) error {
	if err := validateCheckRequest(request); err != nil {
		return RecoverFromError(err)
	}

	configPath := request.ConfigPath
	if configPath == "" {
		cfg, err := loadSettings(request.SettingsPath, 0)
		if err != nil {
			return RecoverFromError(NewSettingsError(err.Error(), err))
		}
		configPath = cfg.DefaultConfig
	}

	text, err := os.ReadFile(configPath)
	if err != nil {
		return RecoverFromError(NewConfigError(configPath, err))
	}

	errs := form.CheckDocument(string(text))
	if len(errs) == 0 {
		fmt.Printf("%s: OK\n", configPath)
		return nil
	}

	for _, e := range errs {
		fmt.Printf("%s: %s\n", configPath, e)
	}
	return RecoverFromError(NewConfigError(configPath,
		fmt.Errorf("%d problems found", len(errs))))
}

// loadSettings loads, resolves and validates settings, applying any flag
// overrides from the command line
func loadSettings(path string, timeout int) (*interfaces.Settings, error) {
	manager := settings.NewManager()

	if _, err := manager.Load(path); err != nil {
		return nil, err
	}

	if timeout > 0 {
		manager.SetFlag("timeout_seconds", timeout)
	}

	cfg, err := manager.Resolve()
	if err != nil {
		return nil, err
	}

	if err := manager.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// printSummary lists the resolved values before submission
func printSummary(doc *form.Config) {
	fmt.Printf("Form: %s\n", doc.URL)
	for _, f := range doc.Entries() {
		fmt.Printf("  %s: %s\n", f.Title, f.Value.String())
	}
	for _, f := range doc.Extras() {
		fmt.Printf("  %s: %s (not sent)\n", f.Title, f.Value.String())
	}
}

// writeSkeleton writes the rendered config to the output target, falling
// back to stdout when the file cannot be written
func writeSkeleton(skeleton, output string, force, assumeYes bool, prompter interfaces.Prompter) error {
	if output == "" || output == "-" {
		fmt.Print(skeleton)
		return nil
	}

	if _, err := os.Stat(output); err == nil && !force {
		// Noninteractive runs answer the overwrite question with its
		// default, which is no
		if assumeYes {
			fmt.Println("Leaving existing file in place")
			return nil
		}
		overwrite, err := prompter.ConfirmOverwrite(output)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Leaving existing file in place")
			return nil
		}
	}

	if err := os.WriteFile(output, []byte(skeleton), 0644); err != nil {
		outputErr := NewOutputError(output, err)
		if IsRecoverableError(outputErr) {
			fmt.Fprintf(os.Stderr, "Warning: %s\nFalling back to stdout:\n\n", outputErr.Error())
			fmt.Print(skeleton)
			return nil
		}
		return RecoverFromError(outputErr)
	}

	fmt.Printf("Config skeleton written to %s\n", output)
	return nil
}

// validateRequest validates the submission request
func validateRequest(request *models.SubmitRequest) error {
	if request == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}

	if request.Timeout < 0 {
		return NewValidationError("timeout", request.Timeout, "must not be negative")
	}

	// Validate config path if specified; an empty path falls back to the
	// default_config setting later
	if request.ConfigPath != "" {
		if _, err := os.Stat(request.ConfigPath); os.IsNotExist(err) {
			return NewValidationError("config_path", request.ConfigPath, "file does not exist")
		}
	}

	if request.SettingsPath != "" {
		if _, err := os.Stat(request.SettingsPath); os.IsNotExist(err) {
			return NewValidationError("settings_path", request.SettingsPath, "file does not exist")
		}
	}

	return nil
}

// validateConvertRequest validates the conversion request
func validateConvertRequest(request *models.ConvertRequest) error {
	if request == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}

	if request.Source == "" && !request.FromClipboard {
		return NewValidationError("source", "", "a form link is required unless --clipboard is used")
	}

	if request.Timeout < 0 {
		return NewValidationError("timeout", request.Timeout, "must not be negative")
	}

	if request.SettingsPath != "" {
		if _, err := os.Stat(request.SettingsPath); os.IsNotExist(err) {
			return NewValidationError("settings_path", request.SettingsPath, "file does not exist")
		}
	}

	return nil
}

// validateCheckRequest validates the check request
func validateCheckRequest(request *models.CheckRequest) error {
	if request == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}

	if request.SettingsPath != "" {
		if _, err := os.Stat(request.SettingsPath); os.IsNotExist(err) {
			return NewValidationError("settings_path", request.SettingsPath, "file does not exist")
		}
	}

	return nil
}
