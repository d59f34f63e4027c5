package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"formfill-cli/internal/app"
	"formfill-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "formfill [config-file]",
	Short: "A CLI tool for filling and submitting web forms from config files",
	Long: `Formfill CLI fills and submits Google Forms from plain-text config files.

A config file names the form on its first line, then lists one field per
line as 'type-key;Title=value'. Fields marked with ! are asked for
interactively, fields marked with * must end up with a value. Without an
argument the default_config from your settings file is used.

Generate a config skeleton for an existing form with 'formfill convert',
or pass --convert to treat the arguments as a form link and an output
path instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		// With --convert the arguments name a form link and an output
		// path instead of a config file
		if convertFlag, _ := cmd.Flags().GetBool("convert"); convertFlag {
			request, err := buildConvertRequestFromFlags(cmd, args)
			if err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}
			return app.RunConvert(request)
		}

		request, err := buildRequestFromFlags(cmd, args)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("formfill version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <source> [output]",
	Short: "Turn a live form into a config skeleton",
	Long: `Fetch a Google Form and print a config file skeleton for it, with one
line per question carrying the right type, entry key and title. The form
can be given as a full link, a bare 56-character form ID, a .url/.desktop
shortcut file, or read from the clipboard with --clipboard.

With a second argument the skeleton is written to that file instead of
being printed to stdout.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildConvertRequestFromFlags(cmd, args)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.RunConvert(request)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [config-file]",
	Short: "Check a config file for grammar problems",
	Long: `Parse a config file and report every malformed line without prompting
for values or submitting anything. Without an argument the default
config from your settings file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request := &models.CheckRequest{}
		if len(args) > 0 {
			request.ConfigPath = strings.TrimSpace(args[0])
		}

		var err error
		if request.SettingsPath, err = cmd.Flags().GetString("settings"); err != nil {
			return fmt.Errorf("invalid settings flag: %w", err)
		}

		return app.RunCheck(request)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(checkCmd)

	// Convert specific flags
	convertCmd.Flags().BoolP("clipboard", "b", false, "read the form link from the clipboard")
	convertCmd.Flags().BoolP("force", "f", false, "overwrite the output file without asking")

	// Global flags
	rootCmd.PersistentFlags().String("settings", "", "settings file path (default ~/.config/formfill/config.toml)")
	rootCmd.PersistentFlags().IntP("timeout", "t", 0, "request timeout in seconds (overrides settings)")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "noninteractive mode - keep defaults and skip confirmations")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "print version information")

	// Main command flags
	rootCmd.Flags().BoolP("dry-run", "n", false, "resolve the config and print the payload without submitting")
	rootCmd.Flags().Bool("convert", false, "treat the arguments as a form link and an output path for a config skeleton")
}

// buildRequestFromFlags constructs a SubmitRequest from command flags and arguments
func buildRequestFromFlags(cmd *cobra.Command, args []string) (*models.SubmitRequest, error) {
	request := &models.SubmitRequest{}

	// A second argument is only meaningful together with --convert
	if len(args) > 1 {
		return nil, fmt.Errorf("expected a single config file, got %d arguments", len(args))
	}

	// Get config file from positional argument
	if len(args) > 0 {
		request.ConfigPath = strings.TrimSpace(args[0])
	}

	// Extract flags
	var err error

	if request.SettingsPath, err = cmd.Flags().GetString("settings"); err != nil {
		return nil, fmt.Errorf("invalid settings flag: %w", err)
	}

	if request.Timeout, err = cmd.Flags().GetInt("timeout"); err != nil {
		return nil, fmt.Errorf("invalid timeout flag: %w", err)
	}

	if request.AssumeYes, err = cmd.Flags().GetBool("yes"); err != nil {
		return nil, fmt.Errorf("invalid yes flag: %w", err)
	}

	if request.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return nil, fmt.Errorf("invalid dry-run flag: %w", err)
	}

	return request, nil
}

// buildConvertRequestFromFlags constructs a ConvertRequest from command flags and arguments
func buildConvertRequestFromFlags(cmd *cobra.Command, args []string) (*models.ConvertRequest, error) {
	request := &models.ConvertRequest{}

	// Extract flags
	var err error

	if request.SettingsPath, err = cmd.Flags().GetString("settings"); err != nil {
		return nil, fmt.Errorf("invalid settings flag: %w", err)
	}

	if request.Timeout, err = cmd.Flags().GetInt("timeout"); err != nil {
		return nil, fmt.Errorf("invalid timeout flag: %w", err)
	}

	if request.AssumeYes, err = cmd.Flags().GetBool("yes"); err != nil {
		return nil, fmt.Errorf("invalid yes flag: %w", err)
	}

	// Clipboard and force exist on the convert subcommand only; the root
	// command reaches here via --convert without them
	if cmd.Flags().Lookup("clipboard") != nil {
		if request.FromClipboard, err = cmd.Flags().GetBool("clipboard"); err != nil {
			return nil, fmt.Errorf("invalid clipboard flag: %w", err)
		}
	}

	if cmd.Flags().Lookup("force") != nil {
		if request.Force, err = cmd.Flags().GetBool("force"); err != nil {
			return nil, fmt.Errorf("invalid force flag: %w", err)
		}
	}

	// Positional arguments are <source> [output]. With --clipboard the
	// link comes from the clipboard and the only argument is the output.
	if request.FromClipboard {
		if len(args) > 1 {
			return nil, fmt.Errorf("expected at most an output path with --clipboard, got %d arguments", len(args))
		}
		if len(args) > 0 {
			request.Output = strings.TrimSpace(args[0])
		}
		return request, nil
	}

	if len(args) > 0 {
		request.Source = strings.TrimSpace(args[0])
	}
	if len(args) > 1 {
		request.Output = strings.TrimSpace(args[1])
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
