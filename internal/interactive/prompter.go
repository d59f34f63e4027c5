package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"formfill-cli/internal/form"
)

// ErrAborted reports that the user cancelled an interactive prompt.
var ErrAborted = errors.New("interactive: aborted")

// Prompter handles interactive user input collection
type Prompter struct {
	reader *bufio.Reader // shared so buffered stdin survives across prompts
}

// NewPrompter creates a new interactive prompter
func NewPrompter() *Prompter {
	return &Prompter{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Prompt asks for one field value. A blank answer falls back to def, and
// answers that do not fit the field kind are rejected and asked again.
func (p *Prompter) Prompt(title, def string, kind form.Kind) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		// Fallback to plain line input if not in a terminal
		return p.fallbackPrompt(title, def, kind)
	}

	input := &survey.Input{
		Message: fmt.Sprintf("%s %s", title, kind.Hint()),
		Default: def,
	}
	validator := func(ans interface{}) error {
		answer, _ := ans.(string)
		return form.CheckValue(kind, answer)
	}

	var response string
	if err := survey.AskOne(input, &response, survey.WithValidator(validator)); err != nil {
		return "", translateSurveyErr(err)
	}

	return strings.TrimSpace(response), nil
}

// fallbackPrompt reads one line from stdin when no terminal is attached
func (p *Prompter) fallbackPrompt(title, def string, kind form.Kind) (string, error) {
	fmt.Printf("%s: %s ", title, kind.Hint())

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		if def != "" {
			fmt.Printf("Using default value: %s\n", def)
		} else {
			fmt.Println("Using empty value")
		}
		return "", nil
	}

	return input, nil
}

// Confirm asks a yes/no question, answered with a single keypress
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		// Fallback to regular input if not in a terminal
		return p.fallbackConfirm(message, def)
	}

	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Printf("%s %s ", message, suffix)

	// Save the current terminal state
	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if raw mode fails
		fmt.Println()
		return p.fallbackConfirm(message, def)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	// Read single character input
	buffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buffer); err != nil {
			return false, err
		}

		switch char := buffer[0]; char {
		case 'y', 'Y':
			fmt.Printf("%c\r\n", char)
			return true, nil
		case 'n', 'N':
			fmt.Printf("%c\r\n", char)
			return false, nil
		case '\r', '\n':
			fmt.Print("\r\n")
			return def, nil
		case 27, 3: // Escape or Ctrl+C
			fmt.Print("\r\n")
			return false, ErrAborted
		}

		// For any other key, continue waiting
	}
}

// fallbackConfirm reads the answer as a line when raw mode is not available
func (p *Prompter) fallbackConfirm(message string, def bool) (bool, error) {
	defaultText := "n"
	if def {
		defaultText = "y"
	}
	fmt.Printf("%s (y/n, default %s): ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "y", "yes", "1":
		return true, nil
	case "n", "no", "2":
		return false, nil
	}

	return false, fmt.Errorf("invalid input: please answer y or n")
}

// ConfirmOverwrite asks the user if they want to overwrite an existing file
func (p *Prompter) ConfirmOverwrite(path string) (bool, error) {
	message := fmt.Sprintf("File already exists: %s. Overwrite?", path)
	if !term.IsTerminal(int(syscall.Stdin)) {
		return p.fallbackConfirm(message, false)
	}

	overwritePrompt := &survey.Confirm{
		Message: message,
		Default: false,
	}

	var overwrite bool
	if err := survey.AskOne(overwritePrompt, &overwrite); err != nil {
		return false, translateSurveyErr(err)
	}

	return overwrite, nil
}

// ReadLink reads a form link from the system clipboard
func (p *Prompter) ReadLink() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("clipboard is empty")
	}

	fmt.Printf("Read form link from clipboard: %s\n", truncateString(content, 100))
	return content, nil
}

// translateSurveyErr maps survey's interrupt error onto the package
// sentinel so callers do not import survey internals
func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
