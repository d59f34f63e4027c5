package interfaces

import "formfill-cli/internal/form"

// Prompter collects interactive answers while a config is resolved
type Prompter interface {
	// Prompt asks for a field value, offering def as the fallback
	Prompt(title, def string, kind form.Kind) (string, error)

	// Confirm asks a yes/no question
	Confirm(message string, def bool) (bool, error)

	// ConfirmOverwrite asks whether an existing file should be replaced
	ConfirmOverwrite(path string) (bool, error)

	// ReadLink reads a form link from the system clipboard
	ReadLink() (string, error)
}
