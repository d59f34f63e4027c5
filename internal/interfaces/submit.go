package interfaces

import (
	"context"

	"formfill-cli/internal/form"
)

// Submitter posts a resolved form config to its endpoint
type Submitter interface {
	// Submit sends the config's entry values to its formResponse URL
	Submit(ctx context.Context, cfg *form.Config) error
}
