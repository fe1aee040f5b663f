package driven

import (
	"context"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// SnippetService is the remote paste-bin API the publisher talks to.
// Every response exposes the API's rate-quota headers; implementations
// return the refreshed quota alongside the payload so the caller can
// feed the rate-limit tracker.
type SnippetService interface {
	// Create publishes a new snippet from a filename-to-content map.
	Create(ctx context.Context, files map[string]string, public bool, description string) (*domain.Snippet, *domain.RateQuota, error)

	// Update replaces the files of an existing snippet.
	Update(ctx context.Context, id string, files map[string]string) (*domain.Snippet, *domain.RateQuota, error)

	// Fetch retrieves a snippet's current files.
	Fetch(ctx context.Context, id string) (*domain.Snippet, *domain.RateQuota, error)
}
