package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

// SnippetCache is a best-effort cache for the public snippet listing.
// GetList returns (nil, nil) on a miss. Cache failures must never fail
// the request — callers fall back to the repository.
type SnippetCache interface {
	GetList(ctx context.Context) ([]domain.Snippet, error)
	SetList(ctx context.Context, snippets []domain.Snippet) error
	Invalidate(ctx context.Context) error
}
