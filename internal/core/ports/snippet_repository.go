package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

// SnippetRepository defines the persistence interface for snippets.
// List returns snippets newest first. Update and Delete report
// domain.ErrSnippetNotFound when no row matched.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *domain.Snippet) (*domain.Snippet, error)
	FindByID(ctx context.Context, id int64) (*domain.Snippet, error)
	List(ctx context.Context) ([]domain.Snippet, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}
