package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

type SnippetService interface {
	Create(ctx context.Context, authorID int64, content string) (*domain.Snippet, error)
	List(ctx context.Context) ([]domain.Snippet, error)
	// Update and Delete enforce ownership: the caller must be the snippet's
	// author or an admin. A missing snippet is reported before ownership is
	// evaluated.
	Update(ctx context.Context, identity domain.Identity, id int64, content string) error
	Delete(ctx context.Context, identity domain.Identity, id int64) error
}
