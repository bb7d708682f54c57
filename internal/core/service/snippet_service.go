package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-api/internal/core/domain"
	"github.com/classhub/classhub-api/internal/core/ports"
)

// SnippetService implements snippet CRUD with ownership authorization on
// mutation. The cache is optional: pass nil to serve every listing from
// the repository.
type SnippetService struct {
	repo   ports.SnippetRepository
	cache  ports.SnippetCache
	logger zerolog.Logger
}

func NewSnippetService(repo ports.SnippetRepository, cache ports.SnippetCache, logger zerolog.Logger) *SnippetService {
	return &SnippetService{repo: repo, cache: cache, logger: logger}
}

func (s *SnippetService) Create(ctx context.Context, authorID int64, content string) (*domain.Snippet, error) {
	created, err := s.repo.Create(ctx, &domain.Snippet{
		AuthorID: authorID,
		Content:  content,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Int64("snippet_id", created.ID).Int64("author_id", authorID).Msg("snippet created")

	return created, nil
}

// List returns all snippets, newest first. Cache errors degrade to the
// repository; they never fail the request.
func (s *SnippetService) List(ctx context.Context) ([]domain.Snippet, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("snippet cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	snippets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, snippets); err != nil {
			s.logger.Warn().Err(err).Msg("snippet cache write failed")
		}
	}

	return snippets, nil
}

// Update replaces a snippet's content. The existence check runs before
// the ownership check, so a missing snippet is always "not found" no
// matter who asks.
func (s *SnippetService) Update(ctx context.Context, identity domain.Identity, id int64, content string) error {
	snippet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !snippet.CanModify(identity) {
		return domain.ErrForbidden
	}

	if err := s.repo.Update(ctx, id, content); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Int64("snippet_id", id).Int64("user_id", identity.ID).Msg("snippet updated")
	return nil
}

func (s *SnippetService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	snippet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !snippet.CanModify(identity) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Int64("snippet_id", id).Int64("user_id", identity.ID).Msg("snippet deleted")
	return nil
}

func (s *SnippetService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snippet cache invalidation failed")
	}
}
