package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/classhub/classhub-api/internal/core/domain"
)

type SnippetRepository struct {
	db *sql.DB
}

func NewSnippetRepository(db *sql.DB) *SnippetRepository {
	return &SnippetRepository{db: db}
}

func (r *SnippetRepository) Create(ctx context.Context, snippet *domain.Snippet) (*domain.Snippet, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO snippets (author_id, content)
		 VALUES ($1, $2)
		 RETURNING id, author_id, content, created_at, updated_at`,
		snippet.AuthorID, snippet.Content,
	)

	created, err := scanSnippet(row)
	if err != nil {
		return nil, fmt.Errorf("insert snippet: %w", err)
	}
	return created, nil
}

func (r *SnippetRepository) FindByID(ctx context.Context, id int64) (*domain.Snippet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, author_id, content, created_at, updated_at
		 FROM snippets WHERE id = $1`,
		id,
	)

	snippet, err := scanSnippet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnippetNotFound
		}
		return nil, fmt.Errorf("find snippet: %w", err)
	}
	return snippet, nil
}

func (r *SnippetRepository) List(ctx context.Context) ([]domain.Snippet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author_id, content, created_at, updated_at
		 FROM snippets ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()

	snippets := []domain.Snippet{}
	for rows.Next() {
		var s domain.Snippet
		if err := rows.Scan(&s.ID, &s.AuthorID, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	return snippets, nil
}

func (r *SnippetRepository) Update(ctx context.Context, id int64, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE snippets SET content = $1, updated_at = NOW() WHERE id = $2`,
		content, id,
	)
	if err != nil {
		return fmt.Errorf("update snippet: %w", err)
	}
	return requireRow(res, domain.ErrSnippetNotFound)
}

func (r *SnippetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete snippet: %w", err)
	}
	return requireRow(res, domain.ErrSnippetNotFound)
}

func scanSnippet(row *sql.Row) (*domain.Snippet, error) {
	var s domain.Snippet
	if err := row.Scan(&s.ID, &s.AuthorID, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
