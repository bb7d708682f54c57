package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/classhub/classhub-api/internal/core/domain"
)

func snippetColumns() []string {
	return []string{"id", "author_id", "content", "created_at", "updated_at"}
}

func TestSnippetRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO snippets").
		WithArgs(int64(7), "hello world").
		WillReturnRows(sqlmock.NewRows(snippetColumns()).
			AddRow(int64(1), int64(7), "hello world", now, now))

	repo := NewSnippetRepository(db)
	created, err := repo.Create(context.Background(), &domain.Snippet{AuthorID: 7, Content: "hello world"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 || created.AuthorID != 7 {
		t.Fatalf("unexpected snippet: %+v", created)
	}
}

func TestSnippetRepository_List_NewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	mock.ExpectQuery(`SELECT id, author_id, content, created_at, updated_at FROM snippets ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(snippetColumns()).
			AddRow(int64(2), int64(7), "newer", newer, newer).
			AddRow(int64(1), int64(7), "older", older, older))

	repo := NewSnippetRepository(db)
	snippets, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(snippets) != 2 || snippets[0].Content != "newer" {
		t.Fatalf("unexpected order: %+v", snippets)
	}
}

func TestSnippetRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, author_id, content, created_at, updated_at FROM snippets WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	repo := NewSnippetRepository(db)
	if _, err := repo.FindByID(context.Background(), 404); !errors.Is(err, domain.ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestSnippetRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("UPDATE snippets SET content").
		WithArgs("new content", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSnippetRepository(db)
	if err := repo.Update(context.Background(), 1, "new content"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestSnippetRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM snippets WHERE id").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSnippetRepository(db)
	if err := repo.Delete(context.Background(), 404); !errors.Is(err, domain.ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}
