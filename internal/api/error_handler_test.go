package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/classhub/classhub-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect username or password"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusForbidden, "token is invalid or expired"},
		{"role not permitted", domain.ErrRoleNotPermitted, http.StatusUnauthorized, "unauthorized role"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"snippet not found", domain.ErrSnippetNotFound, http.StatusNotFound, "snippet not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "username already taken"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update snippet 3"), domain.ErrSnippetNotFound)
	code, msg := renderError(t, wrapped)
	if code != http.StatusNotFound || msg != "snippet not found" {
		t.Fatalf("expected 404 snippet not found, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("expected 400 invalid payload, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// The real cause stays in the log; the client gets a generic message.
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
