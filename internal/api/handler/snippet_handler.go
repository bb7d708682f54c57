package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classhub/classhub-api/internal/api/metrics"
	"github.com/classhub/classhub-api/internal/core/ports"
)

// SnippetHandler serves snippet CRUD. Listing is public; creation needs
// any writer role and mutation additionally passes through the service's
// ownership check.
type SnippetHandler struct {
	snippetService ports.SnippetService
}

func NewSnippetHandler(snippetService ports.SnippetService) *SnippetHandler {
	return &SnippetHandler{snippetService: snippetService}
}

type snippetRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create stores a new snippet authored by the caller.
//
// @Summary      Create a snippet
// @Tags         snippets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      snippetRequest  true  "Snippet content"
// @Success      201   {object}  domain.Snippet
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /snippets [post]
func (h *SnippetHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req snippetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snippet, err := h.snippetService.Create(c.Request().Context(), identity.ID, req.Content)
	if err != nil {
		return err
	}

	metrics.SnippetsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, snippet)
}

// List returns all snippets, newest first. No authentication required.
//
// @Summary      List snippets
// @Tags         snippets
// @Produce      json
// @Success      200  {array}   domain.Snippet
// @Failure      500  {object}  map[string]string
// @Router       /snippets [get]
func (h *SnippetHandler) List(c echo.Context) error {
	snippets, err := h.snippetService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snippets)
}

// Update replaces a snippet's content. Only the author or an admin may
// do this; a missing snippet is 404 regardless of who asks.
//
// @Summary      Update a snippet
// @Tags         snippets
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        id    path      int             true  "Snippet id"
// @Param        body  body      snippetRequest  true  "New content"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /snippets/{id} [put]
func (h *SnippetHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req snippetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.snippetService.Update(c.Request().Context(), identity, id, req.Content); err != nil {
		return err
	}

	return c.String(http.StatusOK, "Snippet updated successfully.")
}

// Delete removes a snippet, under the same ownership rules as Update.
//
// @Summary      Delete a snippet
// @Tags         snippets
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  int  true  "Snippet id"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /snippets/{id} [delete]
func (h *SnippetHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.snippetService.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}

	return c.String(http.StatusOK, "Snippet deleted successfully.")
}
