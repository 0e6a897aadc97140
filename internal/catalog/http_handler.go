package catalog

import (
	"errors"
	"net/http"
	"strings"

	"bookradar/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /api/books/search?q=
// @Summary Search best sellers
// @Description Search the cached best-seller overview by title, author or list name
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_QUERY", "Query must not be blank", nil)
		return
	}

	books, err := h.service.Search(r.Context(), query)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"results": books})
}

// ListNames handles GET /api/books/list-names
// @Summary List best-seller list names
// @Tags books
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/books/list-names [get]
func (h *HTTPHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.ListNames(r.Context())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"results": names})
}

// CurrentList handles GET /api/books/current/{name}
// @Summary Get the current snapshot of one list
// @Tags books
// @Produce json
// @Param name path string true "Encoded list name"
// @Success 200 {object} map[string]any
// @Failure 502 {object} httpx.ErrorResponse
// @Router /api/books/current/{name} [get]
func (h *HTTPHandler) CurrentList(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "List name is required", nil)
		return
	}

	list, err := h.service.CurrentList(r.Context(), name)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"results": list})
}

func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_QUERY", "Query must not be blank", nil)
	case errors.Is(err, ErrUpstream):
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Failed to fetch from provider", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
