package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookradar/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createCommentReq struct {
	BookID string `json:"bookId" validate:"required"`
	Text   string `json:"text" validate:"required,max=2000"`
}

// Create handles POST /api/comments
// @Summary Comment on a book
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createCommentReq true "Comment request"
// @Success 201 {object} Comment
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/comments [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	created, err := h.service.Create(r.Context(), req.BookID, userID, req.Text)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create comment", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}

// ListByBook handles GET /api/comments/{bookId}
// @Summary List a book's comments, newest first
// @Tags comments
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {array} Comment
// @Router /api/comments/{bookId} [get]
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	comments, err := h.service.ListByBook(r.Context(), bookID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch comments", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, comments)
}

type updateCommentReq struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// Update handles PUT /api/comments/{id}
// @Summary Update a previously left comment
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Comment ID"
// @Param request body updateCommentReq true "Update request"
// @Success 200 {object} Comment
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/comments/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req updateCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("id"), userID, req.Text)
	if err != nil {
		writeCommentError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/comments/{id}
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security Bearer
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		writeCommentError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}

func writeCommentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Comment not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Not authorized", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
