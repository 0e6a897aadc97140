package rating

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

type upsertRatingReq struct {
	BookID string `json:"bookId" validate:"required"`
	Score  int    `json:"score" validate:"required,gte=1,lte=5"`
}

// Upsert handles POST /api/ratings
// @Summary Create or update the caller's rating for a book
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body upsertRatingReq true "Rating request"
// @Success 200 {object} Rating
// @Success 201 {object} Rating
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/ratings [post]
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req upsertRatingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	saved, created, err := h.service.Upsert(r.Context(), req.BookID, userID, req.Score)
	if err != nil {
		writeRatingError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, saved)
}

// GetAggregate handles GET /api/ratings/{bookId}
// @Summary Get average rating and score breakdown for a book
// @Tags ratings
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} Aggregate
// @Router /api/ratings/{bookId} [get]
func (h *HTTPHandler) GetAggregate(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	agg, err := h.service.Aggregate(r.Context(), bookID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch ratings", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, agg)
}

type updateRatingReq struct {
	Score int `json:"score" validate:"required,gte=1,lte=5"`
}

// Update handles PUT /api/ratings/{id}
// @Summary Update a previously created rating
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Rating ID"
// @Param request body updateRatingReq true "Update request"
// @Success 200 {object} Rating
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/ratings/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req updateRatingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	updated, err := h.service.UpdateScore(r.Context(), r.PathValue("id"), userID, req.Score)
	if err != nil {
		writeRatingError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/ratings/{id}
// @Summary Delete a rating
// @Tags ratings
// @Produce json
// @Security Bearer
// @Param id path string true "Rating ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/ratings/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		writeRatingError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Rating deleted"})
}

func writeRatingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidScore):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SCORE", "Score must be between 1 and 5", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Rating not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Not authorized", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
