package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookradar/internal/httpx"
	"bookradar/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type credentialsReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsReq true "Registration request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	token, userID, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusBadRequest, "USER_EXISTS", "User already exists", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Registration failed", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"token": token, "userId": userID})
}

// Login handles POST /api/auth/login
// @Summary Login an existing user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsReq true "Login request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	token, userID, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"token": token, "userId": userID})
}
