package api

import (
	"net/http"

	"github.com/serviceo/serviceo-api/internal/api/middleware"
	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service"
)

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Name     string          `json:"name"     validate:"required"`
	Email    string          `json:"email"    validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Phone    string          `json:"phone"    validate:"required"`
	Role     string          `json:"role"     validate:"required,oneof=customer provider"`
	Location domain.Location `json:"location"`
}

// LoginRequest represents the request body for a credential login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the request body for a token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthHandler handles account and session HTTP requests.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.userService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     domain.UserRole(req.Role),
		Location: req.Location,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, authResultToResponse(result))
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authResultToResponse(result))
}

// Refresh handles POST /api/auth/refresh requests.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.userService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authResultToResponse(result))
}

// Me handles GET /api/auth/me requests.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	user, err := h.userService.GetCurrentUser(r.Context(), principal)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

func authResultToResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User:         userToResponse(result.User),
	}
}
