package api

import (
	"net/http"

	"github.com/serviceo/serviceo-api/internal/api/middleware"
	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/service"
)

// CategoryRequest represents the request body for creating or replacing a
// category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CategoryHandler handles category reference data HTTP requests.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories handles GET /api/categories requests.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// GetCategory handles GET /api/categories/{id} requests.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// CreateCategory handles POST /api/categories requests.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), principal, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// UpdateCategory handles PUT /api/categories/{id} requests.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), principal, id, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /api/categories/{id} requests.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), principal, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
