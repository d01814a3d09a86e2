package api

import (
	"net/http"

	"github.com/serviceo/serviceo-api/internal/api/middleware"
	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service"
	"github.com/serviceo/serviceo-api/internal/store"
)

// CreateServiceRequest represents the request body for publishing a service.
type CreateServiceRequest struct {
	Category     string            `json:"category"    validate:"required"`
	Description  string            `json:"description" validate:"required"`
	Pricing      float64           `json:"pricing"`
	Availability []domain.TimeSlot `json:"availability"`
	Location     domain.Location   `json:"location"`
}

// UpdateServiceRequest represents the request body for patching a service.
// Absent fields leave the current value untouched.
type UpdateServiceRequest struct {
	Category     *string           `json:"category,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Pricing      *float64          `json:"pricing,omitempty"`
	Availability []domain.TimeSlot `json:"availability,omitempty"`
	Location     *domain.Location  `json:"location,omitempty"`
}

// ServiceHandler handles service catalog HTTP requests.
type ServiceHandler struct {
	catalogService service.CatalogService
	reviewService  service.ReviewService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(
	catalogService service.CatalogService,
	reviewService service.ReviewService,
) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// ListServices handles GET /api/services requests. The category and city
// query parameters narrow the listing.
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	filter := store.ServiceFilter{
		Category: r.URL.Query().Get("category"),
		City:     r.URL.Query().Get("city"),
	}

	services, err := h.catalogService.ListServices(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, servicesToResponse(services))
}

// GetService handles GET /api/services/{id} requests.
func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	svc, err := h.catalogService.GetService(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, serviceToResponse(svc))
}

// GetServiceReviews handles GET /api/services/{id}/reviews requests.
func (h *ServiceHandler) GetServiceReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviewsForService(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}

// GetProvider handles GET /api/providers/{id} requests.
func (h *ServiceHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	provider, err := h.catalogService.GetProvider(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(provider))
}

// CreateService handles POST /api/services requests.
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var req CreateServiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	svc, err := h.catalogService.CreateService(r.Context(), principal, service.CreateServiceInput{
		Category:     req.Category,
		Description:  req.Description,
		Pricing:      req.Pricing,
		Availability: req.Availability,
		Location:     req.Location,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, serviceToResponse(svc))
}

// UpdateService handles PATCH /api/services/{id} requests.
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	svc, err := h.catalogService.UpdateService(r.Context(), principal, id, service.ServicePatch{
		Category:     req.Category,
		Description:  req.Description,
		Pricing:      req.Pricing,
		Availability: req.Availability,
		Location:     req.Location,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, serviceToResponse(svc))
}

// DeleteService handles DELETE /api/services/{id} requests.
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(r.Context(), principal, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
