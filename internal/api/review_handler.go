package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/api/middleware"
	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/service"
)

// CreateReviewRequest represents the request body for reviewing a booking.
// The customer_id names the claimed reviewer and is checked against the
// booking's owner.
type CreateReviewRequest struct {
	BookingID  string `json:"booking_id"  validate:"required,uuid"`
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Rating     int    `json:"rating"      validate:"required"`
	Comment    string `json:"comment"     validate:"required"`
}

// ReviewHandler handles review HTTP requests.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview handles POST /api/reviews requests.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid booking_id format")
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid customer_id format")
		return
	}

	review, err := h.reviewService.AddReview(r.Context(), principal, service.AddReviewInput{
		BookingID:  bookingID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}
