package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/api/shared"
)

// getPathUUID extracts and parses a UUID path parameter. It writes a 400
// response and returns false when the parameter is missing or malformed.
func getPathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing "+paramName+" parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+paramName+" format")
		return uuid.Nil, false
	}

	return id, true
}

// parseBookingIDs parses the customer and service IDs from a booking
// request body. It writes a 400 response and returns false when either is
// malformed.
func parseBookingIDs(
	w http.ResponseWriter,
	r *http.Request,
	customerID, serviceID string,
) (uuid.UUID, uuid.UUID, bool) {
	customer, err := uuid.Parse(customerID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid customer_id format")
		return uuid.Nil, uuid.Nil, false
	}

	service, err := uuid.Parse(serviceID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid service_id format")
		return uuid.Nil, uuid.Nil, false
	}

	return customer, service, true
}
