package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/serviceo/serviceo-api/internal/api"
	apiMiddleware "github.com/serviceo/serviceo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService)
	serviceHandler := api.NewServiceHandler(app.catalogService, app.reviewService)
	bookingHandler := api.NewBookingHandler(app.bookingService)
	reviewHandler := api.NewReviewHandler(app.reviewService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// All routes resolve a principal when a token is present; most
		// reads stay usable anonymously and the services gate the rest.
		r.Use(authMiddleware.Populate)

		// Authentication
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)
		r.With(authMiddleware.Require).Get("/auth/me", authHandler.Me)

		// Service catalog
		r.Get("/services", serviceHandler.ListServices)
		r.Get("/services/{id}", serviceHandler.GetService)
		r.Get("/services/{id}/reviews", serviceHandler.GetServiceReviews)
		r.Post("/services", serviceHandler.CreateService)
		r.Patch("/services/{id}", serviceHandler.UpdateService)
		r.Delete("/services/{id}", serviceHandler.DeleteService)

		// Providers
		r.Get("/providers/{id}", serviceHandler.GetProvider)
		r.Get("/providers/{id}/bookings", bookingHandler.ListProviderBookings)

		// Bookings
		r.Post("/bookings", bookingHandler.CreateBooking)
		r.Get("/bookings/{id}", bookingHandler.GetBooking)
		r.Patch("/bookings/{id}/status", bookingHandler.UpdateBookingStatus)
		r.Post("/bookings/{id}/payment", bookingHandler.MarkPaymentPaid)
		r.Delete("/bookings/{id}", bookingHandler.DeleteBooking)
		r.Get("/customers/{id}/bookings", bookingHandler.ListCustomerBookings)

		// Reviews
		r.Post("/reviews", reviewHandler.CreateReview)

		// Categories
		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{id}", categoryHandler.GetCategory)
		r.Post("/categories", categoryHandler.CreateCategory)
		r.Put("/categories/{id}", categoryHandler.UpdateCategory)
		r.Delete("/categories/{id}", categoryHandler.DeleteCategory)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
