package api

import (
	"time"

	"github.com/serviceo/serviceo-api/internal/domain"
)

// UserResponse represents the response data for a user account.
type UserResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	Location     domain.Location `json:"location"`
	ProfileImage string          `json:"profile_image,omitempty"`
	IsVerified   bool            `json:"is_verified"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AuthResponse represents the response data for register and login.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// ServiceResponse represents the response data for a catalog service.
type ServiceResponse struct {
	ID            string            `json:"id"`
	ProviderID    string            `json:"provider_id"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Pricing       float64           `json:"pricing"`
	Availability  []domain.TimeSlot `json:"availability"`
	Location      domain.Location   `json:"location"`
	AverageRating float64           `json:"average_rating"`
}

// BookingResponse represents the response data for a booking.
type BookingResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	ServiceID     string     `json:"service_id"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	TotalCost     float64    `json:"total_cost"`
	PaymentMethod string     `json:"payment_method"`
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ReviewResponse represents the response data for a review.
type ReviewResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryResponse represents the response data for a category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		Role:         string(user.Role),
		Location:     user.Location,
		ProfileImage: user.ProfileImage,
		IsVerified:   user.IsVerified,
		CreatedAt:    user.CreatedAt,
	}
}

func serviceToResponse(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:            service.ID.String(),
		ProviderID:    service.ProviderID.String(),
		Category:      service.Category,
		Description:   service.Description,
		Pricing:       service.Pricing,
		Availability:  service.Availability,
		Location:      service.Location,
		AverageRating: service.AverageRating,
	}
}

func servicesToResponse(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, serviceToResponse(s))
	}
	return out
}

func bookingToResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CustomerID:    booking.CustomerID.String(),
		ServiceID:     booking.ServiceID.String(),
		Date:          booking.Date,
		Status:        string(booking.Status),
		TotalCost:     booking.TotalCost,
		PaymentMethod: string(booking.PaymentMethod),
		PaymentStatus: string(booking.PaymentStatus),
		PaymentDate:   booking.PaymentDate,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func bookingsToResponse(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingToResponse(b))
	}
	return out
}

func reviewToResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		BookingID:  review.BookingID.String(),
		CustomerID: review.CustomerID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

func reviewsToResponse(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, reviewToResponse(rv))
	}
	return out
}

func categoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
	}
}

func categoriesToResponse(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToResponse(c))
	}
	return out
}
