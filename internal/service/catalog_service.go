package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// CreateServiceInput carries the fields a provider supplies when
// publishing a new service. ProviderID and AverageRating are not part of
// the input: the owner is always the calling principal and the rating
// always starts at zero.
type CreateServiceInput struct {
	Category     string
	Description  string
	Pricing      float64
	Availability []domain.TimeSlot
	Location     domain.Location
}

// ServicePatch carries the mutable fields of a service. Nil pointers leave
// the current value untouched. The average rating is deliberately absent:
// it is derived data owned by the review service.
type ServicePatch struct {
	Category     *string
	Description  *string
	Pricing      *float64
	Availability []domain.TimeSlot
	Location     *domain.Location
}

// CatalogService owns service records and provider-scoped mutation
// authorization.
type CatalogService interface {
	// ListServices returns all services matching the filter. The city
	// filter is a case-insensitive substring match. An empty result is an
	// empty slice, not an error.
	ListServices(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error)

	// GetService returns the service with the given ID or
	// store.ErrServiceNotFound.
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// GetProvider returns the user with the given ID if it is a provider,
	// or store.ErrUserNotFound otherwise.
	GetProvider(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// CreateService publishes a new service owned by the principal.
	// Fails with ErrUnauthenticated without a principal, ErrForbidden for
	// non-providers, and ErrInvalidInput for negative pricing.
	CreateService(ctx context.Context, principal *domain.Principal, input CreateServiceInput) (*domain.Service, error)

	// UpdateService applies the patch to the principal's own service.
	// Ownership is the sole authorization rule: only providers can own
	// services, so the role is not re-checked here.
	UpdateService(ctx context.Context, principal *domain.Principal, id uuid.UUID, patch ServicePatch) (*domain.Service, error)

	// DeleteService removes the principal's own service.
	DeleteService(ctx context.Context, principal *domain.Principal, id uuid.UUID) error
}

// Verify interface compliance at compile time
var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	serviceStore store.ServiceStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewCatalogService creates a new CatalogService over the given stores.
func NewCatalogService(
	serviceStore store.ServiceStore,
	userStore store.UserStore,
	logger *slog.Logger,
) CatalogService {
	if serviceStore == nil {
		panic("serviceStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogService{
		serviceStore: serviceStore,
		userStore:    userStore,
		logger:       logger.With(slog.String("component", "catalog_service")),
	}
}

// ListServices implements CatalogService.ListServices.
func (s *catalogService) ListServices(
	ctx context.Context,
	filter store.ServiceFilter,
) ([]*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	services, err := s.serviceStore.Find(ctx, filter)
	if err != nil {
		log.Error("failed to list services",
			slog.String("error", err.Error()),
			slog.String("category", filter.Category),
			slog.String("city", filter.City))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	log.Debug("listed services",
		slog.Int("count", len(services)),
		slog.String("category", filter.Category),
		slog.String("city", filter.City))
	return services, nil
}

// GetService implements CatalogService.GetService.
func (s *catalogService) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.serviceStore.GetByID(ctx, id)
}

// GetProvider implements CatalogService.GetProvider.
// A user that exists but is not a provider is reported as not found, the
// same as an absent user.
func (s *catalogService) GetProvider(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleProvider {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// CreateService implements CatalogService.CreateService.
func (s *catalogService) CreateService(
	ctx context.Context,
	principal *domain.Principal,
	input CreateServiceInput,
) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	if principal.Role != domain.RoleProvider {
		log.Warn("non-provider attempted to create service",
			slog.String("user_id", principal.ID.String()),
			slog.String("role", string(principal.Role)))
		return nil, fmt.Errorf("%w: only providers can create services", ErrForbidden)
	}

	if input.Pricing < 0 {
		return nil, invalidInput("pricing must be a positive number")
	}

	service, err := domain.NewService(
		principal.ID,
		input.Category,
		input.Description,
		input.Pricing,
		input.Availability,
		input.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.serviceStore.Create(ctx, service); err != nil {
		log.Error("failed to create service",
			slog.String("error", err.Error()),
			slog.String("provider_id", principal.ID.String()))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	log.Info("service created",
		slog.String("service_id", service.ID.String()),
		slog.String("provider_id", principal.ID.String()),
		slog.String("category", service.Category))
	return service, nil
}

// UpdateService implements CatalogService.UpdateService.
func (s *catalogService) UpdateService(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
	patch ServicePatch,
) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	service, err := s.serviceStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if service.ProviderID != principal.ID {
		log.Warn("service update denied, not the owner",
			slog.String("service_id", id.String()),
			slog.String("user_id", principal.ID.String()),
			slog.String("owner_id", service.ProviderID.String()))
		return nil, fmt.Errorf("%w: not authorized to update this service", ErrForbidden)
	}

	if patch.Category != nil {
		service.Category = *patch.Category
	}
	if patch.Description != nil {
		service.Description = *patch.Description
	}
	if patch.Pricing != nil {
		if *patch.Pricing < 0 {
			return nil, invalidInput("pricing must be a positive number")
		}
		service.Pricing = *patch.Pricing
	}
	if patch.Availability != nil {
		service.Availability = patch.Availability
	}
	if patch.Location != nil {
		service.Location = *patch.Location
	}

	if err := s.serviceStore.Update(ctx, service); err != nil {
		log.Error("failed to update service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	log.Info("service updated",
		slog.String("service_id", id.String()),
		slog.String("provider_id", principal.ID.String()))
	return service, nil
}

// DeleteService implements CatalogService.DeleteService.
func (s *catalogService) DeleteService(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return ErrUnauthenticated
	}

	service, err := s.serviceStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if service.ProviderID != principal.ID {
		log.Warn("service delete denied, not the owner",
			slog.String("service_id", id.String()),
			slog.String("user_id", principal.ID.String()))
		return fmt.Errorf("%w: not authorized to delete this service", ErrForbidden)
	}

	if err := s.serviceStore.Delete(ctx, id); err != nil {
		log.Error("failed to delete service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return fmt.Errorf("failed to delete service: %w", err)
	}

	log.Info("service deleted",
		slog.String("service_id", id.String()),
		slog.String("provider_id", principal.ID.String()))
	return nil
}
