package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// ServiceStore implements the store.ServiceStore interface using a
// PostgreSQL database as the storage backend. Availability and location
// are persisted as JSONB.
type ServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewServiceStore creates a new PostgreSQL implementation of the
// ServiceStore interface. If logger is nil, a default logger will be used.
func NewServiceStore(db store.DBTX, logger *slog.Logger) *ServiceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ServiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "service_store")),
	}
}

// Ensure ServiceStore implements store.ServiceStore interface
var _ store.ServiceStore = (*ServiceStore)(nil)

// Create implements store.ServiceStore.Create
// Returns store.ErrInvalidEntity if the provider does not exist.
func (s *ServiceStore) Create(ctx context.Context, service *domain.Service) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := service.Validate(); err != nil {
		log.Warn("service validation failed during create",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return err
	}

	availabilityJSON, locationJSON, err := marshalServiceJSON(service)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (id, provider_id, category, description, pricing, availability, location, average_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		service.ID,
		service.ProviderID,
		service.Category,
		service.Description,
		service.Pricing,
		availabilityJSON,
		locationJSON,
		service.AverageRating,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during service creation",
				slog.String("service_id", service.ID.String()),
				slog.String("provider_id", service.ProviderID.String()))
			return fmt.Errorf("%w: provider with ID %s not found",
				store.ErrInvalidEntity, service.ProviderID)
		}

		log.Error("failed to create service",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return err
	}

	log.Info("service created successfully",
		slog.String("service_id", service.ID.String()),
		slog.String("provider_id", service.ProviderID.String()),
		slog.String("category", service.Category))
	return nil
}

// GetByID implements store.ServiceStore.GetByID
// Returns store.ErrServiceNotFound if the service does not exist.
func (s *ServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectServiceColumns + ` WHERE id = $1`

	row := s.db.QueryRowContext(ctx, query, id)
	service, err := scanService(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("service not found", slog.String("service_id", id.String()))
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to get service by ID",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, err
	}

	return service, nil
}

// Find implements store.ServiceStore.Find
// The city filter matches as a case-insensitive substring of the stored
// city. Returns an empty slice when nothing matches.
func (s *ServiceStore) Find(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectServiceColumns + ` WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += fmt.Sprintf(" AND location->>'city' ILIKE $%d", len(args))
	}
	query += " ORDER BY category, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query services",
			slog.String("error", err.Error()))
		return nil, err
	}

	return collectServices(rows, log)
}

// FindByProvider implements store.ServiceStore.FindByProvider
// Returns an empty slice when the provider owns no services.
func (s *ServiceStore) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectServiceColumns + ` WHERE provider_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, providerID)
	if err != nil {
		log.Error("failed to query services by provider",
			slog.String("error", err.Error()),
			slog.String("provider_id", providerID.String()))
		return nil, err
	}

	return collectServices(rows, log)
}

// Update implements store.ServiceStore.Update
// Returns store.ErrServiceNotFound if the service does not exist.
func (s *ServiceStore) Update(ctx context.Context, service *domain.Service) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := service.Validate(); err != nil {
		log.Warn("service validation failed during update",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return err
	}

	availabilityJSON, locationJSON, err := marshalServiceJSON(service)
	if err != nil {
		return err
	}

	query := `
		UPDATE services
		SET category = $1, description = $2, pricing = $3, availability = $4, location = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		service.Category,
		service.Description,
		service.Pricing,
		availabilityJSON,
		locationJSON,
		service.ID,
	)

	if err != nil {
		log.Error("failed to update service",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		log.Debug("service not found for update",
			slog.String("service_id", service.ID.String()))
		return store.ErrServiceNotFound
	}

	log.Info("service updated successfully",
		slog.String("service_id", service.ID.String()))
	return nil
}

// UpdateAverageRating implements store.ServiceStore.UpdateAverageRating
// Returns store.ErrServiceNotFound if the service does not exist.
func (s *ServiceStore) UpdateAverageRating(ctx context.Context, id uuid.UUID, rating float64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE services SET average_rating = $1 WHERE id = $2`,
		rating,
		id,
	)
	if err != nil {
		log.Error("failed to update average rating",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrServiceNotFound
	}

	log.Info("average rating updated",
		slog.String("service_id", id.String()),
		slog.Float64("average_rating", rating))
	return nil
}

// Delete implements store.ServiceStore.Delete
// Returns store.ErrServiceNotFound if the service does not exist.
func (s *ServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrServiceNotFound
	}

	log.Info("service deleted successfully", slog.String("service_id", id.String()))
	return nil
}

// WithTx implements store.ServiceStore.WithTx
func (s *ServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	return &ServiceStore{
		db:     tx,
		logger: s.logger,
	}
}

const selectServiceColumns = `
	SELECT id, provider_id, category, description, pricing, availability, location, average_rating
	FROM services`

func marshalServiceJSON(service *domain.Service) (availability, location []byte, err error) {
	// Persist an empty array rather than SQL NULL for services without
	// availability windows.
	slots := service.Availability
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	availability, err = json.Marshal(slots)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal availability: %w", err)
	}

	location, err = json.Marshal(service.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal location: %w", err)
	}

	return availability, location, nil
}

// scanService reads one service row through the given scan function,
// decoding the JSONB columns.
func scanService(scan func(dest ...any) error) (*domain.Service, error) {
	var service domain.Service
	var availabilityJSON, locationJSON []byte

	err := scan(
		&service.ID,
		&service.ProviderID,
		&service.Category,
		&service.Description,
		&service.Pricing,
		&availabilityJSON,
		&locationJSON,
		&service.AverageRating,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(availabilityJSON, &service.Availability); err != nil {
		return nil, fmt.Errorf("failed to unmarshal availability: %w", err)
	}
	if err := json.Unmarshal(locationJSON, &service.Location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location: %w", err)
	}

	return &service, nil
}

// collectServices drains rows into a slice, returning an empty slice
// rather than nil when there are no rows.
func collectServices(rows *sql.Rows, log *slog.Logger) ([]*domain.Service, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	services := []*domain.Service{}
	for rows.Next() {
		service, err := scanService(rows.Scan)
		if err != nil {
			log.Error("failed to scan service row",
				slog.String("error", err.Error()))
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return services, nil
}
