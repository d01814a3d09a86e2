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
	"golang.org/x/crypto/bcrypt"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend. Password hashing happens here, so a
// plaintext password never crosses the store boundary outward.
type UserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. bcryptCost <= 0 falls back to the bcrypt default cost.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
// It validates the user, hashes the plaintext password, and saves the row.
// Returns store.ErrEmailExists if the email is already taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hash)
		user.Password = ""
	}

	locationJSON, err := json.Marshal(user.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	query := `
		INSERT INTO users (id, email, hashed_password, name, phone, role, location, profile_image, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.Name,
		user.Phone,
		user.Role,
		locationJSON,
		user.ProfileImage,
		user.IsVerified,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, name, phone, role, location, profile_image, is_verified, created_at
		FROM users
		WHERE id = $1
	`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, name, phone, role, location, profile_image, is_verified, created_at
		FROM users
		WHERE email = $1
	`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

// Update implements store.UserStore.Update
// If a new plaintext Password is set it is hashed first.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hash)
		user.Password = ""
	}

	locationJSON, err := json.Marshal(user.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	query := `
		UPDATE users
		SET email = $1, hashed_password = $2, name = $3, phone = $4, location = $5, profile_image = $6, is_verified = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.Email,
		user.HashedPassword,
		user.Name,
		user.Phone,
		locationJSON,
		user.ProfileImage,
		user.IsVerified,
		user.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		log.Debug("user not found for update",
			slog.String("user_id", user.ID.String()))
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully", slog.String("user_id", id.String()))
	return nil
}

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
		logger:     s.logger,
	}
}

// scanUser reads one user row.
func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var role string
	var locationJSON []byte

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.Name,
		&user.Phone,
		&role,
		&locationJSON,
		&user.ProfileImage,
		&user.IsVerified,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.UserRole(role)
	if err := json.Unmarshal(locationJSON, &user.Location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location: %w", err)
	}

	return &user, nil
}
