package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/service/auth"
	"github.com/serviceo/serviceo-api/internal/store"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.UserRole
	Location domain.Location
}

// AuthResult is the outcome of a successful register or login: the user
// plus a token pair.
type AuthResult struct {
	User         *domain.User
	Token        string
	RefreshToken string
}

// UserService owns account registration, credential login, and principal
// resolution.
type UserService interface {
	// Register creates a new account and returns it with a fresh token
	// pair. Fails with ErrInvalidInput on a malformed account and
	// store.ErrEmailExists on a taken email.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Login authenticates an email/password pair. Both an unknown email
	// and a wrong password yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetCurrentUser resolves the calling principal to its full user
	// record.
	GetCurrentUser(ctx context.Context, principal *domain.Principal) (*domain.User, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// Verify interface compliance at compile time
var _ UserService = (*userService)(nil)

type userService struct {
	userStore        store.UserStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewUserService creates a new UserService over the given store and auth
// collaborators.
func NewUserService(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if tokenService == nil {
		panic("tokenService cannot be nil")
	}
	if passwordVerifier == nil {
		panic("passwordVerifier cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userService{
		userStore:        userStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(
		input.Email,
		input.Password,
		input.Name,
		input.Phone,
		input.Role,
		input.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	// The store hashes the transient password and clears it; the returned
	// user never carries plaintext.
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, err
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", input.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		log.Error("failed to issue tokens after registration",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return result, nil
}

// Login implements UserService.Login.
func (s *userService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Indistinguishable from a wrong password to the caller.
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to load user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if err := s.passwordVerifier.Compare(ctx, user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn("login failed, password mismatch",
				slog.String("user_id", user.ID.String()))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		log.Error("failed to issue tokens for login",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}

// GetCurrentUser implements UserService.GetCurrentUser.
func (s *userService) GetCurrentUser(
	ctx context.Context,
	principal *domain.Principal,
) (*domain.User, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	return s.userStore.GetByID(ctx, principal.ID)
}

// RefreshTokens implements UserService.RefreshTokens.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.tokenService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthenticated, err.Error())
	}

	// Re-resolve the user so a deleted account cannot keep refreshing.
	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		log.Error("failed to load user for refresh", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to refresh tokens: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		log.Error("failed to issue refreshed tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	return result, nil
}

func (s *userService) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, err := s.tokenService.GenerateToken(ctx, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refreshToken, err := s.tokenService.GenerateRefreshToken(ctx, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
