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

// CategoryInput carries the fields of a category for create and update.
type CategoryInput struct {
	Name        string
	Description string
	Icon        string
}

// CategoryService owns the category reference data. Mutations require any
// authenticated principal; there is no role restriction, which is
// deliberately looser than the service and booking gates.
type CategoryService interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// GetCategory returns the category with the given ID or
	// store.ErrCategoryNotFound.
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// CreateCategory creates a new category. Requires authentication.
	CreateCategory(ctx context.Context, principal *domain.Principal, input CategoryInput) (*domain.Category, error)

	// UpdateCategory replaces the category's fields. Requires authentication.
	UpdateCategory(ctx context.Context, principal *domain.Principal, id uuid.UUID, input CategoryInput) (*domain.Category, error)

	// DeleteCategory removes a category. Requires authentication.
	DeleteCategory(ctx context.Context, principal *domain.Principal, id uuid.UUID) error
}

// Verify interface compliance at compile time
var _ CategoryService = (*categoryService)(nil)

type categoryService struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService over the given store.
func NewCategoryService(categoryStore store.CategoryStore, logger *slog.Logger) CategoryService {
	if categoryStore == nil {
		panic("categoryStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &categoryService{
		categoryStore: categoryStore,
		logger:        logger.With(slog.String("component", "category_service")),
	}
}

// ListCategories implements CategoryService.ListCategories.
func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	categories, err := s.categoryStore.FindAll(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetCategory implements CategoryService.GetCategory.
func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categoryStore.GetByID(ctx, id)
}

// CreateCategory implements CategoryService.CreateCategory.
func (s *categoryService) CreateCategory(
	ctx context.Context,
	principal *domain.Principal,
	input CategoryInput,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	category, err := domain.NewCategory(input.Name, input.Description, input.Icon)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("name", input.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return category, nil
}

// UpdateCategory implements CategoryService.UpdateCategory.
func (s *categoryService) UpdateCategory(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
	input CategoryInput,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Icon = input.Icon

	if err := s.categoryStore.Update(ctx, category); err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	log.Info("category updated", slog.String("category_id", id.String()))
	return category, nil
}

// DeleteCategory implements CategoryService.DeleteCategory.
func (s *categoryService) DeleteCategory(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return ErrUnauthenticated
	}

	if err := s.categoryStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	log.Info("category deleted", slog.String("category_id", id.String()))
	return nil
}
