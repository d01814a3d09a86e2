package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/store"
)

func newTestCategoryService(t *testing.T) (CategoryService, *MockCategoryStore) {
	t.Helper()
	categoryStore := new(MockCategoryStore)
	return NewCategoryService(categoryStore, nil), categoryStore
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	input := CategoryInput{Name: "Plumbing", Description: "Water and pipes", Icon: "wrench"}

	t.Run("any authenticated principal may create", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		categoryStore.On("Create", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

		category, err := svc.CreateCategory(ctx, customerPrincipal(), input)
		require.NoError(t, err)
		assert.Equal(t, "Plumbing", category.Name)
		categoryStore.AssertExpectations(t)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		_, err := svc.CreateCategory(ctx, nil, input)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		categoryStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates duplicate name", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		categoryStore.On("Create", ctx, mock.AnythingOfType("*domain.Category")).
			Return(store.ErrCategoryNameExists)

		_, err := svc.CreateCategory(ctx, customerPrincipal(), input)
		assert.ErrorIs(t, err, store.ErrCategoryNameExists)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("replaces all fields", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		existing := &domain.Category{ID: uuid.New(), Name: "Plumbing", Icon: "wrench"}
		categoryStore.On("GetByID", ctx, existing.ID).Return(existing, nil)
		categoryStore.On("Update", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

		updated, err := svc.UpdateCategory(ctx, customerPrincipal(), existing.ID,
			CategoryInput{Name: "Electrics", Description: "Wiring", Icon: "bolt"})
		require.NoError(t, err)
		assert.Equal(t, "Electrics", updated.Name)
		assert.Equal(t, "bolt", updated.Icon)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestCategoryService(t)

		_, err := svc.UpdateCategory(ctx, nil, uuid.New(), CategoryInput{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		id := uuid.New()
		categoryStore.On("Delete", ctx, id).Return(nil)

		require.NoError(t, svc.DeleteCategory(ctx, customerPrincipal(), id))
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		svc, categoryStore := newTestCategoryService(t)

		id := uuid.New()
		categoryStore.On("Delete", ctx, id).Return(store.ErrCategoryNotFound)

		err := svc.DeleteCategory(ctx, customerPrincipal(), id)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})
}

func TestListCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, categoryStore := newTestCategoryService(t)

	expected := []*domain.Category{{ID: uuid.New(), Name: "Plumbing"}}
	categoryStore.On("FindAll", ctx).Return(expected, nil)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}
