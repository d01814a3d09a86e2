package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Category-specific validation errors
var (
	// ErrCategoryIDEmpty is returned when a category ID is empty or nil.
	ErrCategoryIDEmpty = errors.New("category ID cannot be empty")

	// ErrCategoryNameEmpty is returned when a category's name is empty.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryDescriptionEmpty is returned when a category's description is empty.
	ErrCategoryDescriptionEmpty = errors.New("category description cannot be empty")

	// ErrCategoryIconEmpty is returned when a category's icon is empty.
	ErrCategoryIconEmpty = errors.New("category icon cannot be empty")
)

// Category is reference data grouping services. Names are unique.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// NewCategory creates a new Category with a generated ID.
// Returns an error if validation fails.
func NewCategory(name, description, icon string) (*Category, error) {
	category := &Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Icon:        icon,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCategoryIDEmpty
	}

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Description == "" {
		return ErrCategoryDescriptionEmpty
	}

	if c.Icon == "" {
		return ErrCategoryIconEmpty
	}

	return nil
}
