package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category length bounds, counted in characters.
const (
	CategoryNameMinLength        = 3
	CategoryNameMaxLength        = 255
	CategoryDescriptionMaxLength = 10000
)

// Category is the aggregate classifying catalog content.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategory creates a category with a fresh ID and creation time.
func NewCategory(name, description string, isActive bool) (*Category, error) {
	c := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory rebuilds a category from persisted state.
func RestoreCategory(id uuid.UUID, name, description string, isActive bool, createdAt time.Time) (*Category, error) {
	c := &Category{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   createdAt,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Activate marks the category as active.
func (c *Category) Activate() error {
	c.IsActive = true
	return c.Validate()
}

// Deactivate marks the category as inactive.
func (c *Category) Deactivate() error {
	c.IsActive = false
	return c.Validate()
}

// Update replaces the name, and the description when one is given.
// The category is left untouched when the new values are invalid.
func (c *Category) Update(name string, description *string) error {
	desc := c.Description
	if description != nil {
		desc = *description
	}
	if err := validateCategory(name, desc); err != nil {
		return err
	}
	c.Name = name
	c.Description = desc
	return nil
}

// Validate checks the category invariants.
func (c *Category) Validate() error {
	return validateCategory(c.Name, c.Description)
}

func validateCategory(name, description string) error {
	if err := NotNullOrEmpty(name, "Name"); err != nil {
		return err
	}
	if err := MinLength(name, CategoryNameMinLength, "Name"); err != nil {
		return err
	}
	if err := MaxLength(name, CategoryNameMaxLength, "Name"); err != nil {
		return err
	}
	return MaxLength(description, CategoryDescriptionMaxLength, "Description")
}
