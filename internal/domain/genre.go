package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Genre groups catalog content and references any number of categories.
// Category references are kept in insertion order and may repeat.
type Genre struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	categories []uuid.UUID
}

// NewGenre creates a genre with a fresh ID and no categories.
func NewGenre(name string, isActive bool) (*Genre, error) {
	g := &Genre{
		ID:         uuid.New(),
		Name:       name,
		IsActive:   isActive,
		CreatedAt:  time.Now().UTC(),
		categories: []uuid.UUID{},
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// RestoreGenre rebuilds a genre from persisted state.
func RestoreGenre(id uuid.UUID, name string, isActive bool, createdAt time.Time, categoryIDs []uuid.UUID) (*Genre, error) {
	g := &Genre{
		ID:         id,
		Name:       name,
		IsActive:   isActive,
		CreatedAt:  createdAt,
		categories: slices.Clone(categoryIDs),
	}
	if g.categories == nil {
		g.categories = []uuid.UUID{}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Categories returns a copy of the associated category IDs.
func (g *Genre) Categories() []uuid.UUID {
	return slices.Clone(g.categories)
}

// Activate marks the genre as active.
func (g *Genre) Activate() error {
	g.IsActive = true
	return g.Validate()
}

// Deactivate marks the genre as inactive.
func (g *Genre) Deactivate() error {
	g.IsActive = false
	return g.Validate()
}

// Update renames the genre. The name is kept when the new one is invalid.
func (g *Genre) Update(name string) error {
	if err := validateGenre(name); err != nil {
		return err
	}
	g.Name = name
	return nil
}

// AddCategory appends a category reference.
func (g *Genre) AddCategory(categoryID uuid.UUID) error {
	g.categories = append(g.categories, categoryID)
	return g.Validate()
}

// RemoveCategory drops the first reference to categoryID, if any.
func (g *Genre) RemoveCategory(categoryID uuid.UUID) error {
	if i := slices.Index(g.categories, categoryID); i >= 0 {
		g.categories = slices.Delete(g.categories, i, i+1)
	}
	return g.Validate()
}

// RemoveAllCategories clears every category reference.
func (g *Genre) RemoveAllCategories() error {
	g.categories = []uuid.UUID{}
	return g.Validate()
}

// Validate checks the genre invariants.
func (g *Genre) Validate() error {
	return validateGenre(g.Name)
}

func validateGenre(name string) error {
	return NotNullOrEmpty(name, "Name")
}
