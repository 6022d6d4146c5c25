// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a product or service does not exist.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter narrows item listings. Zero values disable each condition.
type ItemFilter struct {
	Keyword     string // case-insensitive match on name or description
	Category    string
	WithCatalog bool
	Limit       int
}

// ItemRepository persists products and services, which share one record shape.
type ItemRepository interface {
	// FindByID retrieves a single item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// List returns items matching the filter, oldest first.
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)

	// Categories returns the distinct non-empty categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, item *entity.Item) error

	// Update saves every field of the item, including its embedded assets.
	Update(ctx context.Context, item *entity.Item) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository is the ItemRepository bound to the products table.
type ProductRepository interface {
	ItemRepository
}

// ServiceRepository is the ItemRepository bound to the services table.
type ServiceRepository interface {
	ItemRepository
}
