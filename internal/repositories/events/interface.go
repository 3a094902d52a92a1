package events

import (
	"context"

	"github.com/dmitrijs2005/gophcal/internal/models"
)

// Repository describes the store operations on Event objects.
type Repository interface {
	// Create inserts a new event (and its location when that has no ID yet).
	Create(ctx context.Context, e *models.Event) error

	// GetByID returns an event with its location loaded.
	GetByID(ctx context.Context, id uint) (*models.Event, error)

	// List returns all events ordered by date ascending.
	List(ctx context.Context) ([]models.Event, error)

	// Update writes the event's fields and its location's name.
	Update(ctx context.Context, e *models.Event) error

	// DeleteByID removes the event row; its location is kept.
	DeleteByID(ctx context.Context, id uint) error

	// CountByLocation returns how many events reference the location.
	CountByLocation(ctx context.Context, locationID uint) (int64, error)
}
