package events

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dmitrijs2005/gophcal/internal/common"
	"github.com/dmitrijs2005/gophcal/internal/models"
)

// GormRepository implements Repository using a *gorm.DB (root handle or transaction).
type GormRepository struct {
	db *gorm.DB
}

// NewRepository returns a new GormRepository bound to the given handle.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// mapError converts GORM errors to common sentinels.
func mapError(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, common.ErrorNotFound)
	}
	return fmt.Errorf("%s %d: %w", entity, id, err)
}

// saveLocation inserts e.Location when it is new and points LocationID at it.
func (r *GormRepository) saveLocation(db *gorm.DB, e *models.Event) error {
	if e.Location == nil {
		return nil
	}
	if e.Location.ID == 0 {
		if err := db.Create(e.Location).Error; err != nil {
			return fmt.Errorf("failed to insert location: %w", err)
		}
	}
	id := e.Location.ID
	e.LocationID = &id
	return nil
}

// Create inserts e. A location without an ID is inserted first; a location
// with an ID is only referenced, which is how shallow duplicates share a row.
func (r *GormRepository) Create(ctx context.Context, e *models.Event) error {
	if e.IsPersisted() {
		return fmt.Errorf("event %d: %w", e.ID, common.ErrAlreadyPersisted)
	}

	db := r.db.WithContext(ctx)
	if err := r.saveLocation(db, e); err != nil {
		return err
	}

	if err := db.Omit(clause.Associations).Create(e).Error; err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetByID returns the event with its location preloaded.
func (r *GormRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.WithContext(ctx).Preload("Location").First(&e, id).Error
	if err != nil {
		return nil, mapError(err, "event", id)
	}
	return &e, nil
}

// List returns every event ordered by date, then by id for stable output.
func (r *GormRepository) List(ctx context.Context) ([]models.Event, error) {
	var result []models.Event
	err := r.db.WithContext(ctx).
		Preload("Location").
		Order("date ASC").
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	return result, nil
}

// Update writes date, description and location of an existing event. The
// linked location is renamed in place, so every event sharing it sees the
// new name.
func (r *GormRepository) Update(ctx context.Context, e *models.Event) error {
	if !e.IsPersisted() {
		return fmt.Errorf("update event: %w", common.ErrorNotFound)
	}

	db := r.db.WithContext(ctx)
	if e.Location != nil && e.Location.ID != 0 {
		err := db.Model(&models.Location{}).
			Where("id = ?", e.Location.ID).
			Update("name", e.Location.Name).Error
		if err != nil {
			return mapError(err, "location", e.Location.ID)
		}
	}
	if err := r.saveLocation(db, e); err != nil {
		return err
	}

	err := db.Model(&models.Event{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"date":        e.Date,
			"description": e.Description,
			"location_id": e.LocationID,
		}).Error
	if err != nil {
		return mapError(err, "event", e.ID)
	}
	return nil
}

// DeleteByID removes the event row. It expects exactly one row to be affected.
func (r *GormRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if res.Error != nil {
		return mapError(res.Error, "event", id)
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	return nil
}

// CountByLocation returns the number of events referencing locationID.
func (r *GormRepository) CountByLocation(ctx context.Context, locationID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("location_id = ?", locationID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}
