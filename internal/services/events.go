// Package services implements the calendar operations on top of the store.
// Every method runs in exactly one store session: it opens a transaction,
// does its reads and writes, and commits or discards before returning.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmitrijs2005/gophcal/internal/common"
	"github.com/dmitrijs2005/gophcal/internal/dbx"
	"github.com/dmitrijs2005/gophcal/internal/export"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/models"
	"github.com/dmitrijs2005/gophcal/internal/repositories/events"
)

type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id uint) (*models.Event, error)
	Add(ctx context.Context, date time.Time, description, locationName string) (*models.Event, error)
	Edit(ctx context.Context, id uint, patch EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
	Duplicate(ctx context.Context, id uint, mode models.CopyMode) (*models.Event, error)
	SharedWith(ctx context.Context, e *models.Event) (int64, error)
	ExportICS(ctx context.Context, w io.Writer) (int, error)
}

// EventPatch holds the edits collected from the user. Nil fields are left
// unchanged.
type EventPatch struct {
	Date         *time.Time
	Description  *string
	LocationName *string
}

// RepositoryFactory binds a repository to a session handle.
type RepositoryFactory func(db *gorm.DB) events.Repository

type eventService struct {
	db      *gorm.DB
	newRepo RepositoryFactory
	log     logging.Logger
}

func NewEventService(db *gorm.DB, log logging.Logger) EventService {
	return &eventService{
		db:      db,
		newRepo: func(db *gorm.DB) events.Repository { return events.NewRepository(db) },
		log:     log,
	}
}

// inSession runs fn in its own store session and logs its outcome.
func (s *eventService) inSession(ctx context.Context, op string, fn func(ctx context.Context, repo events.Repository) error) error {
	log := s.log.With("op", op, "session_id", uuid.NewString())
	start := time.Now()

	err := dbx.WithSession(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		return fn(ctx, s.newRepo(tx))
	})

	switch {
	case err == nil:
		log.Debug(ctx, "session committed", "elapsed", time.Since(start))
	case errors.Is(err, common.ErrorNotFound):
		log.Debug(ctx, "session discarded", "error", err)
	default:
		log.Error(ctx, "session failed", "error", err)
	}
	return err
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	var result []models.Event
	err := s.inSession(ctx, "list", func(ctx context.Context, repo events.Repository) error {
		var err error
		result, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return result, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	var result *models.Event
	err := s.inSession(ctx, "get", func(ctx context.Context, repo events.Repository) error {
		var err error
		result, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return result, nil
}

// Add stores a new event. An empty location name stores no location.
func (s *eventService) Add(ctx context.Context, date time.Time, description, locationName string) (*models.Event, error) {
	e := &models.Event{Date: models.Day(date), Description: strings.TrimSpace(description)}
	if name := strings.TrimSpace(locationName); name != "" {
		e.Location = &models.Location{Name: name}
	}

	err := s.inSession(ctx, "add", func(ctx context.Context, repo events.Repository) error {
		return repo.Create(ctx, e)
	})
	if err != nil {
		return nil, fmt.Errorf("error adding event: %w", err)
	}
	return e, nil
}

// Edit applies patch to the event. A new location name renames the event's
// location row in place, which also renames it for shallow duplicates that
// share the row; an event without a location gets a new one.
func (s *eventService) Edit(ctx context.Context, id uint, patch EventPatch) (*models.Event, error) {
	var result *models.Event
	err := s.inSession(ctx, "edit", func(ctx context.Context, repo events.Repository) error {
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Date != nil {
			e.Date = models.Day(*patch.Date)
		}
		if patch.Description != nil {
			e.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.LocationName != nil {
			name := strings.TrimSpace(*patch.LocationName)
			switch {
			case name == "":
			case e.Location != nil:
				e.Location.Name = name
			default:
				e.Location = &models.Location{Name: name}
			}
		}

		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		result = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return result, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	err := s.inSession(ctx, "delete", func(ctx context.Context, repo events.Repository) error {
		return repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	return nil
}

// Duplicate stores a copy of the event. CopyShared makes the copy point at
// the source's location row; CopyCloned gives it its own row.
func (s *eventService) Duplicate(ctx context.Context, id uint, mode models.CopyMode) (*models.Event, error) {
	var result *models.Event
	err := s.inSession(ctx, "duplicate", func(ctx context.Context, repo events.Repository) error {
		src, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		dup, err := models.Duplicate(src, mode)
		if err != nil {
			return err
		}

		if err := repo.Create(ctx, dup); err != nil {
			return err
		}
		result = dup
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error duplicating event: %w", err)
	}
	return result, nil
}

// SharedWith returns how many other events point at e's location.
func (s *eventService) SharedWith(ctx context.Context, e *models.Event) (int64, error) {
	if e.Location == nil || e.Location.ID == 0 {
		return 0, nil
	}

	var n int64
	err := s.inSession(ctx, "shared_with", func(ctx context.Context, repo events.Repository) error {
		var err error
		n, err = repo.CountByLocation(ctx, e.Location.ID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error counting location users: %w", err)
	}
	if n > 0 {
		n--
	}
	return n, nil
}

// ExportICS writes the whole calendar to w and returns the number of events.
func (s *eventService) ExportICS(ctx context.Context, w io.Writer) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := export.WriteICS(w, list, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("error exporting calendar: %w", err)
	}
	return len(list), nil
}
