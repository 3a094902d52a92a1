package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcal/internal/common"
	"github.com/dmitrijs2005/gophcal/internal/models"
	"github.com/dmitrijs2005/gophcal/internal/services"
)

func (a *App) ViewCalendar(ctx context.Context) error {
	list, err := a.events.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nEvents in Calendar:")
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No events.")
	}
	for i := range list {
		fmt.Fprintln(a.out, list[i].Format(a.config.DateLayout))
	}
	return nil
}

func (a *App) AddEvent(ctx context.Context) error {
	s, err := GetSimpleText(a.reader, "Enter the date (dd/MM/yyyy): ", a.out)
	if err != nil {
		return err
	}
	date, err := models.ParseDate(s)
	if err != nil {
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter the event description: ", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Enter the location name: ", a.out)
	if err != nil {
		return err
	}

	e, err := a.events.Add(ctx, date, description, location)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "event added", "id", e.ID)
	fmt.Fprintln(a.out, "Event added successfully!")
	return nil
}

// EditEvent reads the event, collects the changes and saves them. A blank
// answer keeps the current value. The read and the write run in separate
// sessions so nothing is held open while waiting for input.
func (a *App) EditEvent(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter Event ID to edit: ", a.out)
	if err != nil {
		return err
	}

	e, err := a.events.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Current:", e.Format(a.config.DateLayout))

	var patch services.EventPatch

	s, err := GetSimpleText(a.reader, "Enter new date (dd/MM/yyyy): ", a.out)
	if err != nil {
		return err
	}
	if s != "" {
		date, err := models.ParseDate(s)
		if err != nil {
			return err
		}
		patch.Date = &date
	}

	s, err = GetSimpleText(a.reader, "Enter new description: ", a.out)
	if err != nil {
		return err
	}
	if s != "" {
		patch.Description = &s
	}

	loc, err := GetSimpleText(a.reader, "Enter new location name: ", a.out)
	if err != nil {
		return err
	}
	if loc != "" {
		patch.LocationName = &loc
		if err := a.warnShared(ctx, e, loc); err != nil {
			return err
		}
	}

	if _, err := a.events.Edit(ctx, id, patch); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Event updated successfully!")
	return nil
}

// warnShared tells the user when renaming e's location also renames it for
// shallow duplicates.
func (a *App) warnShared(ctx context.Context, e *models.Event, newName string) error {
	if e.Location == nil || e.Location.Name == newName {
		return nil
	}
	n, err := a.events.SharedWith(ctx, e)
	if err != nil {
		return err
	}
	if n > 0 {
		fmt.Fprintf(a.out, "Location %q is shared with %d other event(s); they will see the new name too.\n", e.Location.Name, n)
	}
	return nil
}

func (a *App) DeleteEvent(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter Event ID to delete: ", a.out)
	if err != nil {
		return err
	}

	if err := a.events.Delete(ctx, id); err != nil {
		return err
	}

	a.log.Info(ctx, "event deleted", "id", id)
	fmt.Fprintln(a.out, "Event deleted successfully!")
	return nil
}

func (a *App) DuplicateEvent(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter Event ID to duplicate: ", a.out)
	if err != nil {
		return err
	}

	// fail fast before asking for the copy type
	if _, err := a.events.Get(ctx, id); err != nil {
		return err
	}

	s, err := GetSimpleText(a.reader, "Choose copy type (1. Shallow, 2. Deep): ", a.out)
	if err != nil {
		return err
	}
	mode, err := models.ParseCopyMode(s)
	if err != nil {
		return err
	}

	dup, err := a.events.Duplicate(ctx, id, mode)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "event duplicated", "id", id, "copy_id", dup.ID, "mode", mode)
	fmt.Fprintln(a.out, "Event duplicated successfully!")
	return nil
}

// report prints the user-facing message for err. Errors that are not caused
// by input or a missing event are logged as well.
func (a *App) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "Event not found.")
	case errors.Is(err, common.ErrInvalidDate):
		fmt.Fprintln(a.out, "Invalid date format.")
	case errors.Is(err, common.ErrInvalidID):
		fmt.Fprintln(a.out, "Invalid Event ID.")
	case errors.Is(err, common.ErrInvalidOption):
		fmt.Fprintln(a.out, "Invalid option, try again.")
	case errors.Is(err, common.ErrInvalidCopyMode):
		fmt.Fprintln(a.out, "Invalid copy type selected.")
	default:
		a.log.Error(ctx, "operation failed", "error", err)
		fmt.Fprintf(a.out, "Operation failed: %v\n", err)
	}
}
