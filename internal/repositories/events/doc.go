// Package events provides the persistence layer for calendar events and
// their locations.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// models.Event. GormRepository implements it over a *gorm.DB, which is either
// the root handle or a transaction opened by dbx.WithSession; services create
// one repository per session.
//
// # Locations
//
// Locations are written only as a side effect of event writes: Create and
// Update insert a location that has no identifier yet and reference one that
// has. Deleting an event never deletes its location, because shallow
// duplicates may still point at it.
//
// Typical Usage
//
//	repo := events.NewRepository(tx)
//	_ = repo.Create(ctx, ev)
//	list, _ := repo.List(ctx)
//	one, _ := repo.GetByID(ctx, id)
//	_ = repo.DeleteByID(ctx, id)
package events
