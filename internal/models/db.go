// Package models defines the calendar records persisted by the store and the
// copy rules used when an event is duplicated.
package models

import "time"

// Location is a named venue an Event can point to.
type Location struct {
	// ID is assigned by the store; zero means the row does not exist yet.
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"not null"`
}

// Event is a single calendar entry.
type Event struct {
	// ID is assigned by the store; zero means the row does not exist yet.
	ID uint `gorm:"primaryKey"`

	// Date is a calendar day stored as UTC midnight.
	Date time.Time `gorm:"type:date;not null"`

	Description string `gorm:"not null"`

	// LocationID is the nullable foreign key backing Location.
	LocationID *uint
	Location   *Location `gorm:"foreignKey:LocationID"`
}

// IsPersisted reports whether the store has assigned an identifier.
func (e *Event) IsPersisted() bool {
	return e.ID != 0
}
