package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophcal/internal/common"
)

// CopyMode selects how Duplicate treats the source event's Location.
type CopyMode string

const (
	// CopyShared keeps one Location row for both events (shallow copy).
	// Renaming the location later renames it for every event that shares it.
	CopyShared CopyMode = "shallow"

	// CopyCloned gives the duplicate its own Location row (deep copy).
	CopyCloned CopyMode = "deep"
)

// DefaultDateLayout is used by Event.String.
const DefaultDateLayout = "2006-01-02"

// ParseCopyMode accepts the menu answers "1"/"2" as well as the mode names.
func ParseCopyMode(s string) (CopyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(CopyShared):
		return CopyShared, nil
	case "2", string(CopyCloned):
		return CopyCloned, nil
	default:
		return "", fmt.Errorf("%q: %w", s, common.ErrInvalidCopyMode)
	}
}

// ShallowCopy duplicates src field by field. The returned event points to
// the very same *Location (and LocationID) as src; only its ID is reset so
// the store inserts it as a new row.
func ShallowCopy(src *Event) *Event {
	dup := *src
	dup.ID = 0
	return &dup
}

// DeepCopy duplicates src together with its Location. Both the event and the
// location identifiers are reset, so persisting the result inserts two new
// rows and leaves the source untouched.
func DeepCopy(src *Event) *Event {
	dup := *src
	dup.ID = 0
	dup.LocationID = nil
	if src.Location != nil {
		loc := *src.Location
		loc.ID = 0
		dup.Location = &loc
	}
	return &dup
}

// Duplicate applies the copy rule selected by mode.
func Duplicate(src *Event, mode CopyMode) (*Event, error) {
	switch mode {
	case CopyShared:
		return ShallowCopy(src), nil
	case CopyCloned:
		return DeepCopy(src), nil
	default:
		return nil, fmt.Errorf("%q: %w", mode, common.ErrInvalidCopyMode)
	}
}

// LocationName returns the linked location's name or "" when there is none.
func (e *Event) LocationName() string {
	if e.Location == nil {
		return ""
	}
	return e.Location.Name
}

// Format renders the calendar line "<id>: <date> - <description> at <location>".
// The " at ..." suffix is omitted for events without a location.
func (e *Event) Format(layout string) string {
	line := fmt.Sprintf("%d: %s - %s", e.ID, e.Date.Format(layout), e.Description)
	if e.Location != nil {
		line += " at " + e.Location.Name
	}
	return line
}

func (e *Event) String() string {
	return e.Format(DefaultDateLayout)
}
