// Package export renders the calendar as an iCalendar (RFC 5545) document.
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/gophcal/internal/common"
	"github.com/dmitrijs2005/gophcal/internal/models"
)

// UID returns the stable iCalendar UID of an event.
func UID(e *models.Event) string {
	return fmt.Sprintf("event-%d@%s", e.ID, common.AppName)
}

// WriteICS writes one all-day VEVENT per event. stamp is used as DTSTAMP.
func WriteICS(w io.Writer, list []models.Event, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(common.ICSProductID)

	for i := range list {
		e := &list[i]
		ve := cal.AddEvent(UID(e))
		ve.SetDtStampTime(stamp)
		ve.SetAllDayStartAt(e.Date)
		ve.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		ve.SetSummary(e.Description)
		if e.Location != nil {
			ve.SetLocation(e.Location.Name)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
