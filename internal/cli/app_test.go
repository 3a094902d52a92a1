package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophcal/internal/config"
	"github.com/dmitrijs2005/gophcal/internal/database"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/services"
)

func newEventService(t *testing.T) services.EventService {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "cli.db") + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	db, err := database.Open(context.Background(), database.Config{Driver: database.DriverSQLite, DSN: dsn}, logging.Discard(), "warn")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return services.NewEventService(db, logging.Discard())
}

// runScript feeds script to a fresh shell backed by svc and returns its output.
func runScript(t *testing.T, svc services.EventService, script ...string) string {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	app := NewApp(cfg, svc, logging.Discard(), strings.NewReader(strings.Join(script, "")), &out)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

const (
	addLaunch = "2\n01/05/2024\nLaunch\nHQ\n\n"
	view      = "1\n\n"
	exit      = "6\n"
)

func TestApp_AddAndView(t *testing.T) {
	out := runScript(t, newEventService(t), addLaunch, view, exit)

	assert.Contains(t, out, "Calendar App\n1. View Calendar\n")
	assert.Contains(t, out, "Event added successfully!")
	assert.Contains(t, out, "Events in Calendar:\n1: 2024-05-01 - Launch at HQ\n")
	assert.Contains(t, out, "Press any key to continue...")
}

func TestApp_ViewEmpty(t *testing.T) {
	out := runScript(t, newEventService(t), view, exit)
	assert.Contains(t, out, "No events.")
}

func TestApp_AddWithoutLocation(t *testing.T) {
	out := runScript(t, newEventService(t), "2\n2024-06-10\nStandup\n\n\n", view, exit)
	assert.Contains(t, out, "1: 2024-06-10 - Standup\n")
}

func TestApp_DeepDuplicate(t *testing.T) {
	out := runScript(t, newEventService(t), addLaunch, "5\n1\n2\n\n", view, exit)

	assert.Contains(t, out, "Event duplicated successfully!")
	assert.Contains(t, out, "1: 2024-05-01 - Launch at HQ\n2: 2024-05-01 - Launch at HQ\n")
}

func TestApp_ShallowDuplicateThenRename(t *testing.T) {
	out := runScript(t, newEventService(t),
		addLaunch,
		"5\n1\n1\n\n",
		"3\n2\n\n\nAnnex\n\n",
		view, exit)

	assert.Contains(t, out, `Location "HQ" is shared with 1 other event(s)`)
	assert.Contains(t, out, "Event updated successfully!")
	assert.Contains(t, out, "1: 2024-05-01 - Launch at Annex\n2: 2024-05-01 - Launch at Annex\n")
}

func TestApp_EditKeepsBlankFields(t *testing.T) {
	out := runScript(t, newEventService(t),
		addLaunch,
		"3\n1\n02/06/2024\n\n\n\n",
		view, exit)

	assert.Contains(t, out, "Current: 1: 2024-05-01 - Launch at HQ")
	assert.Contains(t, out, "1: 2024-06-02 - Launch at HQ\n")
}

func TestApp_Delete(t *testing.T) {
	out := runScript(t, newEventService(t), addLaunch, "4\n1\n\n", view, exit)

	assert.Contains(t, out, "Event deleted successfully!")
	assert.Contains(t, out, "No events.")
}

func TestApp_ErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		want   string
	}{
		{"bad add date", []string{"2\n31/02/2024\n\n"}, "Invalid date format."},
		{"bad edit id", []string{"3\nabc\n\n"}, "Invalid Event ID."},
		{"missing edit", []string{"3\n9\n\n"}, "Event not found."},
		{"bad edit date", []string{addLaunch, "3\n1\nsoon\n\n"}, "Invalid date format."},
		{"missing delete", []string{"4\n42\n\n"}, "Event not found."},
		{"bad delete id", []string{"4\n-1\n\n"}, "Invalid Event ID."},
		{"missing duplicate", []string{"5\n7\n\n"}, "Event not found."},
		{"bad copy type", []string{addLaunch, "5\n1\n3\n\n"}, "Invalid copy type selected."},
		{"bad option", []string{"9\n\n"}, "Invalid option, try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := append(tt.script, exit)
			out := runScript(t, newEventService(t), script...)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Operation failed")
		})
	}
}

func TestApp_BadCopyTypeStoresNothing(t *testing.T) {
	svc := newEventService(t)
	runScript(t, svc, addLaunch, "5\n1\n3\n\n", exit)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestApp_Export(t *testing.T) {
	svc := newEventService(t)
	runScript(t, svc, addLaunch, exit)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	var out bytes.Buffer
	app := NewApp(cfg, svc, logging.Discard(), strings.NewReader(""), &out)

	path := filepath.Join(t.TempDir(), "cal.ics")
	require.NoError(t, app.Export(context.Background(), path))
	assert.Contains(t, out.String(), "Exported 1 event(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Launch")

	nested := filepath.Join(t.TempDir(), "exports", "cal.ics")
	require.NoError(t, app.Export(context.Background(), nested))
	assert.FileExists(t, nested)

	// a directory cannot be written as a file
	require.Error(t, app.Export(context.Background(), t.TempDir()))
}
