package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophcal/internal/config"
	"github.com/dmitrijs2005/gophcal/internal/filex"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/services"
)

type App struct {
	config *config.Config
	events services.EventService
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// tty is set when input comes from a terminal; fd is its descriptor.
	tty bool
	fd  int
}

// NewApp wires the shell to its input and output. When in is a terminal the
// pause waits for a single key and the screen can be cleared; otherwise the
// shell works line by line, which is what scripted input and tests use.
func NewApp(c *config.Config, events services.EventService, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		events: events,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}

	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		a.tty = true
		a.fd = int(f.Fd())
	}

	return a
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.log.Debug(ctx, "shell started", "tty", a.tty)
	return runMenu(ctx, a, a.reader, a.out)
}

// Export writes the whole calendar to an .ics file at path, creating
// missing parent directories.
func (a *App) Export(ctx context.Context, path string) error {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	n, err := a.events.ExportICS(ctx, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("error closing %s: %w", path, cerr)
	}
	if err != nil {
		return err
	}

	a.log.Info(ctx, "calendar exported", "path", path, "events", n)
	fmt.Fprintf(a.out, "Exported %d event(s) to %s\n", n, path)
	return nil
}
