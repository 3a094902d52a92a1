package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophcal/internal/common"
)

const menuText = `Calendar App
1. View Calendar
2. Add Event
3. Edit Event
4. Delete Event
5. Duplicate Event
6. Exit
Choose an option: `

const optionExit = 6

// execIface defines the minimal surface the menu loop needs.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	ViewCalendar(ctx context.Context) error
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context) error
	DeleteEvent(ctx context.Context) error
	DuplicateEvent(ctx context.Context) error

	report(ctx context.Context, err error)
	clearScreen()
	pause() error
}

// runMenu renders the menu, reads a selection and dispatches it until the
// user picks Exit or input ends. Errors returned by operations are reported
// and the loop goes on; only a failing read ends it with an error.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) error {
	ops := map[int]func(context.Context) error{
		1: a.ViewCalendar,
		2: a.AddEvent,
		3: a.EditEvent,
		4: a.DeleteEvent,
		5: a.DuplicateEvent,
	}

	for {
		a.clearScreen()
		fmt.Fprint(w, menuText)

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return ignoreEOF(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if choice == optionExit && convErr == nil {
			return nil
		}

		op, ok := ops[choice]
		if convErr != nil || !ok {
			a.report(ctx, fmt.Errorf("%q: %w", strings.TrimSpace(line), common.ErrInvalidOption))
		} else if err := op(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
				return nil
			}
			a.report(ctx, err)
		}

		if err := a.pause(); err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
