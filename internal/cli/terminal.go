package cli

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

// Test seams for the terminal calls.
var (
	isTerminal = term.IsTerminal
	makeRaw    = term.MakeRaw
	restore    = term.Restore
)

const clearSequence = "\033[H\033[2J"

func (a *App) clearScreen() {
	if a.tty && a.config.ClearScreen {
		fmt.Fprint(a.out, clearSequence)
	}
}

// pause prints the continue prompt and waits. On a terminal a single key is
// enough; otherwise one line is consumed.
func (a *App) pause() error {
	fmt.Fprintln(a.out, "Press any key to continue...")

	if !a.tty {
		_, err := a.reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	state, err := makeRaw(a.fd)
	if err != nil {
		_, err = a.reader.ReadString('\n')
		return err
	}
	defer func() { _ = restore(a.fd, state) }()

	_, err = a.reader.ReadByte()
	return err
}
