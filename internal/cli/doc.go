// Package cli provides the interactive calendar shell.
//
// The shell renders a fixed numbered menu, reads one selection per line and
// dispatches to one of five operations: view, add, edit, delete and
// duplicate. Every operation ends with a "Press any key" pause. The loop
// stops on option 6 or at end of input.
//
// See App, runMenu and the handlers in handlers.go.
package cli
