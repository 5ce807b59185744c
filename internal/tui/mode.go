package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects between the interactive viewer and plain text.
type OutputMode int

const (
	// OutputModePlain prints the navigation state as text.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the Bubble Tea viewer.
	OutputModeInteractive
)

// DetectOutputMode picks the interactive viewer only when stdin and stdout
// are terminals and plain output was not forced.
func DetectOutputMode(forcePlain bool) OutputMode {
	if forcePlain || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
		return OutputModeInteractive
	}
	return OutputModePlain
}
