package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows the state of a single send
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing to out
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start shows msg next to a spinner on a TTY, or prints it once otherwise
func (d *Display) Start(msg string) {
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.out),
		)
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return
	}
	fmt.Fprintln(d.out, msg)
}

// Succeed stops the spinner and prints msg with a success mark
func (d *Display) Succeed(msg string) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s\n", checkmark(d.symbols, d.capabilities.SupportsColor), msg)
}

// Fail stops the spinner and prints msg with a failure mark
func (d *Display) Fail(msg string) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s\n", failureMark(d.symbols, d.capabilities.SupportsColor), msg)
}

// Stop stops the spinner without printing anything
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
