package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type palette struct {
	heading func(a ...interface{}) string
	label   func(a ...interface{}) string
	dim     func(a ...interface{}) string
}

func colored() palette {
	return palette{
		heading: color.New(color.FgRed, color.Bold).SprintFunc(),
		label:   color.New(color.FgYellow).SprintFunc(),
		dim:     color.New(color.Faint).SprintFunc(),
	}
}

func plain() palette {
	id := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return palette{heading: id, label: id, dim: id}
}

// FormatError renders err with colors. Non-CLI errors are shown as Runtime errors.
func FormatError(err error) string {
	return format(err, colored())
}

// FormatErrorPlain renders err without ANSI escape codes
func FormatErrorPlain(err error) string {
	return format(err, plain())
}

// FormatSimpleError renders any error under the given category
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return format(&CLIError{Category: category, Message: err.Error()}, colored())
}

func format(err error, p palette) string {
	if err == nil {
		return ""
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", p.heading(cliErr.Category.String()), cliErr.Message)

	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", p.label("Usage:"), cliErr.Usage)
	}

	if len(cliErr.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", p.label("To fix this:"))
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", p.dim("-"), step)
		}
	}
	return b.String()
}

// PrintError writes the formatted error to stderr
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Colors are dropped when w is
// not stderr or stdout.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if w == os.Stderr || w == os.Stdout {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}
