package term

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Capabilities describes what the output terminal can render. It is probed
// once at startup and passed around as a value; nothing in this package keeps
// global state.
type Capabilities struct {
	IsTTY   bool
	NoColor bool
}

// IsTerminal reports whether f is attached to a terminal. Used both for
// capability probing and for deciding whether interactive prompts make sense.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectCapabilities probes the given output stream and honors the NO_COLOR
// convention. forceNoColor comes from the --no-color flag.
func DetectCapabilities(out *os.File, forceNoColor bool) Capabilities {
	tty := IsTerminal(out)
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return Capabilities{
		IsTTY:   tty,
		NoColor: forceNoColor || noColorEnv || !tty,
	}
}

// Styler renders styled console text from a fixed capability descriptor.
// Construct one per run with NewStyler; the same Styler always renders the
// same input the same way.
type Styler struct {
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	accent  *color.Color
}

// NewStyler builds a Styler whose colors are enabled or disabled according to
// caps, independent of fatih/color's own TTY auto-detection.
func NewStyler(caps Capabilities) Styler {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if caps.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
		return c
	}
	return Styler{
		success: mk(color.FgGreen),
		warn:    mk(color.FgHiMagenta),
		fail:    mk(color.FgRed),
		accent:  mk(color.FgCyan, color.Bold),
	}
}

// Success renders format in the success style.
func (s Styler) Success(format string, a ...any) string {
	return s.success.Sprintf(format, a...)
}

// Warn renders format in the warning style.
func (s Styler) Warn(format string, a ...any) string {
	return s.warn.Sprintf(format, a...)
}

// Fail renders format in the failure style.
func (s Styler) Fail(format string, a ...any) string {
	return s.fail.Sprintf(format, a...)
}

// Accent renders format in the accent style used for step headings.
func (s Styler) Accent(format string, a ...any) string {
	return s.accent.Sprintf(format, a...)
}
