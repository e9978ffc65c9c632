package theme

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Style represents a named color style
type Style struct {
	printer *color.Color
}

// NewStyle creates a new style with foreground, background and attributes
func NewStyle(fg, bg color.Attribute, attrs ...color.Attribute) *Style {
	c := color.New(fg)

	if bg != 0 {
		c.Add(bg)
	}

	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{printer: c}
}

// Fprint writes styled text to w
func (s *Style) Fprint(w io.Writer, a ...interface{}) {
	_, _ = s.printer.Fprint(w, a...)
}

// Fprintf writes styled formatted text to w
func (s *Style) Fprintf(w io.Writer, format string, a ...interface{}) {
	_, _ = s.printer.Fprintf(w, format, a...)
}

// Fprintln writes styled text to w followed by a newline
func (s *Style) Fprintln(w io.Writer, a ...interface{}) {
	_, _ = s.printer.Fprintln(w, a...)
}

// Println prints styled text to stdout followed by a newline
func (s *Style) Println(a ...interface{}) {
	s.Fprintln(os.Stdout, a...)
}

// Sprint returns styled text as string
func (s *Style) Sprint(a ...interface{}) string {
	return s.printer.Sprint(a...)
}

func (s *Style) setEnabled(enabled bool) {
	if enabled {
		s.printer.EnableColor()
	} else {
		s.printer.DisableColor()
	}
}
