package printers

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"

	"github.com/rb-26/dsa/pkg/dsa"
)

// Colored wraps a printer so its output is rendered in the given terminal
// color. The inner printer still controls the text; Colored only adds the
// escape framing around it.
func Colored[T any](c color.Color, print dsa.Printer[T]) dsa.Printer[T] {
	return func(w io.Writer, v T) {
		var sb strings.Builder
		print(&sb, v)
		io.WriteString(w, c.Render(sb.String()))
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Callers gate Colored printers on it to keep piped output clean.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
