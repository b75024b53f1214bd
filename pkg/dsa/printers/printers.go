package printers

import (
	"fmt"
	"io"

	"github.com/rb-26/dsa/pkg/dsa"
)

// Value renders v with the %v verb. Value[T] satisfies dsa.Printer[T] for
// any T.
func Value[T any](w io.Writer, v T) {
	fmt.Fprintf(w, "%v", v)
}

// Quoted renders a string with the %q verb.
func Quoted(w io.Writer, s string) {
	fmt.Fprintf(w, "%q", s)
}

// Format builds a printer that renders values with the given format, e.g.
// Format[float64]("%.2f").
func Format[T any](format string) dsa.Printer[T] {
	return func(w io.Writer, v T) {
		fmt.Fprintf(w, format, v)
	}
}

// Stringer renders a fmt.Stringer through its String method.
func Stringer[T fmt.Stringer](w io.Writer, v T) {
	io.WriteString(w, v.String())
}

// Enum builds a printer that renders enumerated values through a name
// table. Values missing from the table fall back to %v, so an unmapped
// discriminant stays visible rather than printing nothing.
func Enum[T comparable](names map[T]string) dsa.Printer[T] {
	return func(w io.Writer, v T) {
		if name, ok := names[v]; ok {
			io.WriteString(w, name)
			return
		}
		fmt.Fprintf(w, "%v", v)
	}
}
