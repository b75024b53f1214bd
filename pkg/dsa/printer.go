package dsa

import "io"

// Printer renders a single value of type T to w.
//
// A Printer must write the value only: no trailing separator, no newline.
// The container and result renderings supply all surrounding framing
// (brackets, commas, braces, newlines) themselves.
type Printer[T any] func(w io.Writer, v T)
