// Package printers contains ready-made Printer capabilities for common
// element types, plus a color decorator for terminal output.
//
// Common usage:
// - Value: render any type with %v
// - Quoted: render strings with %q
// - Format: build a printer from a custom format verb
// - Stringer: render fmt.Stringer implementations
// - Enum: render enumerated values through a name table
// - Colored: wrap any printer with a terminal color
package printers
