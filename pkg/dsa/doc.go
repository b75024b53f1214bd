// Package dsa contains the shared pieces that Array[T] and Result[T, E]
// instantiations are built on: the Printer capability and debug type naming.
//
// An instantiation is a concrete type produced by supplying type arguments,
// e.g. Array[string] or Result[string, ExitCode]. The compiler resolves each
// combination to its own independent type and method set before use, so two
// different combinations never collide and the same combination names the
// identical type from every importing package. There is no runtime dispatch
// over the element type anywhere in this module.
//
// Rendering is capability-driven: every Print/Println/Debug operation takes
// an explicit Printer for each type parameter. Forgetting to supply one is a
// compile error at the call site, never a runtime failure. Ready-made
// printers live in the printers subpackage.
package dsa
