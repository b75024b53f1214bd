package result

import (
	"fmt"
	"io"

	"github.com/rb-26/dsa/pkg/dsa"
)

// Print renders "Ok { <value> }" or "Error { <error> }", selecting the
// printer matching the active variant. An absent handle prints nothing.
func (r *Result[T, E]) Print(w io.Writer, printT dsa.Printer[T], printE dsa.Printer[E]) {
	if r == nil {
		return
	}
	if r.ok {
		io.WriteString(w, "Ok { ")
		printT(w, r.value)
	} else {
		io.WriteString(w, "Error { ")
		printE(w, r.err)
	}
	io.WriteString(w, " }")
}

// Println renders like Print followed by a newline. An absent handle prints
// nothing.
func (r *Result[T, E]) Println(w io.Writer, printT dsa.Printer[T], printE dsa.Printer[E]) {
	if r == nil {
		return
	}
	r.Print(w, printT, printE)
	io.WriteString(w, "\n")
}

// Debug renders a multi-line block naming the active variant, both type
// parameters, the discriminant and the active payload. An absent handle
// renders a single marker line instead of the block.
func (r *Result[T, E]) Debug(w io.Writer, printT dsa.Printer[T], printE dsa.Printer[E]) {
	nameT := dsa.TypeName[T]()
	nameE := dsa.TypeName[E]()
	if r == nil {
		fmt.Fprintf(w, "Result<%s, %s> { nil }\n", nameT, nameE)
		return
	}
	variant := "Ok"
	if !r.ok {
		variant = "Error"
	}
	fmt.Fprintf(w, "Result::%s<%s, %s> {\n", variant, nameT, nameE)
	fmt.Fprintf(w, "  is_ok: %t,\n", r.ok)
	io.WriteString(w, "  value: ")
	if r.ok {
		printT(w, r.value)
	} else {
		printE(w, r.err)
	}
	io.WriteString(w, "\n}\n")
}
