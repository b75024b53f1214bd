package array

import (
	"fmt"
	"io"

	"github.com/rb-26/dsa/pkg/dsa"
)

// Print renders the contents as "[e0, e1, e2]" with every element rendered
// by print. An absent handle prints nothing.
func (a *Array[T]) Print(w io.Writer, print dsa.Printer[T]) {
	if a == nil {
		return
	}
	io.WriteString(w, "[")
	for i, v := range a.data {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		print(w, v)
	}
	io.WriteString(w, "]")
}

// Println renders like Print followed by a newline. An absent handle prints
// nothing.
func (a *Array[T]) Println(w io.Writer, print dsa.Printer[T]) {
	if a == nil {
		return
	}
	a.Print(w, print)
	io.WriteString(w, "\n")
}

// Debug renders a multi-line block naming the element type, the size and
// the contents. An absent handle renders a single marker line instead of
// the block, so a forgotten allocation stays visible in the output.
func (a *Array[T]) Debug(w io.Writer, print dsa.Printer[T]) {
	name := dsa.TypeName[T]()
	if a == nil {
		fmt.Fprintf(w, "Array<%s> { nil }\n", name)
		return
	}
	fmt.Fprintf(w, "Array<%s> {\n", name)
	fmt.Fprintf(w, "  size: %d,\n", len(a.data))
	io.WriteString(w, "  data: ")
	a.Println(w, print)
	io.WriteString(w, "}\n")
}
