package dsa

import "reflect"

// TypeName reports the name used for type parameter T in debug renderings,
// e.g. "string", "ExitCode", "[]int" or "*os.File".
//
// The name is deterministic: the same type argument yields the same name
// from any call site, and distinct named types yield distinct names.
// Reflection is confined to this helper and feeds debug text only; no
// operation in the module branches on it.
func TypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
