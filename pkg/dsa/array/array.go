package array

import (
	"time"

	"github.com/google/uuid"
)

// Array is a fixed-capacity buffer of T. The zero-size array is valid.
// The buffer is exclusively owned: no two arrays ever alias the same
// storage.
type Array[T any] struct {
	data      []T
	id        uuid.UUID
	createdAt time.Time
}

// New allocates an array of exactly size zero-valued elements.
// A negative size yields a nil handle.
func New[T any](size int) *Array[T] {
	if size < 0 {
		return nil
	}
	return &Array[T]{
		data:      make([]T, size),
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Release drops the buffer and reports whether there was anything to
// release. Release on a nil handle returns false. Releasing twice is safe:
// a released array behaves as empty, so every later operation returns its
// sentinel.
func (a *Array[T]) Release() bool {
	if a == nil {
		return false
	}
	a.data = nil
	return true
}

// Get returns a reference to the element at index, or nil when the handle
// is absent or index is outside [0, Len()).
func (a *Array[T]) Get(index int) *T {
	if a == nil || index < 0 || index >= len(a.data) {
		return nil
	}
	return &a.data[index]
}

// Set writes value at index under the same preconditions as Get and
// reports whether the write happened.
func (a *Array[T]) Set(index int, value T) bool {
	if a == nil || index < 0 || index >= len(a.data) {
		return false
	}
	a.data[index] = value
	return true
}

// Replace installs value at index and returns the previous element, or nil
// under the same preconditions as Get. The returned reference is a copy of
// the old element, not a pointer into the buffer.
func (a *Array[T]) Replace(index int, value T) *T {
	if a == nil || index < 0 || index >= len(a.data) {
		return nil
	}
	old := a.data[index]
	a.data[index] = value
	return &old
}

// Len returns the fixed element count, or 0 for an absent handle.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// ID returns the instance id assigned at creation, or uuid.Nil for an
// absent handle.
func (a *Array[T]) ID() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	return a.id
}

// CreatedAt returns the creation time (UTC).
func (a *Array[T]) CreatedAt() time.Time {
	if a == nil {
		return time.Time{}
	}
	return a.createdAt
}
