package result

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either an Ok value of type T or an Error value of type E,
// selected by a discriminant fixed at construction.
type Result[T, E any] struct {
	ok        bool
	value     T
	err       E
	id        uuid.UUID
	createdAt time.Time
}

// Success builds an Ok-variant result carrying value.
func Success[T, E any](value T) *Result[T, E] {
	return &Result[T, E]{
		ok:        true,
		value:     value,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Fail builds an Error-variant result carrying err.
func Fail[T, E any](err E) *Result[T, E] {
	return &Result[T, E]{
		ok:        false,
		err:       err,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// IsOk reports whether the result is present and holds the Ok variant.
func (r *Result[T, E]) IsOk() bool {
	return r != nil && r.ok
}

// IsErr reports whether the result is present and holds the Error variant.
func (r *Result[T, E]) IsErr() bool {
	return r != nil && !r.ok
}

// Value returns a reference to the Ok payload, or nil when the handle is
// absent or the variant is Error.
func (r *Result[T, E]) Value() *T {
	if r == nil || !r.ok {
		return nil
	}
	return &r.value
}

// Error returns a reference to the Error payload, or nil when the handle is
// absent or the variant is Ok.
func (r *Result[T, E]) Error() *E {
	if r == nil || r.ok {
		return nil
	}
	return &r.err
}

// ValueOr returns the Ok payload when present, otherwise fallback. The
// fallback applies both to the Error variant and to an absent handle.
func (r *Result[T, E]) ValueOr(fallback *T) *T {
	if r == nil || !r.ok {
		return fallback
	}
	return &r.value
}

// ErrorOr returns the Error payload when present, otherwise fallback.
func (r *Result[T, E]) ErrorOr(fallback *E) *E {
	if r == nil || r.ok {
		return fallback
	}
	return &r.err
}

// ValueOrElse returns the Ok payload when present; otherwise it invokes
// orElse and returns its result. orElse runs only when needed. A nil
// orElse counts as producing nil.
func (r *Result[T, E]) ValueOrElse(orElse func() *T) *T {
	if r != nil && r.ok {
		return &r.value
	}
	if orElse == nil {
		return nil
	}
	return orElse()
}

// ErrorOrElse returns the Error payload when present; otherwise it invokes
// orElse and returns its result.
func (r *Result[T, E]) ErrorOrElse(orElse func() *E) *E {
	if r != nil && !r.ok {
		return &r.err
	}
	if orElse == nil {
		return nil
	}
	return orElse()
}

// Match invokes onOk with the Ok payload or onErr with the Error payload,
// never both. An absent handle invokes neither. A nil callback for the
// selected variant is a no-op.
func (r *Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r == nil {
		return
	}
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}

// Release zeroes both payload slots so their referents become collectible
// and reports whether there was anything to release. Release on a nil
// handle returns false; every other path returns true.
func (r *Result[T, E]) Release() bool {
	if r == nil {
		return false
	}
	var zeroT T
	var zeroE E
	r.value = zeroT
	r.err = zeroE
	return true
}

// ID returns the instance id assigned at construction, or uuid.Nil for an
// absent handle.
func (r *Result[T, E]) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r *Result[T, E]) CreatedAt() time.Time {
	if r == nil {
		return time.Time{}
	}
	return r.createdAt
}
