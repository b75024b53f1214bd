package result

// Combinators compose results across type parameters. They are package-level
// functions because Go methods cannot introduce new type parameters. All of
// them propagate an absent handle as an absent handle.

// Map transforms the Ok payload with onSuccess, keeping the Error payload
// untouched.
func Map[T, E, U any](r *Result[T, E], onSuccess func(T) U) *Result[U, E] {
	if r == nil {
		return nil
	}
	if r.ok {
		return Success[U, E](onSuccess(r.value))
	}
	return Fail[U, E](r.err)
}

// MapErr transforms the Error payload with onFailure, keeping the Ok
// payload untouched.
func MapErr[T, E, F any](r *Result[T, E], onFailure func(E) F) *Result[T, F] {
	if r == nil {
		return nil
	}
	if r.ok {
		return Success[T, F](r.value)
	}
	return Fail[T, F](onFailure(r.err))
}

// AndThen switches from Result[T, E] to Result[U, E] via onSuccess; an
// Error variant short-circuits past onSuccess.
func AndThen[T, E, U any](r *Result[T, E], onSuccess func(T) *Result[U, E]) *Result[U, E] {
	if r == nil {
		return nil
	}
	if r.ok {
		return onSuccess(r.value)
	}
	return Fail[U, E](r.err)
}

// OrElse recovers from an Error variant via onFailure; an Ok variant passes
// through unchanged.
func OrElse[T, E any](r *Result[T, E], onFailure func(E) *Result[T, E]) *Result[T, E] {
	if r == nil {
		return nil
	}
	if r.ok {
		return r
	}
	return onFailure(r.err)
}

// Tee runs a side effect on the Ok payload and returns the result
// unchanged.
func Tee[T, E any](r *Result[T, E], onSuccess func(T)) *Result[T, E] {
	if r != nil && r.ok && onSuccess != nil {
		onSuccess(r.value)
	}
	return r
}
