package chain

import "github.com/rb-26/dsa/pkg/dsa/result"

// Chain carries a *result.Result[T, E] through a fluent pipeline.
type Chain[T, E any] struct {
	res *result.Result[T, E]
}

// Start begins a chain from an existing result.
func Start[T, E any](r *result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue begins a chain from a plain value, wrapping it as Ok.
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Success[T, E](v))
}

// Result returns the result carried by the chain.
func (c Chain[T, E]) Result() *result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result. It runs only on
// the Ok variant; failures and absent handles pass through unchanged.
func (c Chain[T, E]) Then(onSuccess func(t T) *result.Result[T, E]) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: onSuccess(*c.res.Value())}
}

// Map transforms the successful value, keeping the chain on the Ok track.
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: result.Success[T, E](onSuccess(*c.res.Value()))}
}

// While repeats onSuccess as long as the chain is on the Ok track and the
// condition holds for the current value.
func (c Chain[T, E]) While(onSuccess func(t T) *result.Result[T, E],
	while func(t T) bool) Chain[T, E] {

	for c.res.IsOk() && while(*c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first chain on the Ok track; when neither is, it prefers
// the one carrying a present failure over an absent handle.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	if c.res.IsErr() {
		return c
	}
	return alternative
}

// And returns the first failing chain, or the required chain when both are
// on the Ok track.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return required
}

// Ensure triggers side effects for the active variant without changing the
// result. Nil handlers are skipped; an absent handle triggers neither.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	c.res.Match(onOk, onErr)
	return c
}

// Finally collapses the chain to a concrete value. onOk handles the Ok
// variant, onErr the Error variant; an absent handle yields the zero value.
func (c Chain[T, E]) Finally(onOk func(T) T, onErr func(E) T) T {
	if c.res.IsOk() {
		return onOk(*c.res.Value())
	}
	if c.res.IsErr() {
		return onErr(*c.res.Error())
	}
	var zero T
	return zero
}
