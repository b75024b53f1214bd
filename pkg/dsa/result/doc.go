// Package result provides Result[T, E], an immutable two-variant sum type:
// Ok carrying a T or Error carrying an E.
//
// A handle is a *Result[T, E]; nil is the absent handle. The variant is
// fixed by the constructor (Success or Fail) and never changes. Exactly one
// payload is valid at a time; the wrong variant's accessor returns nil
// rather than exposing stale storage.
//
// Every operation tolerates an absent handle by returning a sentinel
// instead of panicking. Note that both IsOk and IsErr report false on an
// absent handle, so an absent result is neither reliably "ok" nor "err";
// callers that care must check for nil first.
//
// Package-level combinators (Map, MapErr, AndThen, OrElse, Tee) compose
// results across type parameters. Instances are not safe for concurrent
// use.
package result
