// Package chain provides a fluent wrapper around *result.Result[T, E] for
// building synchronous success/failure pipelines.
//
// It keeps the API surface small:
// - Start/FromValue: begin a chain from a result or a value
// - Then/Map: compose result-returning or value-returning functions
// - While: repeat a step as long as a condition holds
// - Or/And: combine alternative and required chains
// - Ensure: trigger side effects without changing the result
// - Finally: collapse the chain to a concrete value via handlers
//
// Every step short-circuits on the Error variant and on an absent handle,
// so a failed chain carries its first error to the end untouched.
package chain
