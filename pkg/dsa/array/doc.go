// Package array provides Array[T], a fixed-capacity, bounds-checked,
// exclusively owned buffer of T.
//
// A handle is a *Array[T]; nil is the absent handle. Every operation
// tolerates an absent handle by returning a sentinel (nil reference, false,
// zero) instead of panicking. Out-of-bounds access returns the same sentinel
// as an absent handle; the two conditions are indistinguishable at the API
// surface.
//
// The capacity is fixed at creation: there is no append, grow or shrink.
// Instances are not safe for concurrent use.
package array
