// Package chain provides a fluent wrapper around any3.Any3 so that Peek, Map
// and Fold can be composed without checking an error after every step.
//
// The first error recorded by a step (an absent payload, a nil function, the
// zero union) is kept and every later step is skipped.
//
// Key operations:
// - Start/From: begin a chain from a union, or from a constructor's result pair
// - Peek: run the action matching the active variant
// - Map/MapFirst/MapSecond/MapThird: transform payloads, possibly changing types
// - Finally: fold the chain into a single value, returning the first error
package chain
