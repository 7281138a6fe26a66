// Package any3 provides Any3[T1, T2, T3], an immutable value holding exactly
// one of three alternatives, and the combinators that operate on it.
//
// Highlights:
// - First/Second/Third: construct an Any3 (absent payloads are rejected)
// - IsFirst/IsSecond/IsThird, AsFirst/AsSecond/AsThird: inspect the active variant
// - Map/MapFirst/MapSecond/MapThird: transform payloads under the same variant
// - ForEach/Peek: run the action matching the active variant
// - Fold: reduce all three branches to a common type
// - Equal/Hash/String: value equality, consistent hashing and display
//
// Argument errors wrap ErrInvalidArgument. Operating on the zero Any3, which
// has no active variant, yields ErrIllegalState.
package any3
