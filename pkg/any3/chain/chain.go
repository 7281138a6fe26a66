package chain

import (
	"github.com/ib-77/any3/pkg/any3"
)

// Chain wraps an any3.Any3 together with the first error met along the way
type Chain[T1, T2, T3 any] struct {
	union any3.Any3[T1, T2, T3]
	err   error
}

// Start creates a new chain from a union
func Start[T1, T2, T3 any](u any3.Any3[T1, T2, T3]) *Chain[T1, T2, T3] {
	return &Chain[T1, T2, T3]{union: u}
}

// From creates a new chain from a constructor's results, e.g.
// chain.From(any3.Second[string, int, bool](42)).
func From[T1, T2, T3 any](u any3.Any3[T1, T2, T3], err error) *Chain[T1, T2, T3] {
	return &Chain[T1, T2, T3]{union: u, err: err}
}

// Union returns the current union
func (c *Chain[T1, T2, T3]) Union() any3.Any3[T1, T2, T3] {
	return c.union
}

func (c *Chain[T1, T2, T3]) Err() error {
	return c.err
}

func (c *Chain[T1, T2, T3]) Result() (any3.Any3[T1, T2, T3], error) {
	return c.union, c.err
}

// Peek runs the action matching the active variant
func (c *Chain[T1, T2, T3]) Peek(onFirst func(T1), onSecond func(T2), onThird func(T3)) *Chain[T1, T2, T3] {
	if c.err != nil {
		return c
	}
	u, err := c.union.Peek(onFirst, onSecond, onThird)
	return &Chain[T1, T2, T3]{union: u, err: err}
}

// Map chains any3.Map
func Map[T1, T2, T3, R1, R2, R3 any](c *Chain[T1, T2, T3],
	onFirst func(T1) R1, onSecond func(T2) R2, onThird func(T3) R3) *Chain[R1, R2, R3] {

	if c.err != nil {
		return &Chain[R1, R2, R3]{err: c.err}
	}
	u, err := any3.Map(c.union, onFirst, onSecond, onThird)
	return &Chain[R1, R2, R3]{union: u, err: err}
}

// MapFirst chains any3.MapFirst
func MapFirst[T1, T2, T3, R any](c *Chain[T1, T2, T3], f func(T1) R) *Chain[R, T2, T3] {
	if c.err != nil {
		return &Chain[R, T2, T3]{err: c.err}
	}
	u, err := any3.MapFirst(c.union, f)
	return &Chain[R, T2, T3]{union: u, err: err}
}

// MapSecond chains any3.MapSecond
func MapSecond[T1, T2, T3, R any](c *Chain[T1, T2, T3], f func(T2) R) *Chain[T1, R, T3] {
	if c.err != nil {
		return &Chain[T1, R, T3]{err: c.err}
	}
	u, err := any3.MapSecond(c.union, f)
	return &Chain[T1, R, T3]{union: u, err: err}
}

// MapThird chains any3.MapThird
func MapThird[T1, T2, T3, R any](c *Chain[T1, T2, T3], f func(T3) R) *Chain[T1, T2, R] {
	if c.err != nil {
		return &Chain[T1, T2, R]{err: c.err}
	}
	u, err := any3.MapThird(c.union, f)
	return &Chain[T1, T2, R]{union: u, err: err}
}

// Finally collapses the chain into a final value using any3.Fold
func Finally[T1, T2, T3, U any](c *Chain[T1, T2, T3],
	onFirst func(T1) U, onSecond func(T2) U, onThird func(T3) U) (U, error) {

	if c.err != nil {
		var zero U
		return zero, c.err
	}
	return any3.Fold(c.union, onFirst, onSecond, onThird)
}
