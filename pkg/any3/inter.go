package any3

// Discriminated is implemented by every Any3 instantiation and lets code
// inspect a union without knowing its payload types.
type Discriminated interface {
	// Variant returns the active variant tag
	Variant() Variant
	IsFirst() bool
	IsSecond() bool
	IsThird() bool
	// Value returns the active payload, nil for the zero union
	Value() any
}

// Hasher lets a payload supply its own hash to Any3.Hash. Types with a
// custom Equal method should implement it so that equal payloads hash equal.
type Hasher interface {
	Hash() uint64
}

var _ Discriminated = Any3[int, int, int]{}
