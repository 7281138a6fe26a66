package any3

import (
	"fmt"
)

// Variant identifies the active alternative of an Any3.
type Variant uint8

const (
	// Invalid is the variant of the zero Any3. Constructors never produce it.
	Invalid Variant = iota
	VariantFirst
	VariantSecond
	VariantThird
)

func (v Variant) String() string {
	switch v {
	case VariantFirst:
		return "First"
	case VariantSecond:
		return "Second"
	case VariantThird:
		return "Third"
	default:
		return "Invalid"
	}
}

// Any3 holds exactly one value of type T1, T2 or T3. It is immutable: every
// combinator returns a new value and leaves the receiver untouched, so an
// Any3 can be shared between goroutines freely.
type Any3[T1, T2, T3 any] struct {
	variant Variant
	value   any
}

// First returns an Any3 holding v as its first alternative.
func First[T1, T2, T3 any](v T1) (Any3[T1, T2, T3], error) {
	if IsNil(v) {
		return Any3[T1, T2, T3]{}, errAbsent("first value")
	}
	return Any3[T1, T2, T3]{variant: VariantFirst, value: v}, nil
}

// Second returns an Any3 holding v as its second alternative.
func Second[T1, T2, T3 any](v T2) (Any3[T1, T2, T3], error) {
	if IsNil(v) {
		return Any3[T1, T2, T3]{}, errAbsent("second value")
	}
	return Any3[T1, T2, T3]{variant: VariantSecond, value: v}, nil
}

// Third returns an Any3 holding v as its third alternative.
func Third[T1, T2, T3 any](v T3) (Any3[T1, T2, T3], error) {
	if IsNil(v) {
		return Any3[T1, T2, T3]{}, errAbsent("third value")
	}
	return Any3[T1, T2, T3]{variant: VariantThird, value: v}, nil
}

// MustFirst is like First but panics if v is absent.
func MustFirst[T1, T2, T3 any](v T1) Any3[T1, T2, T3] {
	return must(First[T1, T2, T3](v))
}

// MustSecond is like Second but panics if v is absent.
func MustSecond[T1, T2, T3 any](v T2) Any3[T1, T2, T3] {
	return must(Second[T1, T2, T3](v))
}

// MustThird is like Third but panics if v is absent.
func MustThird[T1, T2, T3 any](v T3) Any3[T1, T2, T3] {
	return must(Third[T1, T2, T3](v))
}

func must[T1, T2, T3 any](u Any3[T1, T2, T3], err error) Any3[T1, T2, T3] {
	if err != nil {
		panic(fmt.Sprintf("any3: %v", err))
	}
	return u
}

func (u Any3[T1, T2, T3]) Variant() Variant {
	return u.variant
}

// Valid is false only for the zero Any3.
func (u Any3[T1, T2, T3]) Valid() bool {
	return u.variant != Invalid
}

func (u Any3[T1, T2, T3]) IsFirst() bool {
	return u.variant == VariantFirst
}

func (u Any3[T1, T2, T3]) IsSecond() bool {
	return u.variant == VariantSecond
}

func (u Any3[T1, T2, T3]) IsThird() bool {
	return u.variant == VariantThird
}

func (u Any3[T1, T2, T3]) Value() any {
	return u.value
}

// AsFirst returns the first value and true, or the zero T1 and false when
// another variant is active.
func (u Any3[T1, T2, T3]) AsFirst() (T1, bool) {
	if u.variant != VariantFirst {
		var zero T1
		return zero, false
	}
	return payload[T1](u.value), true
}

// AsSecond returns the second value and true, or the zero T2 and false.
func (u Any3[T1, T2, T3]) AsSecond() (T2, bool) {
	if u.variant != VariantSecond {
		var zero T2
		return zero, false
	}
	return payload[T2](u.value), true
}

// AsThird returns the third value and true, or the zero T3 and false.
func (u Any3[T1, T2, T3]) AsThird() (T3, bool) {
	if u.variant != VariantThird {
		var zero T3
		return zero, false
	}
	return payload[T3](u.value), true
}

// payload converts the stored value back to its static type. The comma-ok
// form keeps nil interface payloads from panicking.
func payload[T any](v any) T {
	t, _ := v.(T)
	return t
}
