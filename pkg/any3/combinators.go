package any3

// Map applies the function matching the active variant and wraps its result
// under the same variant. All three functions must be non-nil even though
// only one of them runs. A result that is itself absent is rejected the same
// way a constructor would reject it.
func Map[T1, T2, T3, R1, R2, R3 any](u Any3[T1, T2, T3],
	onFirst func(T1) R1,
	onSecond func(T2) R2,
	onThird func(T3) R3) (Any3[R1, R2, R3], error) {

	if err := requireFuncs(onFirst == nil, onSecond == nil, onThird == nil); err != nil {
		return Any3[R1, R2, R3]{}, err
	}

	switch u.variant {
	case VariantFirst:
		return First[R1, R2, R3](onFirst(payload[T1](u.value)))
	case VariantSecond:
		return Second[R1, R2, R3](onSecond(payload[T2](u.value)))
	case VariantThird:
		return Third[R1, R2, R3](onThird(payload[T3](u.value)))
	}
	return Any3[R1, R2, R3]{}, errNoVariant()
}

// MapFirst transforms the first value and passes the other variants through
// unchanged.
func MapFirst[T1, T2, T3, R any](u Any3[T1, T2, T3], f func(T1) R) (Any3[R, T2, T3], error) {
	if f == nil {
		return Any3[R, T2, T3]{}, errAbsent("f")
	}
	if u.variant == VariantFirst {
		return First[R, T2, T3](f(payload[T1](u.value)))
	}
	return passThrough[R, T2, T3](u.variant, u.value)
}

// MapSecond transforms the second value and passes the other variants
// through unchanged.
func MapSecond[T1, T2, T3, R any](u Any3[T1, T2, T3], f func(T2) R) (Any3[T1, R, T3], error) {
	if f == nil {
		return Any3[T1, R, T3]{}, errAbsent("f")
	}
	if u.variant == VariantSecond {
		return Second[T1, R, T3](f(payload[T2](u.value)))
	}
	return passThrough[T1, R, T3](u.variant, u.value)
}

// MapThird transforms the third value and passes the other variants through
// unchanged.
func MapThird[T1, T2, T3, R any](u Any3[T1, T2, T3], f func(T3) R) (Any3[T1, T2, R], error) {
	if f == nil {
		return Any3[T1, T2, R]{}, errAbsent("f")
	}
	if u.variant == VariantThird {
		return Third[T1, T2, R](f(payload[T3](u.value)))
	}
	return passThrough[T1, T2, R](u.variant, u.value)
}

// passThrough rewraps an untouched payload. Its static type is the same on
// both sides, only the type of the mapped slot changed.
func passThrough[T1, T2, T3 any](variant Variant, value any) (Any3[T1, T2, T3], error) {
	if variant == Invalid {
		return Any3[T1, T2, T3]{}, errNoVariant()
	}
	return Any3[T1, T2, T3]{variant: variant, value: value}, nil
}

// ForEach runs the action matching the active variant.
func (u Any3[T1, T2, T3]) ForEach(onFirst func(T1), onSecond func(T2), onThird func(T3)) error {
	if err := requireFuncs(onFirst == nil, onSecond == nil, onThird == nil); err != nil {
		return err
	}

	switch u.variant {
	case VariantFirst:
		onFirst(payload[T1](u.value))
	case VariantSecond:
		onSecond(payload[T2](u.value))
	case VariantThird:
		onThird(payload[T3](u.value))
	default:
		return errNoVariant()
	}
	return nil
}

// Peek is ForEach returning the receiver, for chaining.
func (u Any3[T1, T2, T3]) Peek(onFirst func(T1), onSecond func(T2), onThird func(T3)) (Any3[T1, T2, T3], error) {
	return u, u.ForEach(onFirst, onSecond, onThird)
}

// Fold reduces u to a single value with the function matching the active
// variant.
func Fold[T1, T2, T3, U any](u Any3[T1, T2, T3],
	onFirst func(T1) U,
	onSecond func(T2) U,
	onThird func(T3) U) (U, error) {

	var zero U
	if err := requireFuncs(onFirst == nil, onSecond == nil, onThird == nil); err != nil {
		return zero, err
	}

	switch u.variant {
	case VariantFirst:
		return onFirst(payload[T1](u.value)), nil
	case VariantSecond:
		return onSecond(payload[T2](u.value)), nil
	case VariantThird:
		return onThird(payload[T3](u.value)), nil
	}
	return zero, errNoVariant()
}
