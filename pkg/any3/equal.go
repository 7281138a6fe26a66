package any3

import (
	"fmt"
)

// Equal reports whether u and o hold the same variant with equal payloads.
// Payloads are compared with their own Equal method when they have one,
// with == when comparable and with reflect.DeepEqual otherwise.
func (u Any3[T1, T2, T3]) Equal(o Any3[T1, T2, T3]) bool {
	if u.variant != o.variant {
		return false
	}

	switch u.variant {
	case VariantFirst:
		return equalValues(payload[T1](u.value), payload[T1](o.value))
	case VariantSecond:
		return equalValues(payload[T2](u.value), payload[T2](o.value))
	case VariantThird:
		return equalValues(payload[T3](u.value), payload[T3](o.value))
	}
	return true
}

func (u Any3[T1, T2, T3]) String() string {
	if u.variant == Invalid {
		return Invalid.String()
	}
	return fmt.Sprintf("%s(%v)", u.variant, u.value)
}
