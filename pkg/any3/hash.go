package any3

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hash digests the variant followed by the payload, so Equal values hash
// alike. A payload implementing Hasher contributes its own hash. A payload
// with its own Equal method but no Hasher contributes nothing, since there is
// no telling what its Equal ignores. Anything else is walked the way
// reflect.DeepEqual compares it: through pointers, slices and maps, with map
// entries combined independently of iteration order and -0 folded into 0.
func (u Any3[T1, T2, T3]) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(u.variant)})

	switch u.variant {
	case VariantFirst:
		hashPayload(d, payload[T1](u.value))
	case VariantSecond:
		hashPayload(d, payload[T2](u.value))
	case VariantThird:
		hashPayload(d, payload[T3](u.value))
	}
	return d.Sum64()
}

func hashPayload[T any](d *xxhash.Digest, v T) {
	if h, ok := any(v).(Hasher); ok {
		writeUint64(d, h.Hash())
		return
	}
	if _, ok := any(v).(interface{ Equal(T) bool }); ok {
		return
	}

	rv := reflect.ValueOf(any(v))
	w := &hashWalker{d: xxhash.New(), path: make(map[visit]struct{})}
	if w.walk(rv) {
		writeUint64(d, w.d.Sum64())
		return
	}
	// Cyclic values are only ever equal to other cyclic values, so the type
	// alone is a consistent hash for them.
	_, _ = d.WriteString(rv.Type().String())
}

func writeUint64(d *xxhash.Digest, x uint64) {
	_, _ = d.Write(binary.LittleEndian.AppendUint64(nil, x))
}

// visit identifies a pointer, slice or map currently being walked
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type hashWalker struct {
	d    *xxhash.Digest
	path map[visit]struct{}
}

func (w *hashWalker) uint(x uint64) {
	writeUint64(w.d, x)
}

func (w *hashWalker) float(f float64) {
	if f == 0 {
		f = 0 // -0
	}
	w.uint(math.Float64bits(f))
}

// walk feeds v into the digest. It returns false when v refers back to
// itself.
func (w *hashWalker) walk(v reflect.Value) bool {
	if !v.IsValid() {
		w.uint(0)
		return true
	}
	w.uint(uint64(v.Kind()))

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			w.uint(1)
		} else {
			w.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		w.float(real(c))
		w.float(imag(c))
	case reflect.String:
		w.uint(uint64(v.Len()))
		_, _ = w.d.WriteString(v.String())
	case reflect.Chan, reflect.UnsafePointer:
		w.uint(uint64(v.Pointer()))
	case reflect.Func:
		// non-nil funcs are never DeepEqual
		if v.IsNil() {
			w.uint(0)
		} else {
			w.uint(1)
		}
	case reflect.Interface:
		if v.IsNil() {
			w.uint(0)
			return true
		}
		_, _ = w.d.WriteString(v.Elem().Type().String())
		return w.walk(v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			w.uint(0)
			return true
		}
		return w.enter(v, 0, func() bool { return w.walk(v.Elem()) })
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !w.walk(v.Index(i)) {
				return false
			}
		}
	case reflect.Slice:
		w.uint(uint64(v.Len()))
		if v.Len() == 0 {
			return true
		}
		return w.enter(v, v.Len(), func() bool {
			for i := 0; i < v.Len(); i++ {
				if !w.walk(v.Index(i)) {
					return false
				}
			}
			return true
		})
	case reflect.Map:
		w.uint(uint64(v.Len()))
		if v.Len() == 0 {
			return true
		}
		return w.enter(v, 0, func() bool {
			var sum uint64
			iter := v.MapRange()
			for iter.Next() {
				entry := &hashWalker{d: xxhash.New(), path: w.path}
				if !entry.walk(iter.Key()) || !entry.walk(iter.Value()) {
					return false
				}
				sum += entry.d.Sum64()
			}
			w.uint(sum)
			return true
		})
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !w.walk(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

func (w *hashWalker) enter(v reflect.Value, n int, body func() bool) bool {
	key := visit{ptr: v.Pointer(), typ: v.Type(), n: n}
	if _, ok := w.path[key]; ok {
		return false
	}
	w.path[key] = struct{}{}
	defer delete(w.path, key)
	return body()
}
