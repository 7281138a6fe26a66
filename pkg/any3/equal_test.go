package any3

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type account struct {
	id   int
	tags []string
}

// Hash only looks at id, which is enough for Equal-consistent hashing
func (a account) Hash() uint64 { return uint64(a.id) }

func TestEqual_VariantIsPartOfIdentity(t *testing.T) {
	t.Parallel()

	x, y := 5, 6
	if !MustFirst[int, int, int](x).Equal(MustFirst[int, int, int](x)) {
		t.Fatalf("first(x) must equal first(x)")
	}
	if MustFirst[int, int, int](x).Equal(MustFirst[int, int, int](y)) {
		t.Fatalf("first(x) must not equal first(y)")
	}
	if MustFirst[int, int, int](x).Equal(MustSecond[int, int, int](x)) {
		t.Fatalf("first(x) must not equal second(x)")
	}
	if MustFirst[int, int, int](x) != MustFirst[int, int, int](x) {
		t.Fatalf("== on int payloads must hold for the same value")
	}
}

func TestEqual_NonComparablePayload(t *testing.T) {
	t.Parallel()

	a := MustFirst[[]int, string, bool]([]int{1, 2})
	b := MustFirst[[]int, string, bool]([]int{1, 2})
	c := MustFirst[[]int, string, bool]([]int{2, 1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqual_UsesPayloadEqualMethod(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	utc := MustThird[int, string, time.Time](instant)
	local := MustThird[int, string, time.Time](instant.In(time.FixedZone("X", 3600)))

	assert.True(t, utc.Equal(local))
}

func TestEqual_ZeroUnions(t *testing.T) {
	t.Parallel()

	var a, b Any3[int, string, bool]
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustFirst[int, string, bool](0)))
}

func TestHash_ConsistentWithEqual(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	a := MustFirst[uuid.UUID, int64, string](id)
	b := MustFirst[uuid.UUID, int64, string](id)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), MustFirst[uuid.UUID, int64, string](uuid.New()).Hash())
}

func TestHash_IncludesVariant(t *testing.T) {
	t.Parallel()

	first := MustFirst[string, string, string]("same")
	second := MustSecond[string, string, string]("same")
	third := MustThird[string, string, string]("same")

	assert.NotEqual(t, first.Hash(), second.Hash())
	assert.NotEqual(t, second.Hash(), third.Hash())
	assert.NotEqual(t, first.Hash(), third.Hash())
}

func TestHash_NegativeZero(t *testing.T) {
	t.Parallel()

	pos := MustSecond[int, float64, bool](0)
	neg := MustSecond[int, float64, bool](math.Copysign(0, -1))

	assert.True(t, pos.Equal(neg))
	assert.Equal(t, pos.Hash(), neg.Hash())
}

func TestHash_UsesHasher(t *testing.T) {
	t.Parallel()

	a := MustThird[int, string, account](account{id: 7, tags: []string{"a"}})
	b := MustThird[int, string, account](account{id: 7, tags: []string{"a"}})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First(1)", MustFirst[int, string, bool](1).String())
	assert.Equal(t, "Second(42)", MustSecond[string, int, bool](42).String())
	assert.Equal(t, "Third(done)", MustThird[int, int, string]("done").String())
}
