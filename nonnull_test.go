package rawpnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeze-go-rust/rawpnt/internal/common"
)

func TestNewNonNull(t *testing.T) {
	var x uint64
	n, ok := NewNonNull(&x)
	require.True(t, ok)
	assert.Same(t, &x, n.Ptr())
	assert.False(t, n.IsNull())
	assert.Equal(t, MutOf(&x), n.Mut())
	assert.Equal(t, ConstOf(&x), n.Const())

	_, ok = NewNonNull[uint64](nil)
	assert.False(t, ok)
}

func TestNonNullStaysNonNull(t *testing.T) {
	var buf [16]int16
	n := NewNonNullUnchecked(&buf[8])

	n = n.Offset(3)
	n = Add(n, 2)
	n = Sub(n, 7)
	Inc(&n)
	PreInc(&n)
	PostInc(&n)
	Dec(&n)
	PreDec(&n)
	PostDec(&n)
	n = StrideOffset(n, 2, 3)
	n = StrideOffset(n, -3, 2)

	assert.False(t, n.IsNull())
	assert.Same(t, &buf[6], n.Ptr())
}

func TestNonNullOffsetDelegatesToMut(t *testing.T) {
	var buf [8]pair
	n := NewNonNullUnchecked(&buf[4])
	for _, i := range []int{-4, -1, 0, 1, 3} {
		assert.Equal(t, n.Mut().Offset(i), n.Offset(i).Mut())
	}
}

func TestCastNonNull(t *testing.T) {
	var buf [2]uint64
	n := NewNonNullUnchecked(&buf[0])
	words := CastNonNull[uint32](n)
	assert.Equal(t, n.Addr(), words.Addr())
	assert.Equal(t, NewNonNullUnchecked(&buf[1]).Addr(), Add(words, 2).Addr())
}

func TestNewNonNullUncheckedVerification(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		restore := common.EnableVerifications(common.EnvVerifyValueAssert)
		defer restore()
		assert.PanicsWithValue(t,
			"assertion failed: rawpnt: NewNonNullUnchecked called with nil *int",
			func() { NewNonNullUnchecked[int](nil) })

		var x int
		assert.NotPanics(t, func() { NewNonNullUnchecked(&x) })
	})

	t.Run("disabled", func(t *testing.T) {
		restore := common.DisableVerifications()
		defer restore()
		var n NonNull[int]
		assert.NotPanics(t, func() { n = NewNonNullUnchecked[int](nil) })
		// The precondition is the caller's; nothing repairs a broken one.
		assert.True(t, n.IsNull())
	})
}
