package rawpnt

import (
	"unsafe"

	"github.com/breeze-go-rust/rawpnt/internal/common"
)

// NonNull is a read/write address to T that is never nil.
//
// Only Offset is specialized; Add, Sub and the increment family come from
// the generic functions. Offsetting assumes the result is still non-nil
// and does not check it. The zero value is not a valid NonNull.
type NonNull[T any] struct {
	m Mut[T]
}

// NewNonNull wraps p, reporting false if p is nil.
func NewNonNull[T any](p *T) (NonNull[T], bool) {
	return MutOf(p).NonNull()
}

// NewNonNullUnchecked wraps p, which must not be nil. The precondition is
// asserted only when RAWPNT_VERIFY enables assertions.
func NewNonNullUnchecked[T any](p *T) NonNull[T] {
	common.Verify(func() {
		common.Assert(p != nil, "rawpnt: NewNonNullUnchecked called with nil %T", p)
	})
	return NonNull[T]{m: MutOf(p)}
}

func (n NonNull[T]) Offset(i int) NonNull[T] {
	return NonNull[T]{m: n.m.Offset(i)}
}

func (n NonNull[T]) Ptr() *T {
	return n.m.Ptr()
}

func (n NonNull[T]) Pointer() unsafe.Pointer {
	return n.m.Pointer()
}

func (n NonNull[T]) Addr() uintptr {
	return n.m.Addr()
}

// IsNull reports the actual state of the address. It is false for any
// NonNull built from a non-nil address and offset within its allocation.
func (n NonNull[T]) IsNull() bool {
	return n.m.IsNull()
}

func (n NonNull[T]) Mut() Mut[T] {
	return n.m
}

func (n NonNull[T]) Const() Const[T] {
	return n.m.Const()
}

// CastNonNull reinterprets n as an address to U. The address is unchanged.
func CastNonNull[U, T any](n NonNull[T]) NonNull[U] {
	return NonNull[U]{m: CastMut[U](n.m)}
}
