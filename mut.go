package rawpnt

import (
	"unsafe"

	"github.com/breeze-go-rust/rawpnt/internal/common"
)

// Mut is a read/write address to T. The zero value is nil.
type Mut[T any] struct {
	p unsafe.Pointer
}

func MutOf[T any](p *T) Mut[T] {
	return Mut[T]{p: unsafe.Pointer(p)}
}

func MutFromPointer[T any](p unsafe.Pointer) Mut[T] {
	return Mut[T]{p: p}
}

func (m Mut[T]) Offset(i int) Mut[T] {
	return Mut[T]{p: common.UnsafeIndex(m.p, common.SizeOf[T](), i)}
}

func (m Mut[T]) Add(i uint) Mut[T] {
	return Mut[T]{p: common.UnsafeForward(m.p, common.SizeOf[T](), i)}
}

func (m Mut[T]) Sub(i uint) Mut[T] {
	return Mut[T]{p: common.UnsafeBackward(m.p, common.SizeOf[T](), i)}
}

func (m Mut[T]) Ptr() *T {
	return (*T)(m.p)
}

func (m Mut[T]) Pointer() unsafe.Pointer {
	return m.p
}

func (m Mut[T]) Addr() uintptr {
	return uintptr(m.p)
}

func (m Mut[T]) IsNull() bool {
	return m.p == nil
}

// Const drops write access.
func (m Mut[T]) Const() Const[T] {
	return Const[T]{p: m.p}
}

// NonNull refines m, reporting false if m is nil.
func (m Mut[T]) NonNull() (NonNull[T], bool) {
	if m.p == nil {
		return NonNull[T]{}, false
	}
	return NonNull[T]{m: m}, true
}

// CastMut reinterprets m as an address to U. The address is unchanged.
func CastMut[U, T any](m Mut[T]) Mut[U] {
	return Mut[U]{p: m.p}
}
