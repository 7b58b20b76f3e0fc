package rawpnt

import (
	"unsafe"

	"github.com/breeze-go-rust/rawpnt/internal/common"
)

// Const is a read-only address to T. The zero value is nil.
type Const[T any] struct {
	p unsafe.Pointer
}

func ConstOf[T any](p *T) Const[T] {
	return Const[T]{p: unsafe.Pointer(p)}
}

func ConstFromPointer[T any](p unsafe.Pointer) Const[T] {
	return Const[T]{p: p}
}

func (c Const[T]) Offset(i int) Const[T] {
	return Const[T]{p: common.UnsafeIndex(c.p, common.SizeOf[T](), i)}
}

func (c Const[T]) Add(i uint) Const[T] {
	return Const[T]{p: common.UnsafeForward(c.p, common.SizeOf[T](), i)}
}

func (c Const[T]) Sub(i uint) Const[T] {
	return Const[T]{p: common.UnsafeBackward(c.p, common.SizeOf[T](), i)}
}

func (c Const[T]) Pointer() unsafe.Pointer {
	return c.p
}

func (c Const[T]) Addr() uintptr {
	return uintptr(c.p)
}

func (c Const[T]) IsNull() bool {
	return c.p == nil
}

// CastConst reinterprets c as an address to U. The address is unchanged.
func CastConst[U, T any](c Const[T]) Const[U] {
	return Const[U]{p: c.p}
}
