package common

import "unsafe"

// SizeOf returns the byte size of T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// UnsafeIndex returns base moved by n elements of elemsz bytes each.
// n may be negative.
func UnsafeIndex(base unsafe.Pointer, elemsz uintptr, n int) unsafe.Pointer {
	return unsafe.Add(base, n*int(elemsz))
}

// UnsafeForward returns base moved forward by n elements of elemsz bytes each.
func UnsafeForward(base unsafe.Pointer, elemsz uintptr, n uint) unsafe.Pointer {
	return unsafe.Add(base, uintptr(n)*elemsz)
}

// UnsafeBackward returns base moved backward by n elements of elemsz bytes each.
// The byte count wraps, so n == math.MaxUint lands one element forward.
func UnsafeBackward(base unsafe.Pointer, elemsz uintptr, n uint) unsafe.Pointer {
	return unsafe.Add(base, -(uintptr(n) * elemsz))
}

// UnsafeDiff returns end - start in bytes, wrapping on underflow.
func UnsafeDiff(start, end unsafe.Pointer) uintptr {
	return uintptr(end) - uintptr(start)
}
