package rawpnt

import "unsafe"

func unsafePointer[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
