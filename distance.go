package rawpnt

import "github.com/breeze-go-rust/rawpnt/internal/common"

// Distance returns the number of T elements from start to end. end must
// not precede start. When T has size zero there is no unit to count in,
// so the raw byte difference is returned instead.
func Distance[T any](start, end Const[T]) uint {
	diff := common.UnsafeDiff(start.p, end.p)
	if size := common.SizeOf[T](); size != 0 {
		return uint(diff / size)
	}
	return uint(diff)
}

// SizeOf returns the element size used to scale every count for T.
func SizeOf[T any]() uintptr {
	return common.SizeOf[T]()
}
