package rawpnt

// Point is implemented by Const, Mut and NonNull. P is the implementing
// type itself, so every operation returns the receiver's variant.
type Point[P any] interface {
	comparable
	// Offset returns the address i elements away. i may be negative.
	Offset(i int) P
}

// Add moves p forward by i elements.
func Add[P Point[P]](p P, i uint) P {
	return p.Offset(int(i))
}

// Sub moves p backward by i elements. The negation wraps, so
// Sub(p, math.MaxUint) is p.Offset(1) rather than a trap.
func Sub[P Point[P]](p P, i uint) P {
	return p.Offset(-int(i))
}

// PreInc advances *p by one element and returns the new value.
func PreInc[P Point[P]](p *P) P {
	*p = (*p).Offset(1)
	return *p
}

// PostInc advances *p by one element and returns the old value.
func PostInc[P Point[P]](p *P) P {
	curr := *p
	*p = curr.Offset(1)
	return curr
}

// PreDec moves *p back by one element and returns the new value.
func PreDec[P Point[P]](p *P) P {
	*p = (*p).Offset(-1)
	return *p
}

// PostDec moves *p back by one element and returns the old value.
func PostDec[P Point[P]](p *P) P {
	curr := *p
	*p = curr.Offset(-1)
	return curr
}

func Inc[P Point[P]](p *P) {
	*p = (*p).Offset(1)
}

func Dec[P Point[P]](p *P) {
	*p = (*p).Offset(-1)
}

// StrideOffset returns the address of element index in a sequence whose
// consecutive elements are stride elements apart.
func StrideOffset[P Point[P]](p P, stride int, index uint) P {
	return p.Offset(stride * int(index))
}
