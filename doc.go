// Package rawpnt provides element-size-aware arithmetic over raw addresses.
//
// Three address variants are supported: Const (read-only), Mut (read/write)
// and NonNull (a Mut that never holds nil). Each implements Offset; the
// remaining operations (Add, Sub, PreInc, PostInc, PreDec, PostDec, Inc,
// Dec, StrideOffset) are generic functions written once on top of Offset
// and instantiated statically per variant. Distance counts the elements
// between two addresses of the same type.
//
// Every count is an element count. Nothing here dereferences, allocates,
// or checks bounds. The caller upholds the unsafe.Pointer rules: a result
// must stay inside the allocation its operand points into, and, unlike C,
// Go does not allow even a one-past-the-end address for a heap object.
// Breaking that is undefined behavior, not a reported error.
//
// Set RAWPNT_VERIFY=assert to have NewNonNullUnchecked assert its argument.
// Arithmetic never consults the setting.
package rawpnt
