package pool

import "sync"

var complex128SlicePool = sync.Pool{
	New: func() any { return &[]complex128{} },
}

// GetComplex128Slice retrieves a complex128 slice of exactly size elements from the pool.
//
// The contents of the returned slice are undefined. The caller must call the
// returned cleanup function, typically with defer, to give the slice back.
//
// Example:
//
//	params, cleanup := pool.GetComplex128Slice(len(realParams))
//	defer cleanup()
func GetComplex128Slice(size int) ([]complex128, func()) {
	ptr, _ := complex128SlicePool.Get().(*[]complex128)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]complex128, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { complex128SlicePool.Put(ptr) }
}
