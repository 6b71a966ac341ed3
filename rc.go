package rc

// Rc is a single-goroutine reference-counted handle to a value stored in a
// Heap. The zero Rc is nil and must not be cloned, dereferenced or released.
//
// Clone and Release update the count with a plain read and write. There is
// no atomic operation and no runtime check: releasing a handle twice, using
// a value after its last handle is released, or touching handles to the same
// block from more than one goroutine corrupts the count and is undefined.
// The race detector reports the cross-goroutine case under go test -race.
type Rc[T any] struct {
	b *block[T]
}

// Clone adds an owner and returns a handle to the same block.
func (r Rc[T]) Clone() Rc[T] {
	r.b.count = r.b.count + 1
	return Rc[T]{b: r.b}
}

// Get returns the shared value. The count is not touched.
func (r Rc[T]) Get() *T {
	return &r.b.value
}

// Release drops this owner. The release that takes the count to zero hands
// the block back to its heap.
func (r Rc[T]) Release() {
	b := r.b
	b.count = b.count - 1
	if b.count == 0 {
		b.heap.reclaim(b)
	}
}

// Count returns the number of live handles to the block.
func (r Rc[T]) Count() int {
	return r.b.count
}

// IsNil reports whether r is the zero handle.
func (r Rc[T]) IsNil() bool {
	return r.b == nil
}
