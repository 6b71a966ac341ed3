package rc

// Ref adapts a garbage-collected pointer to Shared. It is the baseline the
// custom Rc is measured against: cloning copies the pointer and reclamation
// is left to the collector, so Release does nothing and Dropper is never
// called.
type Ref[T any] struct {
	p *T
}

// RefFactory allocates Ref handles on the Go heap.
type RefFactory[T any] struct{}

// New moves value to the heap and returns a handle to it.
func (RefFactory[T]) New(value T) Ref[T] {
	return Ref[T]{p: &value}
}

func (r Ref[T]) Clone() Ref[T] { return r }

func (r Ref[T]) Get() *T { return r.p }

func (r Ref[T]) Release() {}
