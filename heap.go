package rc

import (
	"log/slog"
	"reflect"
)

// ChunkSize is the number of blocks a Heap allocates each time it grows.
const ChunkSize = 1024

// block is the unit of storage behind an Rc: the live handle count sits
// next to the value it guards.
type block[T any] struct {
	count int      // live handles, 0 while the block is on the free list
	heap  *Heap[T] // owning heap, set once when the chunk is created
	value T
}

// chunk holds fixed-size storage for ChunkSize blocks.
type chunk[T any] struct {
	blocks [ChunkSize]block[T]
}

// dropMode selects how reclaim finds a value's teardown.
type dropMode uint8

const (
	dropNone  dropMode = iota
	dropValue          // T is a pointer or interface whose value may implement Dropper
	dropAddr           // *T implements Dropper
)

// Stats describes the bookkeeping state of a Heap.
type Stats struct {
	Chunks   int // Number of chunks allocated so far.
	Capacity int // Total number of blocks across all chunks.
	Live     int // Blocks currently owned by at least one handle.
	Allocs   int // Blocks handed out since the heap was created.
	Frees    int // Blocks reclaimed since the heap was created.
}

// Heap is a chunked arena of reference-counted blocks. Reclaimed blocks go on
// a LIFO free list and are reused before fresh slots are taken.
//
// A Heap and every Rc allocated from it must stay on one goroutine. Nothing
// is synchronized; sharing them across goroutines is a data race.
type Heap[T any] struct {
	logger   *slog.Logger
	chunks   []*chunk[T]
	recycled []*block[T] // stack of reclaimed blocks
	cursor   int         // next never-used slot across chunks
	drop     dropMode
	stats    Stats
}

// NewHeap creates a Heap with room for at least initialCapacity blocks
// before it has to grow.
func NewHeap[T any](initialCapacity int) *Heap[T] {
	if initialCapacity < 0 {
		panic("rc: negative heap capacity")
	}
	h := &Heap[T]{
		logger: slog.Default(),
		drop:   dropModeFor[T](),
	}
	for h.stats.Capacity < initialCapacity {
		h.addChunk()
	}
	return h
}

// SetLogger replaces the logger used for growth diagnostics. A nil logger
// restores the default one.
func (h *Heap[T]) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	h.logger = l
}

// New moves value into a fresh block and returns its first handle.
func (h *Heap[T]) New(value T) Rc[T] {
	b := h.alloc()
	b.count = 1
	b.value = value
	h.stats.Allocs++
	h.stats.Live++
	return Rc[T]{b: b}
}

// Stats returns a snapshot of the heap's bookkeeping.
func (h *Heap[T]) Stats() Stats {
	return h.stats
}

// alloc pops a recycled block or takes the next unused slot, growing the
// heap when every chunk is full.
func (h *Heap[T]) alloc() *block[T] {
	if n := len(h.recycled); n > 0 {
		b := h.recycled[n-1]
		h.recycled = h.recycled[:n-1]
		return b
	}
	if h.cursor == h.stats.Capacity {
		h.addChunk()
		h.logger.Debug("rc heap grown", "chunks", h.stats.Chunks, "capacity", h.stats.Capacity)
	}
	b := &h.chunks[h.cursor/ChunkSize].blocks[h.cursor%ChunkSize]
	h.cursor++
	return b
}

// addChunk appends one chunk and links its blocks back to the heap.
func (h *Heap[T]) addChunk() {
	c := &chunk[T]{}
	for i := range c.blocks {
		c.blocks[i].heap = h
	}
	h.chunks = append(h.chunks, c)
	h.stats.Chunks++
	h.stats.Capacity += ChunkSize
}

// reclaim runs the value's teardown, clears it so the collector can see
// through anything it referenced, and puts the block on the free list.
func (h *Heap[T]) reclaim(b *block[T]) {
	switch h.drop {
	case dropAddr:
		any(&b.value).(Dropper).Drop()
	case dropValue:
		if d, ok := any(b.value).(Dropper); ok && !isNilPointer(d) {
			d.Drop()
		}
	}
	var zero T
	b.value = zero
	h.recycled = append(h.recycled, b)
	h.stats.Frees++
	h.stats.Live--
}

func dropModeFor[T any]() dropMode {
	t := reflect.TypeFor[T]()
	dropper := reflect.TypeFor[Dropper]()
	switch {
	case t.Kind() == reflect.Interface:
		return dropValue
	case t.Kind() == reflect.Pointer && t.Implements(dropper):
		return dropValue
	case reflect.PointerTo(t).Implements(dropper):
		return dropAddr
	}
	return dropNone
}

// isNilPointer reports whether d holds a nil pointer, which has nothing to
// tear down.
func isNilPointer(d Dropper) bool {
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
