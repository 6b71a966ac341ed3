// Package rc measures the cost of shared-ownership pointers to game entities.
//
// Two pointer kinds drive the same workload:
//   - Rc, a minimal reference-counted handle whose count lives next to the
//     value in a block allocated from a chunked Heap.
//   - Ref, a thin adapter over an ordinary garbage-collected pointer.
//
// Both satisfy Shared, so the workload in Game is written once and
// instantiated per pointer kind.
package rc

// Shared is the capability set a handle type must provide to be driven by a
// Game. P is the handle type itself.
//
// Handles are plain values. Copying one by assignment does not add an owner;
// only Clone does, and every handle obtained from Factory.New or Clone must
// be released exactly once.
type Shared[T any, P any] interface {
	// Clone returns a new handle to the same storage and adds one owner.
	// The pointee is not copied.
	Clone() P
	// Get returns the pointee. The pointer must not be used after the
	// handle is released.
	Get() *T
	// Release drops this handle's ownership. The storage is reclaimed when
	// the last owner is released.
	Release()
}

// Factory constructs handles of kind P from values of type T. The returned
// handle is the only owner of the value.
type Factory[T any, P any] interface {
	New(value T) P
}

// Dropper is implemented by values that need teardown when their storage is
// reclaimed. Heap calls Drop exactly once, on the release that takes the
// count to zero.
type Dropper interface {
	Drop()
}
