package arena

import "reflect"

// Recycled is an arena allocator that reuses released values.
//
// It embeds [Arena] to satisfy new allocations and inherit its accounting,
// and maintains one free list per concrete type so that a later New of the
// same type can be handed back a previously released allocation instead of
// a fresh one. Free lists are keyed by reflect.Type and store the released
// pointers directly, since allocation here is plain Go values rather than
// raw bytes carved out of a shared buffer. See New and Free in arena.go for
// the type-safe pop/push logic.
type Recycled struct {
	Arena

	free map[reflect.Type][]any
}

var _ Allocator = (*Recycled)(nil)

// Reset discards all free lists along with the embedded arena's accounting.
func (r *Recycled) Reset() {
	r.Arena.Reset()
	r.free = nil
}
