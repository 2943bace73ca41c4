// Package arena provides the tree's memory allocation abstraction.
//
// Allocation is backed by plain Go values (new(T)); the Go runtime's own
// allocator and garbage collector do the actual memory management. Arena
// only tracks accounting on top of that -- how many values obtained
// through New have not yet been released through Free -- so leaks and
// double frees are observable in tests without needing a custom memory
// layout to make them visible.
package arena

import (
	"reflect"

	"github.com/keyspace/art/internal/invariant"
)

// Allocator is satisfied by both [Arena] and [Recycled].
type Allocator interface {
	alloc()
	release()
}

// Arena allocates each value with new(T) and counts the values obtained
// through New that have not yet been released through Free. The memory
// itself is reclaimed by the garbage collector; Reset only clears the
// count.
type Arena struct {
	live int
}

var _ Allocator = (*Arena)(nil)

func (a *Arena) alloc()   { a.live++ }
func (a *Arena) release() { a.live-- }

// Live reports the number of allocations made through New that have not
// yet been released through Free. A correctly destroyed tree drives this
// back to zero.
func (a *Arena) Live() int { return a.live }

// Reset forgets all outstanding allocations without running finalizers.
func (a *Arena) Reset() { a.live = 0 }

// New allocates a value of type T from the allocator and returns a
// pointer to it.
//
// If a is a [Recycled] allocator holding a released value of type T, that
// value's storage is reused instead of allocating fresh memory.
func New[T any](a Allocator, v T) *T {
	invariant.Assert(a != nil, "allocator must not be nil")

	if r, ok := a.(*Recycled); ok {
		if bucket := r.free[reflect.TypeOf(v)]; len(bucket) > 0 {
			p := bucket[len(bucket)-1].(*T)
			r.free[reflect.TypeOf(v)] = bucket[:len(bucket)-1]
			*p = v
			r.Arena.alloc()

			return p
		}
	}

	p := new(T)
	*p = v
	a.alloc()

	return p
}

// Free releases a value previously obtained from New.
//
// Free does not invalidate p's memory (the Go garbage collector still owns
// it); it only updates the allocator's bookkeeping. A second Free of the
// same pointer is not detected: it decrements the count again, so the
// mistake shows up only as a Live count below the number of values
// actually outstanding. If a is a [Recycled]
// allocator, p's storage is queued for reuse by a later New of the same
// type.
func Free[T any](a Allocator, p *T) {
	invariant.Assert(a != nil, "allocator must not be nil")
	invariant.Assert(p != nil, "cannot free a nil pointer")

	if r, ok := a.(*Recycled); ok {
		if r.free == nil {
			r.free = make(map[reflect.Type][]any)
		}

		t := reflect.TypeOf(*p)
		r.free[t] = append(r.free[t], p)
	}

	a.release()
}

// Bytes copies b into a freshly allocated, arena-owned slice.
//
// Keys and prefixes are stored this way rather than by retaining the
// caller's backing array, so the tree never aliases memory it does not
// own.
func Bytes(_ Allocator, b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out
}
