// Package ring implements the fixed-capacity circular storage underlying
// a channel. A Ring is not safe for concurrent use; the owning channel's
// lock mediates every access.
package ring

// Ring is a fixed-capacity circular buffer.
// Values are enqueued at the tail and dequeued at the head, both in O(1).
type Ring[T any] struct {
	slots []T
	head  int
	tail  int
	count int
}

// New returns an empty ring of the given capacity.
// The caller is responsible for validating that capacity is positive.
func New[T any](capacity int) *Ring[T] {
	return &Ring[T]{slots: make([]T, capacity)}
}

// Enqueue writes v into the tail slot and advances the tail.
// Panics if the ring is full; callers check Full() first.
func (r *Ring[T]) Enqueue(v T) {
	if r.count == len(r.slots) {
		panic("ring: enqueue on full ring")
	}
	r.slots[r.tail] = v
	r.tail = (r.tail + 1) % len(r.slots)
	r.count++
}

// Dequeue removes and returns the value in the head slot and advances
// the head. The vacated slot is zeroed so the ring does not pin the
// value's referents. Panics if the ring is empty; callers check Empty()
// first.
func (r *Ring[T]) Dequeue() T {
	if r.count == 0 {
		panic("ring: dequeue on empty ring")
	}
	var zero T
	v := r.slots[r.head]
	r.slots[r.head] = zero
	r.head = (r.head + 1) % len(r.slots)
	r.count--
	return v
}

// Len returns the number of occupied slots.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the total number of slots.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// Full reports whether every slot is occupied.
func (r *Ring[T]) Full() bool { return r.count == len(r.slots) }

// Empty reports whether no slot is occupied.
func (r *Ring[T]) Empty() bool { return r.count == 0 }
