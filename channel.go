package channel

import (
	"fmt"
	"sync"

	"github.com/five-vee/channel/internal/ring"
)

var (
	// ErrCapacity is the error corresponding to wrong capacity.
	ErrCapacity = fmt.Errorf("capacity must be positive")

	// ErrClosed is the error corresponding to sending on a closed
	// channel.
	ErrClosed = fmt.Errorf("send on closed channel")
)

// Channel is a bounded FIFO shared by reference among producer and
// consumer goroutines. The zero value is not usable; construct with New.
//
// A Channel must not be copied after first use. All of its state — the
// buffer, its cursors, and the closed flag — is guarded by one mutex, so
// no operation ever observes a torn combination of fields.
type Channel[T any] struct {
	mu     sync.Mutex
	buf    *ring.Ring[T]
	closed bool

	// spaceFree is signaled when a slot frees up or the channel closes;
	// dataReady when a slot fills up or the channel closes.
	spaceFree *sync.Cond
	dataReady *sync.Cond
}

// New returns a channel holding at most capacity values.
// Returns ErrCapacity if capacity is not positive.
func New[T any](capacity int) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	ch := &Channel[T]{buf: ring.New[T](capacity)}
	ch.spaceFree = sync.NewCond(&ch.mu)
	ch.dataReady = sync.NewCond(&ch.mu)
	return ch, nil
}

// Send deposits v into the channel, blocking while the buffer is full.
// Returns ErrClosed if the channel is closed before v is deposited, in
// which case v is not enqueued; a send never partially applies.
func (ch *Channel[T]) Send(v T) error {
	ch.mu.Lock()
	for ch.buf.Full() && !ch.closed {
		// Re-check after waking: another sender may have taken the
		// freed slot, and wakeups may be spurious.
		ch.spaceFree.Wait()
	}
	if ch.closed {
		ch.mu.Unlock()
		return ErrClosed
	}
	ch.buf.Enqueue(v)
	ch.mu.Unlock()
	// Broadcast, not Signal: several receivers may be parked and at
	// most one of them can win the slot after re-checking.
	ch.dataReady.Broadcast()
	return nil
}

// Recv removes and returns the oldest value in the channel, blocking
// while the buffer is empty and the channel is open. The second result
// is false once the channel is closed and drained: end of stream, the
// normal terminal result, not an error.
func (ch *Channel[T]) Recv() (T, bool) {
	ch.mu.Lock()
	for ch.buf.Empty() && !ch.closed {
		ch.dataReady.Wait()
	}
	if ch.buf.Empty() {
		// Closed and drained: terminal state.
		ch.mu.Unlock()
		var zero T
		return zero, false
	}
	v := ch.buf.Dequeue()
	ch.mu.Unlock()
	ch.spaceFree.Broadcast()
	return v, true
}

// Close marks the channel closed and wakes every parked sender and
// receiver. Close is idempotent and never fails. Values buffered at
// close time remain receivable in order; only new sends are refused.
func (ch *Channel[T]) Close() {
	ch.mu.Lock()
	ch.closed = true
	ch.mu.Unlock()
	// Both sides: parked senders must fail with ErrClosed, parked
	// receivers must drain or observe end of stream.
	ch.spaceFree.Broadcast()
	ch.dataReady.Broadcast()
}

// Len returns the number of buffered values at some instant between the
// call and the return. It is a snapshot: the value may be stale by the
// time the caller acts on it.
func (ch *Channel[T]) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.buf.Len()
}

// Cap returns the channel's capacity, fixed at construction.
func (ch *Channel[T]) Cap() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.buf.Cap()
}
