package channel

// Status reports the outcome of a non-blocking channel operation.
type Status int

const (
	// OK means the operation transferred a value.
	OK Status = iota

	// Full means TrySend found no free slot, or could not acquire the
	// channel's lock without waiting.
	Full

	// Empty means TryRecv found no buffered value, or could not acquire
	// the channel's lock without waiting.
	Empty

	// Closed means the channel was closed: for TrySend, new input is
	// refused; for TryRecv, the channel was closed and fully drained.
	Closed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Full:
		return "Full"
	case Empty:
		return "Empty"
	case Closed:
		return "Closed"
	}
	return "Unknown"
}

// TrySend attempts to deposit v without blocking.
//
// The result is a best-effort snapshot, not a linearizable guarantee:
// if another goroutine holds the lock, TrySend reports Full without
// distinguishing contention from a truly full buffer. Callers polling
// from an event loop retry on the next tick either way.
func (ch *Channel[T]) TrySend(v T) Status {
	if !ch.mu.TryLock() {
		return Full
	}
	if ch.closed {
		ch.mu.Unlock()
		return Closed
	}
	if ch.buf.Full() {
		ch.mu.Unlock()
		return Full
	}
	ch.buf.Enqueue(v)
	ch.mu.Unlock()
	ch.dataReady.Broadcast()
	return OK
}

// TryRecv attempts to remove the oldest buffered value without
// blocking. On OK the removed value is returned; otherwise the first
// result is the zero value.
//
// Like TrySend, lock contention is folded into the Empty result.
// Closed is reported only once the channel is closed and drained, so a
// poller can keep consuming the backlog after close.
func (ch *Channel[T]) TryRecv() (T, Status) {
	var zero T
	if !ch.mu.TryLock() {
		return zero, Empty
	}
	if !ch.buf.Empty() {
		v := ch.buf.Dequeue()
		ch.mu.Unlock()
		ch.spaceFree.Broadcast()
		return v, OK
	}
	closed := ch.closed
	ch.mu.Unlock()
	if closed {
		return zero, Closed
	}
	return zero, Empty
}
