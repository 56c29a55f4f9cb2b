package channel

import "math/rand/v2"

// Case is one non-blocking attempt, typically a closure over a TrySend
// or TryRecv on some channel. It reports whether it made progress.
type Case func() bool

// None is returned by Select when no case is ready.
const None = -1

// Select evaluates the cases in a fresh uniformly random order and
// returns the index, in the original argument order, of the first case
// that succeeds, or None if none do.
//
// The shuffle keeps a poll loop from structurally favoring its
// first-listed channel when several are ready at once. Select never
// blocks; it is a readiness probe, not an atomic multi-way wait.
func Select(cases ...Case) int {
	for _, i := range rand.Perm(len(cases)) {
		if cases[i]() {
			return i
		}
	}
	return None
}
