// Package channel provides a bounded, mutex-based message channel.
//
// If you need a fixed-capacity FIFO shared by many producer and consumer
// goroutines, with a close protocol that lets consumers drain the backlog
// before seeing end of stream, and non-blocking try/select variants for
// callers that must never park, then this package is for you.
//
// There is deliberately no timed or cancellable send/receive: callers that
// need bounded waits should poll TrySend/TryRecv or close the channel from
// the outside.
package channel
