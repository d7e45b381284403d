// Package syncfile persists the most recent sync snapshot on disk.
//
// The store holds exactly one snapshot and one metadata blob per
// identity, each in its own file under a namespaced directory inside a
// shared storage area. It is built to be read from a memory- and
// time-constrained auxiliary process (a push-notification handler)
// that cannot resync over the network or open the full local database.
//
// Durability model: writes are replace-whole-file, temp file + fsync +
// rename, so a reader never observes a partially written payload.
// Writes for one store instance execute in FIFO order on a single
// worker goroutine; reads barrier through the same queue, so a read
// observes every write enqueued earlier from the same goroutine.
// Failures never propagate to callers as errors at the facade: reads
// collapse to absent, writes no-op, everything is logged. Callers that
// need durability confirmation wait on the channel a write returns.
//
// There is no cross-process locking. Two store instances pointed at
// the same identity coordinate only through filesystem semantics; the
// Watcher gives an advisory change signal for that arrangement.
package syncfile
