// Package projector derives denormalized room views from a cached
// sync snapshot.
//
// The snapshot partitions a room's events across membership categories
// (joined, invited, left) and event kinds (state, timeline, account
// data, invite state). Both the summary derivation and the store's
// event lookup resolve duplicates by scanning those partitions in a
// fixed order; the orders are exported as explicit lists so the
// precedence rules stay auditable and testable.
//
// The projector is pure: it performs no IO and never mutates the
// snapshot or a caller-supplied summary.
package projector
