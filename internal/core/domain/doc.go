// Package domain defines the core domain models for SyncVault.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - SyncResponse: the cached sync snapshot with its per-room partitions
//   - Event: a single room event and typed content accessors
//   - Metadata: the secondary account-data structure
//   - RoomSummary: the derived, denormalized room view
//
// A SyncResponse is immutable once materialized: the store replaces it
// wholesale on every write and never merges it with a previous snapshot.
package domain
