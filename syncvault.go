// Package syncvault is a persistent, crash-tolerant on-disk cache of
// the most recent sync response from a messaging protocol server.
//
// It is built for the split-process arrangement where a primary
// application process keeps the cache fresh and a restricted auxiliary
// process (such as a push-notification handler) answers "did event X
// arrive" and "what should room Y be labeled" from the cache alone,
// without a network resync or the full local database.
//
//	store, err := syncvault.Open(syncvault.Config{
//		SharedDir: sharedContainerDir,
//		Identity:  "@alice:example.org",
//	})
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	done := store.SetSnapshot(resp) // asynchronous, FIFO
//	if err := <-done; err != nil {  // optional durability confirmation
//		...
//	}
//	cached := store.GetSnapshot() // nil means cache miss
//
// This package re-exports the implementation under internal/; see
// internal/storage/syncfile for the durability and ordering contract.
package syncvault

import (
	"github.com/yndnr/syncvault-go/internal/core/domain"
	"github.com/yndnr/syncvault-go/internal/core/projector"
	"github.com/yndnr/syncvault-go/internal/storage/syncfile"
	"github.com/yndnr/syncvault-go/internal/telemetry/metric"
)

// Store facade and its configuration.
type (
	Config  = syncfile.Config
	Store   = syncfile.Store
	Paths   = syncfile.Paths
	Watcher = syncfile.Watcher
	Metrics = metric.Registry
)

// Domain model.
type (
	SyncResponse = domain.SyncResponse
	Rooms        = domain.Rooms
	JoinedRoom   = domain.JoinedRoom
	InvitedRoom  = domain.InvitedRoom
	LeftRoom     = domain.LeftRoom
	EventBlock   = domain.EventBlock
	Timeline     = domain.Timeline
	Event        = domain.Event
	Metadata     = domain.Metadata
	RoomSummary  = domain.RoomSummary
)

// Sentinel errors surfaced by Open and write completion channels.
var (
	ErrIdentityRequired = syncfile.ErrIdentityRequired
	ErrStoreClosed      = syncfile.ErrStoreClosed
)

// Open binds a store to an identity and starts its worker.
func Open(cfg Config) (*Store, error) {
	return syncfile.Open(cfg)
}

// ResolvePaths computes the on-disk locations without opening a store.
func ResolvePaths(sharedDir, identity string) (Paths, error) {
	return syncfile.ResolvePaths(sharedDir, identity)
}

// NewWatcher watches an identity's cache files for replacement by
// another process.
func NewWatcher(paths Paths) (*Watcher, error) {
	return syncfile.NewWatcher(paths, nil)
}

// NewMetrics creates a metrics registry to pass in Config.Metrics.
func NewMetrics() *Metrics {
	return metric.NewRegistry()
}

// ProjectRoomSummary derives a room summary from an already
// materialized snapshot, without touching disk.
func ProjectRoomSummary(roomID string, resp *SyncResponse, existing *RoomSummary) *RoomSummary {
	return projector.Project(roomID, resp, existing)
}
