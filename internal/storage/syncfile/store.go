// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/yndnr/syncvault-go/internal/core/domain"
	"github.com/yndnr/syncvault-go/internal/core/projector"
	"github.com/yndnr/syncvault-go/internal/telemetry/logger"
	"github.com/yndnr/syncvault-go/internal/telemetry/metric"
	"github.com/yndnr/syncvault-go/pkg/cmap"
)

// Config configures a Store. Identity is required; everything else has
// a usable zero value.
type Config struct {
	// SharedDir is the shared storage area root accessible to both the
	// primary and the auxiliary process. Empty selects the per-user
	// cache location.
	SharedDir string

	// Identity is the opaque user identifier that namespaces the
	// cached files. Required.
	Identity string

	// Logger receives diagnostics for every suppressed failure.
	// Defaults to the package default logger.
	Logger logger.Logger

	// Metrics is optional; nil disables recording.
	Metrics *metric.Registry
}

// Store is the facade over the cached snapshot and metadata files.
//
// All methods are safe for concurrent use. Reads block the calling
// goroutine; writes are asynchronous and report their outcome only on
// the returned channel. No operation carries a timeout, so callers in
// wall-clock-constrained hosts must impose their own.
type Store struct {
	paths Paths
	queue *queue
	log   logger.Logger
	met   *metric.Registry

	// summaries memoizes derived display names per (room, seed) for
	// the lifetime of the current snapshot.
	summaries *cmap.Map[string, string]
}

// Open binds a store to an identity and starts its worker. An empty
// identity fails with ErrIdentityRequired: continuing would silently
// read and write the wrong namespace, which is the one condition this
// component refuses to recover from.
func Open(cfg Config) (*Store, error) {
	paths, err := ResolvePaths(cfg.SharedDir, cfg.Identity)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(paths.Dir, DefaultDirPerm); err != nil {
		return nil, fmt.Errorf("syncfile: create namespace dir: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.With("component", "syncfile")

	return &Store{
		paths:     paths,
		queue:     newQueue(log, cfg.Metrics),
		log:       log,
		met:       cfg.Metrics,
		summaries: cmap.New[string, string](),
	}, nil
}

// Paths returns the resolved on-disk locations.
func (s *Store) Paths() Paths {
	return s.paths
}

// GetSnapshot returns the cached snapshot, or nil when the payload
// file is missing, unreadable, or undecodable. The read barriers
// through the worker queue, so it observes every write enqueued
// earlier from the calling goroutine.
func (s *Store) GetSnapshot() *domain.SyncResponse {
	var resp *domain.SyncResponse
	_ = s.queue.barrier("get_snapshot", func() error {
		resp = s.readPayload()
		return nil
	})
	return resp
}

// SetSnapshot replaces the cached snapshot. A nil snapshot removes the
// payload file synchronously on the calling goroutine — note this can
// overtake writes still queued behind it. A non-nil snapshot is
// serialized and written atomically (temp file, fsync, rename) on the
// worker; the returned channel delivers the outcome once for callers
// that need durability confirmation, and is safe to ignore.
func (s *Store) SetSnapshot(resp *domain.SyncResponse) <-chan error {
	if resp == nil {
		s.removeFile(s.paths.Payload, metric.FilePayload)
		s.summaries.Clear()
		done := make(chan error, 1)
		done <- nil
		return done
	}

	return s.queue.enqueue("set_snapshot", func() error {
		data, err := encodePayload(resp)
		if err != nil {
			s.met.ObserveWrite(metric.FilePayload, metric.ResultError, 0)
			return err
		}
		if err := atomicWrite(s.paths.Payload, data); err != nil {
			s.met.ObserveWrite(metric.FilePayload, metric.ResultError, 0)
			return fmt.Errorf("syncfile: write payload: %w", err)
		}
		s.summaries.Clear()
		s.met.ObserveWrite(metric.FilePayload, metric.ResultOK, len(data))
		s.log.Debug("snapshot written", "bytes", len(data))
		return nil
	})
}

// GetAccountData returns the account-data mapping from the metadata
// file, or nil when it is missing or damaged. Damage to the metadata
// file never affects snapshot reads, and vice versa.
func (s *Store) GetAccountData() map[string]json.RawMessage {
	var data map[string]json.RawMessage
	_ = s.queue.barrier("get_account_data", func() error {
		if meta := s.readMetadata(); meta != nil {
			data = meta.AccountData
		}
		return nil
	})
	return data
}

// SetAccountData replaces the account-data field of the metadata
// structure, leaving any other metadata intact. The read-modify-write
// runs as one job on the worker, so concurrent callers on this store
// instance serialize instead of losing updates; writers in separate
// processes remain last-write-wins.
func (s *Store) SetAccountData(accountData map[string]json.RawMessage) <-chan error {
	return s.queue.enqueue("set_account_data", func() error {
		meta := s.readMetadata()
		if meta == nil {
			meta = domain.NewMetadata()
		}
		meta.AccountData = accountData

		data, err := encodeMetadata(meta)
		if err != nil {
			s.met.ObserveWrite(metric.FileMetadata, metric.ResultError, 0)
			return err
		}
		if err := atomicWrite(s.paths.Metadata, data); err != nil {
			s.met.ObserveWrite(metric.FileMetadata, metric.ResultError, 0)
			return fmt.Errorf("syncfile: write metadata: %w", err)
		}
		s.met.ObserveWrite(metric.FileMetadata, metric.ResultOK, len(data))
		return nil
	})
}

// EventWithID returns the first event with the given ID found in the
// room's partitions, scanned in projector.LookupScanOrder, with the
// room ID stamped on. Returns nil when there is no snapshot or no
// match.
func (s *Store) EventWithID(eventID, roomID string) *domain.Event {
	var ev *domain.Event
	_ = s.queue.barrier("event_with_id", func() error {
		ev = projector.LookupEvent(eventID, roomID, s.readPayload())
		return nil
	})
	return ev
}

// RoomSummary derives the room's summary from the cached snapshot.
// When no snapshot exists the input summary is returned unchanged;
// when nothing could be derived and none was supplied, nil. Derived
// names are memoized until the snapshot is replaced or deleted.
func (s *Store) RoomSummary(roomID string, existing *domain.RoomSummary) *domain.RoomSummary {
	var out *domain.RoomSummary
	_ = s.queue.barrier("room_summary", func() error {
		resp := s.readPayload()
		if resp == nil {
			out = existing
			return nil
		}

		seed := ""
		if existing != nil {
			seed = existing.DisplayName
		}
		key := summaryCacheKey(roomID, seed)

		if name, ok := s.summaries.Get(key); ok {
			out = existing.Clone()
			if out == nil {
				out = domain.NewRoomSummary(roomID)
			}
			out.RoomID = roomID
			out.DisplayName = name
			return nil
		}

		out = projector.Project(roomID, resp, existing)
		if out != nil {
			s.summaries.Set(key, out.DisplayName)
		}
		return nil
	})
	return out
}

// DeleteData removes both cache files. Idempotent: deleting an empty
// store is not an error. Runs synchronously on the calling goroutine
// and can therefore overtake previously enqueued writes; callers that
// need strict ordering drain their write channels first.
func (s *Store) DeleteData() {
	s.removeFile(s.paths.Payload, metric.FilePayload)
	s.removeFile(s.paths.Metadata, metric.FileMetadata)
	s.summaries.Clear()
}

// Close drains pending writes and stops the worker. Operations after
// Close report ErrStoreClosed on their completion channel; reads
// return absent.
func (s *Store) Close() {
	s.queue.close()
}

// summaryCacheKey keys the memoized display names. The caller-supplied
// seed participates because it changes the alias-precedence outcome.
func summaryCacheKey(roomID, seed string) string {
	return roomID + ":" + seed
}

// readPayload loads and decodes the snapshot, collapsing every failure
// mode to nil. Worker context only.
func (s *Store) readPayload() *domain.SyncResponse {
	data, err := os.ReadFile(s.paths.Payload)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.met.ObserveRead(metric.FilePayload, metric.ResultMiss)
		} else {
			s.met.ObserveRead(metric.FilePayload, metric.ResultError)
			s.log.Warn("payload unreadable", "error", err)
		}
		return nil
	}
	resp, err := decodePayload(data)
	if err != nil {
		s.met.ObserveRead(metric.FilePayload, metric.ResultCorrupt)
		s.log.Warn("discarding corrupt payload", "error", err)
		return nil
	}
	s.met.ObserveRead(metric.FilePayload, metric.ResultHit)
	return resp
}

// readMetadata loads and decodes the metadata envelope, collapsing
// every failure mode to nil. Worker context only.
func (s *Store) readMetadata() *domain.Metadata {
	data, err := os.ReadFile(s.paths.Metadata)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.met.ObserveRead(metric.FileMetadata, metric.ResultMiss)
		} else {
			s.met.ObserveRead(metric.FileMetadata, metric.ResultError)
			s.log.Warn("metadata unreadable", "error", err)
		}
		return nil
	}
	meta, err := decodeMetadata(data)
	if err != nil {
		s.met.ObserveRead(metric.FileMetadata, metric.ResultCorrupt)
		s.log.Warn("discarding corrupt metadata", "error", err)
		return nil
	}
	s.met.ObserveRead(metric.FileMetadata, metric.ResultHit)
	return meta
}

// removeFile unconditionally deletes one cache file, swallowing every
// error. Missing files are the common case, not a failure.
func (s *Store) removeFile(path, label string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("remove failed", "path", path, "error", err)
		return
	}
	s.met.ObserveDelete(label)
}

// atomicWrite replaces path with data using the write-complete-then-
// visible discipline: temp file in the same directory, fsync, rename.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
