package syncvault_test

import (
	"encoding/json"
	"errors"
	"testing"

	syncvault "github.com/yndnr/syncvault-go"
)

func TestOpen_RoundTrip(t *testing.T) {
	store, err := syncvault.Open(syncvault.Config{
		SharedDir: t.TempDir(),
		Identity:  "@alice:example.org",
		Metrics:   syncvault.NewMetrics(),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	resp := &syncvault.SyncResponse{
		NextBatch: "s7",
		Rooms: syncvault.Rooms{
			Join: map[string]syncvault.JoinedRoom{
				"!ops:example.org": {
					State: syncvault.EventBlock{Events: []syncvault.Event{{
						EventID: "$name",
						Type:    "m.room.name",
						Content: json.RawMessage(`{"name":"Ops"}`),
					}}},
				},
			},
		},
	}
	if err := <-store.SetSnapshot(resp); err != nil {
		t.Fatalf("SetSnapshot: %v", err)
	}

	got := store.GetSnapshot()
	if got == nil || got.NextBatch != "s7" {
		t.Fatalf("GetSnapshot = %+v, want NextBatch s7", got)
	}

	summary := store.RoomSummary("!ops:example.org", nil)
	if summary == nil || summary.DisplayName != "Ops" {
		t.Fatalf("RoomSummary = %+v, want DisplayName Ops", summary)
	}
}

func TestOpen_EmptyIdentity(t *testing.T) {
	_, err := syncvault.Open(syncvault.Config{SharedDir: t.TempDir()})
	if !errors.Is(err, syncvault.ErrIdentityRequired) {
		t.Fatalf("Open err = %v, want ErrIdentityRequired", err)
	}
}

func TestProjectRoomSummary(t *testing.T) {
	resp := &syncvault.SyncResponse{
		Rooms: syncvault.Rooms{
			Join: map[string]syncvault.JoinedRoom{
				"!ops:example.org": {
					State: syncvault.EventBlock{Events: []syncvault.Event{{
						EventID: "$name",
						Type:    "m.room.name",
						Content: json.RawMessage(`{"name":"Ops"}`),
					}}},
				},
			},
		},
	}

	summary := syncvault.ProjectRoomSummary("!ops:example.org", resp, nil)
	if summary == nil || summary.DisplayName != "Ops" {
		t.Fatalf("ProjectRoomSummary = %+v, want DisplayName Ops", summary)
	}
}

func TestResolvePaths(t *testing.T) {
	paths, err := syncvault.ResolvePaths(t.TempDir(), "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if paths.Payload == "" || paths.Metadata == "" {
		t.Fatalf("ResolvePaths returned empty locations: %+v", paths)
	}
}
