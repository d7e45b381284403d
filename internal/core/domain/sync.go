// Package domain defines the core domain models for SyncVault.
package domain

// SyncResponse is the most recent sync snapshot received from the
// protocol server. Field names follow the protocol wire format so the
// payload file stays readable by other clients of the same cache.
type SyncResponse struct {
	// NextBatch is the pagination token to resume syncing from.
	NextBatch string `json:"next_batch,omitempty"`

	// Rooms holds the per-room event partitions, split by membership.
	Rooms Rooms `json:"rooms,omitempty"`
}

// Rooms partitions room data by the user's membership in each room.
type Rooms struct {
	Join   map[string]JoinedRoom  `json:"join,omitempty"`
	Invite map[string]InvitedRoom `json:"invite,omitempty"`
	Leave  map[string]LeftRoom    `json:"leave,omitempty"`
}

// JoinedRoom holds the event partitions of a room the user has joined.
type JoinedRoom struct {
	State       EventBlock `json:"state,omitempty"`
	Timeline    Timeline   `json:"timeline,omitempty"`
	AccountData EventBlock `json:"account_data,omitempty"`
}

// InvitedRoom holds the stripped state of a room the user is invited to.
type InvitedRoom struct {
	InviteState EventBlock `json:"invite_state,omitempty"`
}

// LeftRoom holds the event partitions of a room the user has left.
type LeftRoom struct {
	State       EventBlock `json:"state,omitempty"`
	Timeline    Timeline   `json:"timeline,omitempty"`
	AccountData EventBlock `json:"account_data,omitempty"`
}

// EventBlock wraps a list of events, matching the wire format's
// {"events": [...]} envelope.
type EventBlock struct {
	Events []Event `json:"events,omitempty"`
}

// Timeline is the chronological event partition of a room.
type Timeline struct {
	Events    []Event `json:"events,omitempty"`
	Limited   bool    `json:"limited,omitempty"`
	PrevBatch string  `json:"prev_batch,omitempty"`
}

// IsEmpty reports whether the snapshot carries no room data at all.
func (r *SyncResponse) IsEmpty() bool {
	return r == nil || (len(r.Rooms.Join) == 0 && len(r.Rooms.Invite) == 0 && len(r.Rooms.Leave) == 0)
}
