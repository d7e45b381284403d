// Package domain defines the core domain models for SyncVault.
package domain

// RoomSummary is the derived, denormalized view of a room. It is never
// persisted by this module; callers may supply a pre-populated summary
// for a partial update, or receive a freshly constructed one.
type RoomSummary struct {
	// RoomID identifies the room the summary describes.
	RoomID string `json:"room_id"`

	// DisplayName is the derived human-readable room label. Empty
	// when no name could be derived and none was supplied.
	DisplayName string `json:"display_name,omitempty"`
}

// NewRoomSummary creates an empty summary for the given room.
func NewRoomSummary(roomID string) *RoomSummary {
	return &RoomSummary{RoomID: roomID}
}

// Clone returns a copy so a caller-supplied summary is never mutated.
func (s *RoomSummary) Clone() *RoomSummary {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
