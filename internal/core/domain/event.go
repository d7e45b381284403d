// Package domain defines the core domain models for SyncVault.
package domain

import (
	"encoding/json"
	"fmt"
)

// State event types the summary projector derives display names from.
const (
	// EventTypeRoomName carries an explicitly set room name.
	EventTypeRoomName = "m.room.name"

	// EventTypeCanonicalAlias carries the room's primary alias and
	// an optional list of alternate aliases.
	EventTypeCanonicalAlias = "m.room.canonical_alias"

	// EventTypeAliases is the legacy multi-alias state event.
	EventTypeAliases = "m.room.aliases"
)

// Event is a single room event as embedded in a sync snapshot.
//
// Room-scoped events commonly omit RoomID on the wire because the room
// is implied by the enclosing partition; the store stamps it back on
// before returning an event to a caller.
type Event struct {
	EventID        string          `json:"event_id,omitempty"`
	Type           string          `json:"type"`
	Sender         string          `json:"sender,omitempty"`
	StateKey       *string         `json:"state_key,omitempty"`
	RoomID         string          `json:"room_id,omitempty"`
	OriginServerTS int64           `json:"origin_server_ts,omitempty"`
	Content        json.RawMessage `json:"content,omitempty"`
	Unsigned       json.RawMessage `json:"unsigned,omitempty"`
}

// RoomNameContent is the content of an m.room.name event.
type RoomNameContent struct {
	Name string `json:"name"`
}

// CanonicalAliasContent is the content of an m.room.canonical_alias event.
type CanonicalAliasContent struct {
	Alias      string   `json:"alias,omitempty"`
	AltAliases []string `json:"alt_aliases,omitempty"`
}

// AliasesContent is the content of a legacy m.room.aliases event.
type AliasesContent struct {
	Aliases []string `json:"aliases,omitempty"`
}

// NameContent decodes the event content as an m.room.name payload.
func (e Event) NameContent() (RoomNameContent, error) {
	var c RoomNameContent
	if e.Type != EventTypeRoomName {
		return c, fmt.Errorf("domain: event type %q is not %s", e.Type, EventTypeRoomName)
	}
	if err := json.Unmarshal(e.Content, &c); err != nil {
		return RoomNameContent{}, fmt.Errorf("domain: decode %s content: %w", EventTypeRoomName, err)
	}
	return c, nil
}

// CanonicalAliasContent decodes the event content as an
// m.room.canonical_alias payload.
func (e Event) CanonicalAliasContent() (CanonicalAliasContent, error) {
	var c CanonicalAliasContent
	if e.Type != EventTypeCanonicalAlias {
		return c, fmt.Errorf("domain: event type %q is not %s", e.Type, EventTypeCanonicalAlias)
	}
	if err := json.Unmarshal(e.Content, &c); err != nil {
		return CanonicalAliasContent{}, fmt.Errorf("domain: decode %s content: %w", EventTypeCanonicalAlias, err)
	}
	return c, nil
}

// AliasesContent decodes the event content as a legacy m.room.aliases payload.
func (e Event) AliasesContent() (AliasesContent, error) {
	var c AliasesContent
	if e.Type != EventTypeAliases {
		return c, fmt.Errorf("domain: event type %q is not %s", e.Type, EventTypeAliases)
	}
	if err := json.Unmarshal(e.Content, &c); err != nil {
		return AliasesContent{}, fmt.Errorf("domain: decode %s content: %w", EventTypeAliases, err)
	}
	return c, nil
}
