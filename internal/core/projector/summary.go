// Package projector derives denormalized room views from a cached
// sync snapshot.
package projector

import "github.com/yndnr/syncvault-go/internal/core/domain"

// Project derives the display name for roomID from the snapshot and
// returns the resulting summary.
//
// Events are scanned in SummaryScanOrder. Per event kind:
//
//   - m.room.name overwrites the display name unconditionally; a later
//     name event always wins over anything already set, including a
//     previously alias-derived name.
//   - m.room.canonical_alias fills the display name only when it is
//     currently unset, from the primary alias, falling back to the
//     first alternate alias.
//   - m.room.aliases (legacy) fills only when unset, from the first
//     entry of its alias list.
//
// The scan starts from the caller-supplied summary's display name, so
// alias events never displace a pre-populated value while name events
// do. When existing is nil and the room appears nowhere in the
// snapshot, Project returns nil; a nil snapshot returns existing
// unchanged. The inputs are never mutated.
func Project(roomID string, resp *domain.SyncResponse, existing *domain.RoomSummary) *domain.RoomSummary {
	if resp == nil {
		return existing
	}
	if existing == nil && !RoomKnown(roomID, resp) {
		return nil
	}

	summary := existing.Clone()
	if summary == nil {
		summary = domain.NewRoomSummary(roomID)
	}
	summary.RoomID = roomID

	for _, p := range SummaryScanOrder {
		for _, ev := range EventsIn(p, roomID, resp) {
			applyNameEvent(summary, ev)
		}
	}
	return summary
}

func applyNameEvent(summary *domain.RoomSummary, ev domain.Event) {
	switch ev.Type {
	case domain.EventTypeRoomName:
		c, err := ev.NameContent()
		if err != nil {
			return
		}
		summary.DisplayName = c.Name

	case domain.EventTypeCanonicalAlias:
		if summary.DisplayName != "" {
			return
		}
		c, err := ev.CanonicalAliasContent()
		if err != nil {
			return
		}
		if c.Alias != "" {
			summary.DisplayName = c.Alias
		} else if len(c.AltAliases) > 0 && c.AltAliases[0] != "" {
			summary.DisplayName = c.AltAliases[0]
		}

	case domain.EventTypeAliases:
		if summary.DisplayName != "" {
			return
		}
		c, err := ev.AliasesContent()
		if err != nil {
			return
		}
		if len(c.Aliases) > 0 && c.Aliases[0] != "" {
			summary.DisplayName = c.Aliases[0]
		}
	}
}

// LookupEvent resolves an event by ID for the given room, scanning the
// partitions in LookupScanOrder and returning the first match. The
// room ID is stamped onto the returned copy because room-scoped events
// embedded in a snapshot commonly omit it. Returns nil when there is
// no snapshot or no match.
func LookupEvent(eventID, roomID string, resp *domain.SyncResponse) *domain.Event {
	if resp == nil || eventID == "" {
		return nil
	}
	for _, p := range LookupScanOrder {
		for _, ev := range EventsIn(p, roomID, resp) {
			if ev.EventID == eventID {
				found := ev
				found.RoomID = roomID
				return &found
			}
		}
	}
	return nil
}
