// Package projector derives denormalized room views from a cached
// sync snapshot.
package projector

import "github.com/yndnr/syncvault-go/internal/core/domain"

// Partition identifies one per-room event collection in a snapshot.
type Partition int

const (
	PartitionInviteState Partition = iota
	PartitionJoinedState
	PartitionJoinedTimeline
	PartitionJoinedAccountData
	PartitionLeftState
	PartitionLeftTimeline
	PartitionLeftAccountData
)

// SummaryScanOrder is the partition order applied when deriving a room
// summary. Account-data partitions carry no name-bearing state events
// and are excluded.
var SummaryScanOrder = []Partition{
	PartitionInviteState,
	PartitionJoinedState,
	PartitionJoinedTimeline,
	PartitionLeftState,
	PartitionLeftTimeline,
}

// LookupScanOrder is the partition order applied when resolving an
// event by ID. The first partition containing a matching ID wins.
var LookupScanOrder = []Partition{
	PartitionInviteState,
	PartitionJoinedState,
	PartitionJoinedTimeline,
	PartitionJoinedAccountData,
	PartitionLeftState,
	PartitionLeftTimeline,
	PartitionLeftAccountData,
}

// String returns the partition name for logs and test failures.
func (p Partition) String() string {
	switch p {
	case PartitionInviteState:
		return "invite_state"
	case PartitionJoinedState:
		return "joined_state"
	case PartitionJoinedTimeline:
		return "joined_timeline"
	case PartitionJoinedAccountData:
		return "joined_account_data"
	case PartitionLeftState:
		return "left_state"
	case PartitionLeftTimeline:
		return "left_timeline"
	case PartitionLeftAccountData:
		return "left_account_data"
	default:
		return "unknown"
	}
}

// EventsIn returns the events of one partition for the given room, or
// nil when the room is absent from that membership category.
func EventsIn(p Partition, roomID string, resp *domain.SyncResponse) []domain.Event {
	if resp == nil {
		return nil
	}
	switch p {
	case PartitionInviteState:
		if room, ok := resp.Rooms.Invite[roomID]; ok {
			return room.InviteState.Events
		}
	case PartitionJoinedState:
		if room, ok := resp.Rooms.Join[roomID]; ok {
			return room.State.Events
		}
	case PartitionJoinedTimeline:
		if room, ok := resp.Rooms.Join[roomID]; ok {
			return room.Timeline.Events
		}
	case PartitionJoinedAccountData:
		if room, ok := resp.Rooms.Join[roomID]; ok {
			return room.AccountData.Events
		}
	case PartitionLeftState:
		if room, ok := resp.Rooms.Leave[roomID]; ok {
			return room.State.Events
		}
	case PartitionLeftTimeline:
		if room, ok := resp.Rooms.Leave[roomID]; ok {
			return room.Timeline.Events
		}
	case PartitionLeftAccountData:
		if room, ok := resp.Rooms.Leave[roomID]; ok {
			return room.AccountData.Events
		}
	}
	return nil
}

// RoomKnown reports whether the room appears in any membership
// category of the snapshot.
func RoomKnown(roomID string, resp *domain.SyncResponse) bool {
	if resp == nil {
		return false
	}
	if _, ok := resp.Rooms.Join[roomID]; ok {
		return true
	}
	if _, ok := resp.Rooms.Invite[roomID]; ok {
		return true
	}
	if _, ok := resp.Rooms.Leave[roomID]; ok {
		return true
	}
	return false
}
