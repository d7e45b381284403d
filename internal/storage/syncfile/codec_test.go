package syncfile

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/yndnr/syncvault-go/internal/core/domain"
)

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func TestPayloadCodec_RoundTrip(t *testing.T) {
	resp := &domain.SyncResponse{
		NextBatch: "s72594_4483_1934",
		Rooms: domain.Rooms{
			Join: map[string]domain.JoinedRoom{
				"!r:x": {
					State: domain.EventBlock{Events: []domain.Event{{
						EventID: "$1",
						Type:    domain.EventTypeRoomName,
						Content: json.RawMessage(`{"name":"Ops"}`),
					}}},
					Timeline: domain.Timeline{Limited: true, PrevBatch: "p1"},
				},
			},
			Invite: map[string]domain.InvitedRoom{
				"!i:x": {InviteState: domain.EventBlock{Events: []domain.Event{{
					EventID: "$2",
					Type:    "m.room.member",
					Content: json.RawMessage(`{"membership":"invite"}`),
				}}}},
			},
		},
	}

	data, err := encodePayload(resp)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	got, err := decodePayload(data)
	if err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if !reflect.DeepEqual(got, resp) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, resp)
	}
}

func TestPayloadCodec_FailsClosed(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("not json"),
		[]byte(`{"rooms": {"join": 42}}`),
		[]byte(`{"next_batch"`),
	} {
		if _, err := decodePayload(data); !errors.Is(err, ErrCorruptPayload) {
			t.Fatalf("decodePayload(%q) err = %v, want ErrCorruptPayload", data, err)
		}
	}
}

func TestMetadataCodec_RoundTrip(t *testing.T) {
	meta := domain.NewMetadata()
	meta.AccountData["m.push_rules"] = json.RawMessage(`{"global":{}}`)
	meta.AccountData["m.direct"] = json.RawMessage(`{"@bob:x":["!r:x"]}`)

	data, err := encodeMetadata(meta)
	if err != nil {
		t.Fatalf("encodeMetadata: %v", err)
	}
	got, err := decodeMetadata(data)
	if err != nil {
		t.Fatalf("decodeMetadata: %v", err)
	}
	if !reflect.DeepEqual(got.AccountData, meta.AccountData) {
		t.Fatalf("round trip mismatch:\ngot  %v\nwant %v", got.AccountData, meta.AccountData)
	}
}

func TestMetadataCodec_ChecksumMismatch(t *testing.T) {
	meta := domain.NewMetadata()
	meta.AccountData["k"] = json.RawMessage(`"v"`)
	data, err := encodeMetadata(meta)
	if err != nil {
		t.Fatalf("encodeMetadata: %v", err)
	}

	// Flip one byte inside the body.
	data[len(metaMagic)+6] ^= 0xFF
	if _, err := decodeMetadata(data); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
}

func TestMetadataCodec_InvalidMagic(t *testing.T) {
	meta := domain.NewMetadata()
	data, err := encodeMetadata(meta)
	if err != nil {
		t.Fatalf("encodeMetadata: %v", err)
	}

	// Rewrite the magic and recompute a valid checksum so the magic
	// check is what fails.
	copy(data, "BADMAGIC")
	body := data[:len(data)-checksumSize]
	sum := sha256Sum(body)
	copy(data[len(data)-checksumSize:], sum)

	if _, err := decodeMetadata(data); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("err = %v, want ErrInvalidMagic", err)
	}
}

func TestMetadataCodec_Truncated(t *testing.T) {
	meta := domain.NewMetadata()
	meta.AccountData["k"] = json.RawMessage(`"v"`)
	data, err := encodeMetadata(meta)
	if err != nil {
		t.Fatalf("encodeMetadata: %v", err)
	}

	for _, n := range []int{0, 1, len(metaMagic), len(data) / 2} {
		if _, err := decodeMetadata(data[:n]); err == nil {
			t.Fatalf("decodeMetadata(truncated to %d) succeeded, want error", n)
		}
	}
}
