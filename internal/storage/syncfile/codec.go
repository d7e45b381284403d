// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yndnr/syncvault-go/internal/core/domain"
)

// ErrCorruptPayload is returned when the payload file cannot be
// decoded into a snapshot. The facade collapses it to a cache miss.
var ErrCorruptPayload = errors.New("syncfile: corrupt payload")

// encodePayload serializes a snapshot to its textual on-disk form.
func encodePayload(resp *domain.SyncResponse) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("syncfile: encode payload: %w", err)
	}
	return data, nil
}

// decodePayload is the single typed deserialization entry point for
// the payload file. Any parse failure fails closed: no partially
// populated snapshot is ever returned.
func decodePayload(data []byte) (*domain.SyncResponse, error) {
	var resp domain.SyncResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return &resp, nil
}
