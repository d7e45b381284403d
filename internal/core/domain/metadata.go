// Package domain defines the core domain models for SyncVault.
package domain

import "encoding/json"

// Metadata is the secondary structure stored next to the snapshot.
// It is read-modify-written as a whole; the account-data mapping is
// open-ended and opaque to this module.
type Metadata struct {
	AccountData map[string]json.RawMessage `json:"account_data,omitempty"`
}

// NewMetadata creates an empty metadata structure.
func NewMetadata() *Metadata {
	return &Metadata{AccountData: make(map[string]json.RawMessage)}
}

// Clone returns a deep-enough copy: the mapping is copied, the raw
// values are shared (they are immutable byte slices by convention).
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return NewMetadata()
	}
	c := NewMetadata()
	for k, v := range m.AccountData {
		c.AccountData[k] = v
	}
	return c
}
