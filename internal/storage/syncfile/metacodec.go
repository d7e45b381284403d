// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yndnr/syncvault-go/internal/core/domain"
)

// Metadata file format: magic, 4-byte big-endian header length, JSON
// header, 4-byte big-endian body length, JSON body, SHA-256 checksum
// trailer over everything before it.
var metaMagic = []byte("SVLTMETA")

const (
	metaVersion  = 1
	checksumSize = 32
)

var (
	ErrInvalidMagic     = errors.New("syncfile: invalid metadata magic")
	ErrChecksumMismatch = errors.New("syncfile: metadata checksum mismatch")
	ErrCorruptMetadata  = errors.New("syncfile: corrupt metadata")
)

type metaHeader struct {
	Version    int   `json:"version"`
	CreatedAt  int64 `json:"created_at"`
	EntryCount int   `json:"entry_count"`
}

// encodeMetadata serializes the metadata structure into its binary
// envelope.
func encodeMetadata(meta *domain.Metadata) ([]byte, error) {
	hdr := metaHeader{
		Version:    metaVersion,
		CreatedAt:  time.Now().UnixMilli(),
		EntryCount: len(meta.AccountData),
	}
	hdrJSON, err := json.Marshal(hdr)
	if err != nil {
		return nil, fmt.Errorf("syncfile: encode metadata header: %w", err)
	}
	body, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("syncfile: encode metadata body: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(metaMagic)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(hdrJSON)))
	buf.Write(lenBuf[:])
	buf.Write(hdrJSON)

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	buf.Write(lenBuf[:])
	buf.Write(body)

	sum := sha256.Sum256(buf.Bytes())
	buf.Write(sum[:])

	return buf.Bytes(), nil
}

// decodeMetadata parses and verifies a metadata envelope. It fails
// closed with a typed error on any structural damage; the facade
// collapses all of them to a cache miss.
func decodeMetadata(data []byte) (*domain.Metadata, error) {
	if len(data) < len(metaMagic)+checksumSize {
		return nil, ErrCorruptMetadata
	}

	payload, trailer := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	sum := sha256.Sum256(payload)
	if !bytes.Equal(sum[:], trailer) {
		return nil, ErrChecksumMismatch
	}

	if !bytes.HasPrefix(payload, metaMagic) {
		return nil, ErrInvalidMagic
	}
	rest := payload[len(metaMagic):]

	hdrJSON, rest, err := readBlock(rest)
	if err != nil {
		return nil, err
	}
	var hdr metaHeader
	if err := json.Unmarshal(hdrJSON, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorruptMetadata, err)
	}
	if hdr.Version > metaVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptMetadata, hdr.Version)
	}

	body, rest, err := readBlock(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrCorruptMetadata
	}

	var meta domain.Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrCorruptMetadata, err)
	}
	return &meta, nil
}

// readBlock consumes one 4-byte length-prefixed block.
func readBlock(data []byte) (block, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, ErrCorruptMetadata
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < n {
		return nil, nil, ErrCorruptMetadata
	}
	return data[:n], data[n:], nil
}
