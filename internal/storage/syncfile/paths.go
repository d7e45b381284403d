// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// On-disk layout per identity.
const (
	payloadFileName  = "response.json"
	metadataFileName = "metadata.bin"

	// defaultAppDir is the directory created under the per-user cache
	// location when no shared storage area is supplied.
	defaultAppDir = "syncvault"

	DefaultFilePerm = 0600
	DefaultDirPerm  = 0750
)

// ErrIdentityRequired is returned when a store is opened with an empty
// identity. Continuing without one would silently read and write the
// wrong namespace, so this is never softened to a default.
var ErrIdentityRequired = errors.New("syncfile: identity is required")

// Paths is the immutable on-disk location set for one identity. It is
// produced once by ResolvePaths and passed into every operation; there
// is no mutable path state to observe half-initialized.
type Paths struct {
	// Dir is the namespace directory holding both files.
	Dir string

	// Payload is the textual (UTF-8 JSON) snapshot file.
	Payload string

	// Metadata is the binary-encoded metadata file.
	Metadata string
}

// ResolvePaths computes the payload and metadata paths for an identity.
// sharedDir is the shared storage area root accessible to both the
// primary and the auxiliary process; when empty, the per-user cache
// location is used instead.
func ResolvePaths(sharedDir, identity string) (Paths, error) {
	if strings.TrimSpace(identity) == "" {
		return Paths{}, ErrIdentityRequired
	}

	root := sharedDir
	if root == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return Paths{}, fmt.Errorf("syncfile: resolve cache dir: %w", err)
		}
		root = filepath.Join(cacheDir, defaultAppDir)
	}

	dir := filepath.Join(root, identity)
	return Paths{
		Dir:      dir,
		Payload:  filepath.Join(dir, payloadFileName),
		Metadata: filepath.Join(dir, metadataFileName),
	}, nil
}
