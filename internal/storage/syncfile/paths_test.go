package syncfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePaths(t *testing.T) {
	p, err := ResolvePaths("/shared/container", "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	wantDir := filepath.Join("/shared/container", "@alice:example.org")
	if p.Dir != wantDir {
		t.Fatalf("Dir = %q, want %q", p.Dir, wantDir)
	}
	if p.Payload != filepath.Join(wantDir, payloadFileName) {
		t.Fatalf("Payload = %q, want it under the namespace dir", p.Payload)
	}
	if p.Metadata != filepath.Join(wantDir, metadataFileName) {
		t.Fatalf("Metadata = %q, want it under the namespace dir", p.Metadata)
	}
}

func TestResolvePaths_EmptyIdentity(t *testing.T) {
	for _, identity := range []string{"", "   ", "\t"} {
		if _, err := ResolvePaths("/shared", identity); !errors.Is(err, ErrIdentityRequired) {
			t.Fatalf("ResolvePaths(%q) err = %v, want ErrIdentityRequired", identity, err)
		}
	}
}

func TestResolvePaths_DefaultRoot(t *testing.T) {
	p, err := ResolvePaths("", "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if !strings.Contains(p.Dir, defaultAppDir) {
		t.Fatalf("Dir = %q, want it under the default %s cache dir", p.Dir, defaultAppDir)
	}
}

func TestResolvePaths_IdentityIsolation(t *testing.T) {
	a, _ := ResolvePaths("/shared", "@alice:example.org")
	b, _ := ResolvePaths("/shared", "@bob:example.org")
	if a.Payload == b.Payload || a.Metadata == b.Metadata {
		t.Fatal("two identities resolved to the same files")
	}
}
