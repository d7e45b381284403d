package syncfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsReplacedFiles(t *testing.T) {
	paths, err := ResolvePaths(t.TempDir(), "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if err := os.MkdirAll(paths.Dir, DefaultDirPerm); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	w, err := NewWatcher(paths, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Simulate an atomic replace by another process: temp file, rename.
	tmp := paths.Payload + ".tmp"
	if err := os.WriteFile(tmp, []byte(`{"next_batch":"s1"}`), DefaultFilePerm); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Rename(tmp, paths.Payload); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	select {
	case name := <-w.Changes():
		if name != payloadFileName {
			t.Fatalf("change = %q, want %q", name, payloadFileName)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	paths, err := ResolvePaths(t.TempDir(), "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if err := os.MkdirAll(paths.Dir, DefaultDirPerm); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	w, err := NewWatcher(paths, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	other := filepath.Join(paths.Dir, "unrelated.txt")
	if err := os.WriteFile(other, []byte("x"), DefaultFilePerm); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name := <-w.Changes():
		t.Fatalf("unexpected change notification %q", name)
	case <-time.After(3 * debounceWindow):
	}
}

func TestWatcher_DebouncesReplaceBurst(t *testing.T) {
	paths, err := ResolvePaths(t.TempDir(), "@alice:example.org")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if err := os.MkdirAll(paths.Dir, DefaultDirPerm); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	w, err := NewWatcher(paths, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Several rapid replacements of the same file coalesce into one
	// notification per debounce window.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(paths.Metadata, []byte{byte(i)}, DefaultFilePerm); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	select {
	case name := <-w.Changes():
		if name != metadataFileName {
			t.Fatalf("change = %q, want %q", name, metadataFileName)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	select {
	case name := <-w.Changes():
		t.Fatalf("burst produced extra notification %q", name)
	case <-time.After(3 * debounceWindow):
	}
}
