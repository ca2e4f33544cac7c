package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_StoreWritesFileUnderURLPrefix(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	got, err := store.Store(strings.NewReader("png-bytes"), "照片.PNG")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasPrefix(got, URLPrefix) {
		t.Fatalf("path %q missing %q prefix", got, URLPrefix)
	}
	if !strings.HasSuffix(got, ".png") {
		t.Fatalf("path %q did not keep lowercased extension", got)
	}

	data, err := os.ReadFile(filepath.Join(store.dir, strings.TrimPrefix(got, URLPrefix)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestDiskStore_StoreGeneratesUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	first, err := store.Store(strings.NewReader("a"), "dup.jpg")
	if err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	second, err := store.Store(strings.NewReader("b"), "dup.jpg")
	if err != nil {
		t.Fatalf("second store failed: %v", err)
	}
	if first == second {
		t.Fatalf("same path %q for two uploads of the same original name", first)
	}
}

func TestDiskStore_RemoveDeletesStoredFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	p, err := store.Store(strings.NewReader("x"), "a.gif")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if err := store.Remove(p); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.dir, strings.TrimPrefix(p, URLPrefix))); !os.IsNotExist(err) {
		t.Fatalf("file still present after remove: %v", err)
	}
}

func TestDiskStore_RemoveMissingIsNoError(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	if err := store.Remove(URLPrefix + "never-stored.png"); err != nil {
		t.Fatalf("remove of missing file returned error: %v", err)
	}
}
