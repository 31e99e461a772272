package cache

import (
	"testing"
	"time"
)

func TestDraftKey_Deterministic(t *testing.T) {
	clauses := []string{"confidentiality", "termination"}

	first := DraftKey("static", "static", "nda", "english", "Party A: ABC Corp", clauses)
	second := DraftKey("static", "static", "nda", "english", "Party A: ABC Corp", clauses)

	if first != second {
		t.Error("expected identical keys for identical requests")
	}
	if first[:13] != "legalmate:v1:" {
		t.Errorf("expected versioned key prefix, got %q", first)
	}
}

func TestDraftKey_VariesByInput(t *testing.T) {
	base := DraftKey("static", "static", "nda", "english", "notes", nil)

	variants := []string{
		DraftKey("openai", "static", "nda", "english", "notes", nil),
		DraftKey("static", "static", "service", "english", "notes", nil),
		DraftKey("static", "static", "nda", "hindi", "notes", nil),
		DraftKey("static", "static", "nda", "english", "other notes", nil),
		DraftKey("static", "static", "nda", "english", "notes", []string{"payment"}),
	}

	for i, key := range variants {
		if key == base {
			t.Errorf("variant %d: expected a different key", i)
		}
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	writer := NewDiskCache(dir, time.Hour)
	if err := writer.Set("key", []byte("document"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	layered := NewLayeredCache(time.Hour, dir, time.Hour)

	val, found := layered.Get("key")
	if !found {
		t.Fatal("expected disk hit through layered cache")
	}
	if string(val) != "document" {
		t.Errorf("unexpected value: %q", val)
	}

	// After promotion the memory layer serves the key directly
	if _, found := layered.memory.Get("key"); !found {
		t.Error("expected key promoted to memory layer")
	}
}

func TestDiskCache_Expiration(t *testing.T) {
	cache := NewDiskCache(t.TempDir(), time.Hour)

	if err := cache.Set("key", []byte("value"), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := cache.Get("key"); found {
		t.Error("expected expired entry to miss")
	}
}
