package asseturl

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestContentCacheBuster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	asset := writeAsset(t, dir, "logo.png", "hello")
	cb := NewCacheBuster(ContentCacheBuster(), nil)

	got, err := cb.Apply("/images/logo.png", asset)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := fmt.Sprintf("/images/logo.png?%016x", xxhash.Sum64String("hello"))
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}

	// Same content elsewhere yields the same token regardless of mtime.
	other := writeAsset(t, filepath.Join(dir, "copy"), "logo.png", "hello")
	again, err := cb.Apply("/images/logo.png", other)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if again != got {
		t.Errorf("identical content produced %q and %q", got, again)
	}

	changed := writeAsset(t, filepath.Join(dir, "changed"), "logo.png", "hello!")
	diff, err := cb.Apply("/images/logo.png", changed)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff == got {
		t.Error("changed content produced the same token")
	}
}

func TestContentCacheBuster_MissingFile(t *testing.T) {
	t.Parallel()

	cb := NewCacheBuster(ContentCacheBuster(), nil)
	got, err := cb.Compute("/images/logo.png", filepath.Join(t.TempDir(), "missing.png"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got.Kind() != BustNone {
		t.Errorf("Compute() = %v, want none", got)
	}
}
