package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := Key("sinc", 100)

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Set = ok=%v err=%v, want miss", ok, err)
	}
	if err := c.Set(ctx, key, []byte("<svg/>")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v, want hit", ok, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get = %q, want %q", data, "<svg/>")
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("Get after Delete reported a hit")
	}
}

func TestFileCacheSubdirLayout(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	key := Key("gaussian")
	if err := c.Set(context.Background(), key, []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := filepath.Join(dir, key[:2], key)
	if _, err := os.Stat(want); err != nil {
		t.Errorf("entry not at %s: %v", want, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := c.Set(context.Background(), Key("fid"), []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache directory survived Clear: %v", err)
	}
}

func TestFileCacheCanceledContext(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Set(ctx, "k", []byte("x")); err == nil {
		t.Error("Set with canceled context succeeded")
	}
	if _, _, err := c.Get(ctx, "k"); err == nil {
		t.Error("Get with canceled context succeeded")
	}
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get = ok=%v err=%v, want miss", ok, err)
	}
}

func TestArtifactKeyStability(t *testing.T) {
	args := map[string]float64{"bandwidth": 2, "num_lobes": 4}
	a := ArtifactKey("sinc", 100, args, "svg", 200, 100, 2, "")
	b := ArtifactKey("sinc", 100, map[string]float64{"num_lobes": 4, "bandwidth": 2}, "svg", 200, 100, 2, "")
	if a != b {
		t.Error("argument order changed the key")
	}
	if c := ArtifactKey("sinc", 100, args, "png", 200, 100, 2, ""); c == a {
		t.Error("format change did not change the key")
	}
	if c := ArtifactKey("sinc", 100, args, "svg", 64, 64, 2, ""); c == a {
		t.Error("size change did not change the key")
	}
}
