package internal

import "testing"

// The tests use nil textures: the cache's bookkeeping never dereferences
// a texture, and every release path skips nil.

func wantOrder(t *testing.T, c *TextureCache, want ...string) {
	t.Helper()
	if len(c.order) != len(want) {
		t.Fatalf("order = %v, want %v", c.order, want)
	}
	for i := range want {
		if c.order[i] != want[i] {
			t.Fatalf("order = %v, want %v", c.order, want)
		}
	}
}

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(3)
	c.Set("a", nil)
	c.Set("b", nil)
	c.Set("c", nil)

	// Touching "a" leaves "b" as the eviction candidate.
	c.Get("a")
	c.Set("d", nil)

	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if _, ok := c.textures["b"]; ok {
		t.Errorf("least recently used entry survived eviction")
	}
	wantOrder(t, c, "c", "a", "d")
}

func TestTextureCacheReplaceDoesNotGrow(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", nil)
	c.Set("b", nil)
	c.Set("a", nil)

	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	wantOrder(t, c, "b", "a")

	// Replacing counted as use: "b" is now the oldest entry.
	c.Set("c", nil)
	if _, ok := c.textures["b"]; ok {
		t.Errorf("expected b to be evicted after a was replaced")
	}
	if _, ok := c.textures["a"]; !ok {
		t.Errorf("most recently used entry was evicted")
	}
}

func TestTextureCacheSizeClamp(t *testing.T) {
	c := NewTextureCacheWithSize(0)
	c.Set("a", nil)
	c.Set("b", nil)

	if got := c.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestTextureCacheDestroyEmpties(t *testing.T) {
	c := NewTextureCache()
	c.Set("a", nil)
	c.Set("b", nil)
	c.Destroy()

	if got := c.Len(); got != 0 {
		t.Fatalf("Len() after Destroy = %d, want 0", got)
	}
	if len(c.textures) != 0 {
		t.Fatalf("textures map holds %d entries after Destroy", len(c.textures))
	}

	// The cache stays usable after Destroy.
	c.Set("c", nil)
	if got := c.Len(); got != 1 {
		t.Fatalf("Len() after reuse = %d, want 1", got)
	}
}
