package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", []byte("v"), time.Minute, nil)
	got, ok := store.Get(ctx, "k")
	if !ok || string(got) != "v" {
		t.Fatalf("expected hit with v, got %q ok=%v", got, ok)
	}

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestMemoryStore_TTLExpires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", []byte("v"), time.Millisecond, nil)
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestMemoryStore_InvalidateTagDropsOnlyTagged(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "page:/", []byte("home"), time.Minute, []string{"cms:title", "cms:faq"})
	store.Set(ctx, "page:/privacy", []byte("privacy"), time.Minute, []string{"cms:document"})

	store.InvalidateTag(ctx, "cms:faq")

	if _, ok := store.Get(ctx, "page:/"); ok {
		t.Fatalf("expected tagged entry to be dropped")
	}
	if _, ok := store.Get(ctx, "page:/privacy"); !ok {
		t.Fatalf("expected untagged entry to survive")
	}
}

func TestMemoryStore_SetReplacesTagMembership(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", []byte("v1"), time.Minute, []string{"old"})
	store.Set(ctx, "k", []byte("v2"), time.Minute, []string{"new"})

	store.InvalidateTag(ctx, "old")
	if got, ok := store.Get(ctx, "k"); !ok || string(got) != "v2" {
		t.Fatalf("expected entry to survive stale tag invalidation, got %q ok=%v", got, ok)
	}

	store.InvalidateTag(ctx, "new")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected entry to drop on current tag invalidation")
	}
}

func TestMemoryStore_InvalidateKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "a", []byte("1"), time.Minute, nil)
	store.Set(ctx, "b", []byte("2"), time.Minute, nil)
	store.Invalidate(ctx, "a", "b")

	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatalf("expected a to be dropped")
	}
	if _, ok := store.Get(ctx, "b"); ok {
		t.Fatalf("expected b to be dropped")
	}
}
