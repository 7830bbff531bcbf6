package cache

import (
	"context"
	"errors"
	"testing"

	"prcoach/internal/providers"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(true, t.TempDir(), 3600)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := newTestCache(t)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Put("k1", "a narrative"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != "a narrative" {
		t.Errorf("Get = %q", got)
	}
}

func TestCache_Disabled(t *testing.T) {
	c, err := New(false, "", 0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if c.Enabled() {
		t.Error("cache should be disabled")
	}
	if err := c.Put("k", "v"); err != nil {
		t.Errorf("disabled Put should be a no-op: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("disabled Get should always miss")
	}
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t)
	c.Put("k1", "v1")
	c.Put("k2", "v2")

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, ok := c.Get("k1"); ok {
		t.Error("expected miss after Clear")
	}
	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Entries = %d after Clear, want 0", stats.Entries)
	}
}

func TestCache_Stats(t *testing.T) {
	c := newTestCache(t)
	c.Put("k1", "v1")
	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
	if stats.TotalBytes == 0 {
		t.Error("TotalBytes should be non-zero")
	}
}

type countingNarrator struct {
	content string
	err     error
	calls   int
}

func (c *countingNarrator) Narrate(ctx context.Context, req providers.NarrateRequest) (providers.NarrateResponse, error) {
	c.calls++
	if c.err != nil {
		return providers.NarrateResponse{}, c.err
	}
	return providers.NarrateResponse{Content: c.content}, nil
}

func (c *countingNarrator) Name() string { return "counting" }

func TestWrapNarrator_CachesResponses(t *testing.T) {
	inner := &countingNarrator{content: "explanation"}
	n := WrapNarrator(inner, newTestCache(t))

	req := providers.NarrateRequest{SystemPrompt: "coach", UserPrompt: "explain F401"}
	for i := 0; i < 3; i++ {
		resp, err := n.Narrate(context.Background(), req)
		if err != nil {
			t.Fatalf("Narrate error: %v", err)
		}
		if resp.Content != "explanation" {
			t.Errorf("Content = %q", resp.Content)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner narrator called %d times, want 1", inner.calls)
	}
}

func TestWrapNarrator_ErrorsNotCached(t *testing.T) {
	inner := &countingNarrator{err: errors.New("down")}
	n := WrapNarrator(inner, newTestCache(t))

	req := providers.NarrateRequest{UserPrompt: "x"}
	for i := 0; i < 2; i++ {
		if _, err := n.Narrate(context.Background(), req); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("errors must not be cached; calls = %d", inner.calls)
	}
}

func TestWrapNarrator_DisabledCachePassthrough(t *testing.T) {
	inner := &countingNarrator{content: "x"}
	c, _ := New(false, "", 0)
	if n := WrapNarrator(inner, c); n != providers.Narrator(inner) {
		t.Error("disabled cache should return inner narrator unchanged")
	}
	if n := WrapNarrator(nil, newTestCache(t)); n != nil {
		t.Error("nil narrator should stay nil")
	}
}
