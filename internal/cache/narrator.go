package cache

import (
	"context"

	"prcoach/internal/logging"
	"prcoach/internal/providers"
)

// cachingNarrator memoizes narrator responses keyed by narrator name and
// prompt content.
type cachingNarrator struct {
	inner providers.Narrator
	cache *Cache
}

// WrapNarrator returns a Narrator that serves repeated prompts from the
// cache. A nil or disabled cache returns the inner narrator unchanged.
func WrapNarrator(inner providers.Narrator, c *Cache) providers.Narrator {
	if inner == nil || c == nil || !c.Enabled() {
		return inner
	}
	return &cachingNarrator{inner: inner, cache: c}
}

func (n *cachingNarrator) Name() string { return n.inner.Name() }

func (n *cachingNarrator) Narrate(ctx context.Context, req providers.NarrateRequest) (providers.NarrateResponse, error) {
	key := BuildCacheKey(n.inner.Name(), req.SystemPrompt, req.UserPrompt)
	if content, ok := n.cache.Get(key); ok {
		return providers.NarrateResponse{Content: content}, nil
	}
	resp, err := n.inner.Narrate(ctx, req)
	if err != nil {
		return resp, err
	}
	if err := n.cache.Put(key, resp.Content); err != nil {
		logging.Logger.Warnw("failed to cache narrative", "err", err)
	}
	return resp, nil
}
