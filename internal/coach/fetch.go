package coach

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"prcoach/internal/redact"
)

// Fetcher maps an opaque review key (typically a PR URL) to a list of
// findings drawn from the catalog. Fetching is deterministic: the same key
// always yields the same findings with the same IDs.
type Fetcher struct {
	catalog *Catalog
}

// NewFetcher creates a Fetcher over the given catalog.
func NewFetcher(catalog *Catalog) *Fetcher {
	return &Fetcher{catalog: catalog}
}

// Fetch returns the findings for a review key. Known keys (sample PR URLs
// and slugs) use their configured template list; any other key derives a
// stable two-entry selection from a hash of the key. Snippets are redacted
// before the findings are handed to the caller.
//
// The key must be non-empty; an empty key is a caller error.
func (f *Fetcher) Fetch(key string) ([]Finding, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("review key must not be empty")
	}

	rules, ok := f.catalog.RulesForKey(key)
	if !ok {
		rules = f.fallbackSelection(key)
	}

	base := keyBase(key)
	findings := make([]Finding, 0, len(rules))
	for i, rule := range rules {
		proto, ok := f.catalog.Template(rule)
		if !ok {
			continue
		}
		proto.ID = fmt.Sprintf("%s-%d-%d", proto.ID, base, i+1)
		proto.Snippet = redact.Snippet(proto.Snippet)
		findings = append(findings, proto)
	}
	return findings, nil
}

// fallbackSelection picks two distinct consecutive catalog entries from a
// hash of the key. The selection is stable across calls and processes.
func (f *Fetcher) fallbackSelection(key string) []string {
	pool := f.catalog.Keys()
	if len(pool) == 0 {
		return nil
	}
	h := keyBase(key)
	return []string{
		pool[h%len(pool)],
		pool[(h+1)%len(pool)],
	}
}

// keyBase derives a small stable number from a review key. Finding IDs are
// a pure function of (key, template, ordinal) through this value.
func keyBase(key string) int {
	h := sha256.Sum256([]byte(key))
	return int(binary.BigEndian.Uint64(h[:8]) % 1000)
}

// HashSpan returns a short stable hash of (file, line) for audit
// correlation without exposing the location itself.
func HashSpan(file string, line int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", file, line)))
	return fmt.Sprintf("%x", h)[:10]
}
