// Package cache provides file-based TTL caching for narrator responses.
//
// Entries are JSON files named by the SHA-256 of the cache key (narrator
// name plus prompt content) under the platform cache directory. Expired
// entries are pruned lazily on read. WrapNarrator decorates any Narrator
// with transparent caching.
package cache
