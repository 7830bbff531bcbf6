// Package redact masks sensitive literal content in code snippets before
// they are displayed or sent to any narrative provider.
//
// Snippet masking covers every digit character and the contents of single-
// and double-quoted strings, with secret-shaped values (API keys, JWTs,
// private key blocks, bearer tokens) replaced wholesale via regex
// heuristics. Sanitized snippets are truncated to 120 characters.
package redact
