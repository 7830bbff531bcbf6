// Package coach contains the core types and engine for explaining code
// review findings.
//
// The Catalog is the read-only finding store; the Fetcher instantiates
// findings from it with IDs that are a pure function of the review key, so
// repeated fetches of the same key always agree. The KnowledgeBase supplies
// static what/why/fix blurbs per (tool, rule) with a generic fallback for
// unknown rules.
//
// The Engine composes a Finding, a Policy, and a blurb into an Answer:
// narrative text (external narrator when available, local template
// otherwise), deterministic remediation steps from per-rule step builders,
// an optional sanitized example snippet, references, and safety metadata
// (redaction flag, span hash, narrator-used flag). Narrator failures never
// escape the engine.
package coach
