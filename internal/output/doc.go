// Package output formats findings and coaching answers for display or
// machine consumption.
//
// Three formats are supported:
//   - text     — human-readable terminal output (default)
//   - json     — structured JSON
//   - markdown — PR-comment-friendly markdown
//
// Use [GetWriter] to obtain a [Writer] for a given format string.
package output
