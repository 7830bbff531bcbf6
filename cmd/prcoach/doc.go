// Prcoach is a CLI that explains code-review findings in plain language.
//
// It fetches analyzer findings for a pull request, redacts snippets, and
// produces a what/why/how-to-fix answer for each one, with optional LLM
// narration and deterministic local fallbacks.
//
// Usage:
//
//	prcoach samples                       # list demo pull requests
//	prcoach findings refactor-logging     # list findings for a PR
//	prcoach explain refactor-logging      # explain the first finding
//	prcoach explain <pr> --rule B602      # explain a specific rule
//	prcoach ask <pr> "why does B602 matter?"
//	prcoach rate <finding-id> --helpful
package main
