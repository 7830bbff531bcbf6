package redact

import (
	"regexp"
	"strings"
)

const (
	placeholder = "[REDACTED]"
	mask        = "█"

	// maxSnippetLen bounds how much of a snippet ever leaves this package.
	maxSnippetLen = 120
)

// secretPatterns are regex heuristics for common secret types.
var secretPatterns = []*regexp.Regexp{
	// Generic API keys (long hex/base64 strings after common key patterns)
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Generic secrets/tokens/passwords in assignments
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs (three base64 segments separated by dots)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Slack tokens
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Groq/OpenAI-style API keys
	regexp.MustCompile(`(gsk_|sk-)[A-Za-z0-9_-]{20,}`),
}

var (
	doubleQuoted = regexp.MustCompile(`"[^"\n]*"`)
	singleQuoted = regexp.MustCompile(`'[^'\n]*'`)
	digits       = regexp.MustCompile(`[0-9]`)
)

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// Snippet sanitizes a source snippet before it is shown to a user or
// embedded in a narrator prompt. Quoted string contents and every digit are
// masked, secret-looking values are replaced wholesale, and the result is
// truncated to 120 characters with an elision marker.
//
// Empty input yields empty output. The function is pure: the same snippet
// always produces the same sanitized form, and no digit from the input ever
// survives into the output.
func Snippet(snippet string) string {
	if snippet == "" {
		return ""
	}
	s := Secrets(snippet)
	s = doubleQuoted.ReplaceAllString(s, `"`+mask+`"`)
	s = singleQuoted.ReplaceAllString(s, `'`+mask+`'`)
	s = digits.ReplaceAllString(s, mask)
	return truncate(s, maxSnippetLen)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// Masked reports whether the text contains a masking marker.
func Masked(s string) bool {
	return strings.Contains(s, mask) || strings.Contains(s, placeholder)
}
