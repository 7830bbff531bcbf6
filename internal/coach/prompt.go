package coach

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a concise code-review coach. Use clear steps and no jargon."

// SystemPrompt returns the system prompt sent to narrators.
func SystemPrompt() string {
	return systemPrompt
}

// BuildPrompt assembles the narrator prompt for one finding. The snippet, if
// present, is already sanitized; nothing else in the prompt carries source
// content.
func BuildPrompt(f Finding, blurb RuleBlurb, policyNote, snippet string) string {
	note := policyNote
	if note == "" {
		note = "n/a"
	}
	parts := []string{
		fmt.Sprintf("Rule: %s %s", f.Tool, f.RuleID),
		fmt.Sprintf("File: %s:%d", f.File, f.StartLine),
		fmt.Sprintf("Message: %s", f.Message),
		fmt.Sprintf("What: %s", blurb.What),
		fmt.Sprintf("Why: %s", blurb.Why),
		fmt.Sprintf("Policy: %s", note),
	}
	if snippet != "" {
		parts = append(parts, fmt.Sprintf("Snippet (sanitized):\n%s", snippet))
	}
	parts = append(parts, "Return sections: What it is / Why it matters / How to fix. Keep it concise.")
	return strings.Join(parts, "\n")
}
