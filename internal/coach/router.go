package coach

import "strings"

// RouteQuestion picks the finding a free-text question is about: the first
// loaded finding whose rule ID or file path occurs in the question. The
// second return is false when nothing matches.
func RouteQuestion(question string, findings []Finding) (Finding, bool) {
	if strings.TrimSpace(question) == "" {
		return Finding{}, false
	}
	for _, f := range findings {
		if strings.Contains(question, f.RuleID) || strings.Contains(question, f.File) {
			return f, true
		}
	}
	return Finding{}, false
}

// PolicyOverview is the generic answer for questions that match no loaded
// finding.
func PolicyOverview(pol Policy) string {
	var b strings.Builder
	b.WriteString("**Policy overview:** Docstrings required for public classes/functions")
	if pol.RequireDocstringsPublicOnly {
		b.WriteString("; private (`_name`) recommended")
	}
	b.WriteString(". Avoid `shell=True` in subprocess. Remove unused imports flagged by F401.")
	if note, ok := pol.Notes["docstrings"]; ok {
		b.WriteString(" ")
		b.WriteString(note)
	}
	return b.String()
}
