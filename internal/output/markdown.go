package output

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"prcoach/internal/coach"
)

// MarkdownWriter outputs PR-comment-friendly markdown.
type MarkdownWriter struct{}

func (m *MarkdownWriter) WriteFindings(w io.Writer, prKey string, findings []coach.Finding) error {
	fmt.Fprintf(w, "## Review findings for %s\n\n", prKey)

	counts := countBySeverity(findings)
	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	fmt.Fprintf(w, "| High     | %d    |\n", counts[coach.SeverityHigh])
	fmt.Fprintf(w, "| Medium   | %d    |\n", counts[coach.SeverityMedium])
	fmt.Fprintf(w, "| Low      | %d    |\n", counts[coach.SeverityLow])
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", len(findings))

	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings. :white_check_mark:")
		return nil
	}

	sorted := make([]coach.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := coach.SeverityRank(sorted[i].Severity), coach.SeverityRank(sorted[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return sorted[i].File < sorted[j].File
	})

	for _, f := range sorted {
		fmt.Fprintf(w, "### %s %s `%s`\n\n", mdSeverityIcon(f.Severity), f.Tool, f.RuleID)
		fmt.Fprintf(w, "**`%s:%d-%d`** | `%s`\n\n", f.File, f.StartLine, f.LastLine(), f.ID)
		fmt.Fprintf(w, "%s\n\n", f.Message)
		if f.Suggestion != "" {
			fmt.Fprintf(w, "> %s\n\n", strings.ReplaceAll(f.Suggestion, "\n", "\n> "))
		}
		if f.Snippet != "" {
			fmt.Fprintf(w, "```%s\n%s\n```\n\n", inferLang(f.File), f.Snippet)
		}
		fmt.Fprintf(w, "---\n\n")
	}

	return nil
}

func (m *MarkdownWriter) WriteAnswer(w io.Writer, f coach.Finding, ans coach.Answer) error {
	fmt.Fprintf(w, "**%s %s at %s:%d**\n\n", f.Tool, f.RuleID, f.File, f.StartLine)
	fmt.Fprintf(w, "%s\n\n", ans.Text)

	if len(ans.Steps) > 0 {
		fmt.Fprintf(w, "**Steps to fix:**\n\n")
		for _, step := range ans.Steps {
			fmt.Fprintf(w, "- %s\n", step)
		}
		fmt.Fprintln(w)
	}

	if ans.ExampleSnippet != "" {
		fmt.Fprintf(w, "```%s\n%s\n```\n\n", inferLang(f.File), ans.ExampleSnippet)
	}

	if len(ans.References) > 0 {
		fmt.Fprintf(w, "**References:**\n\n")
		for _, ref := range ans.References {
			fmt.Fprintf(w, "- %s (`%s`)\n", ref.Title, ref.Anchor)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "*span `%s`", ans.Safety.SpanHash)
	if ans.Safety.RedactionsApplied {
		fmt.Fprintf(w, " | redactions applied")
	}
	if ans.Safety.NarratorUsed {
		fmt.Fprintf(w, " | narrated")
	}
	fmt.Fprintf(w, "*\n")

	return nil
}

func mdSeverityIcon(s coach.Severity) string {
	switch s {
	case coach.SeverityHigh:
		return ":red_circle:"
	case coach.SeverityMedium:
		return ":orange_circle:"
	case coach.SeverityLow:
		return ":yellow_circle:"
	default:
		return ":white_circle:"
	}
}

func inferLang(path string) string {
	langMap := map[string]string{
		".go":   "go",
		".py":   "python",
		".js":   "javascript",
		".ts":   "typescript",
		".tsx":  "tsx",
		".jsx":  "jsx",
		".rb":   "ruby",
		".rs":   "rust",
		".java": "java",
		".sh":   "bash",
		".yml":  "yaml",
		".yaml": "yaml",
		".json": "json",
	}
	if lang, ok := langMap[filepath.Ext(path)]; ok {
		return lang
	}
	return ""
}
