package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"prcoach/internal/coach"
)

// TextWriter outputs human-readable terminal text.
type TextWriter struct{}

func (t *TextWriter) WriteFindings(w io.Writer, prKey string, findings []coach.Finding) error {
	ew := &errWriter{w: w}

	ew.printf("Findings for %s\n", prKey)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Findings: %d total", len(findings))
	if counts := countBySeverity(findings); len(findings) > 0 {
		ew.printf(" (%d high, %d medium, %d low)",
			counts[coach.SeverityHigh],
			counts[coach.SeverityMedium],
			counts[coach.SeverityLow],
		)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if len(findings) == 0 {
		ew.println("\nNo findings. Looks good!")
		return ew.err
	}

	// Highest severity first, file path within severity
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
		ew.printf("\n%s %s  %s %s\n", severityIcon(f.Severity), f.ID, f.Tool, f.RuleID)
		ew.printf("  %s:%d-%d\n", f.File, f.StartLine, f.LastLine())
		for _, line := range wrapText(f.Message, 70) {
			ew.printf("    %s\n", line)
		}
		if f.Suggestion != "" {
			ew.println("  Suggestion:")
			for _, line := range wrapText(f.Suggestion, 70) {
				ew.printf("    %s\n", line)
			}
		}
		if f.Snippet != "" {
			ew.printf("  Snippet (sanitized): %s\n", f.Snippet)
		}
	}

	return ew.err
}

func (t *TextWriter) WriteAnswer(w io.Writer, f coach.Finding, ans coach.Answer) error {
	ew := &errWriter{w: w}

	ew.printf("%s %s at %s:%d\n", f.Tool, f.RuleID, f.File, f.StartLine)
	ew.println(strings.Repeat("─", 60))
	ew.printf("%s\n", ans.Text)

	if len(ans.Steps) > 0 {
		ew.println("\nSteps to fix:")
		for i, step := range ans.Steps {
			ew.printf("  %d. %s\n", i+1, step)
		}
	}

	if ans.ExampleSnippet != "" {
		ew.println("\nSnippet (sanitized):")
		ew.printf("  %s\n", ans.ExampleSnippet)
	}

	if len(ans.References) > 0 {
		ew.println("\nReferences:")
		for _, ref := range ans.References {
			ew.printf("  - %s (%s)\n", ref.Title, ref.Anchor)
		}
	}

	ew.printf("\nspan %s", ans.Safety.SpanHash)
	if ans.Safety.RedactionsApplied {
		ew.printf(" | redactions applied")
	}
	if ans.Safety.NarratorUsed {
		ew.printf(" | narrated")
	}
	ew.println("")

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func countBySeverity(findings []coach.Finding) map[coach.Severity]int {
	m := make(map[coach.Severity]int)
	for _, f := range findings {
		m[f.Severity]++
	}
	return m
}

func severityIcon(s coach.Severity) string {
	switch s {
	case coach.SeverityHigh:
		return "[!!]"
	case coach.SeverityMedium:
		return "[!]"
	case coach.SeverityLow:
		return "[-]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
