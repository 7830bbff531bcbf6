package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"prcoach/internal/coach"
)

func sampleFindings() []coach.Finding {
	return []coach.Finding{
		{
			ID:        "f1-436-1",
			Tool:      "Flake8",
			RuleID:    "F401",
			Severity:  coach.SeverityLow,
			File:      "app/api.py",
			StartLine: 3,
			Message:   "'os' imported but unused",
			Snippet:   "import os",
		},
		{
			ID:         "f2-436-2",
			Tool:       "Bandit",
			RuleID:     "B602",
			Severity:   coach.SeverityHigh,
			File:       "runner.py",
			StartLine:  88,
			EndLine:    90,
			Message:    "subprocess call with shell=True identified",
			Suggestion: "Use a list of args and shell=False.",
		},
	}
}

func sampleAnswer() coach.Answer {
	return coach.Answer{
		Text:           "**What it is:** unused import.",
		Steps:          []string{"Delete the import line.", "Run the linter again."},
		ExampleSnippet: "import os",
		References: []coach.Reference{
			{Title: "Flake8 F401", Anchor: "flake8-f401"},
		},
		Safety: coach.Safety{
			RedactionsApplied: true,
			SpanHash:          "2c65839692",
			NarratorUsed:      false,
		},
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("sarif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTextWriteFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.WriteFindings(&buf, "payments-gateway", sampleFindings()); err != nil {
		t.Fatalf("WriteFindings error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Findings for payments-gateway",
		"2 total",
		"1 high",
		"f1-436-1",
		"runner.py:88-90",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// High severity sorts first
	if strings.Index(out, "B602") > strings.Index(out, "F401") {
		t.Error("high severity finding should be listed first")
	}
}

func TestTextWriteFindings_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.WriteFindings(&buf, "pr", nil); err != nil {
		t.Fatalf("WriteFindings error: %v", err)
	}
	if !strings.Contains(buf.String(), "No findings") {
		t.Errorf("expected empty-state message, got:\n%s", buf.String())
	}
}

func TestTextWriteAnswer(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.WriteAnswer(&buf, sampleFindings()[0], sampleAnswer()); err != nil {
		t.Fatalf("WriteAnswer error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Flake8 F401 at app/api.py:3",
		"Steps to fix:",
		"1. Delete the import line.",
		"Snippet (sanitized):",
		"Flake8 F401 (flake8-f401)",
		"span 2c65839692",
		"redactions applied",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "narrated") {
		t.Error("narrated marker should be absent when narrator unused")
	}
}

func TestJSONWriteFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.WriteFindings(&buf, "pr-5", sampleFindings()); err != nil {
		t.Fatalf("WriteFindings error: %v", err)
	}

	var env struct {
		PR       string          `json:"pr"`
		Findings []coach.Finding `json:"findings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env.PR != "pr-5" || len(env.Findings) != 2 {
		t.Errorf("unexpected envelope: pr=%q findings=%d", env.PR, len(env.Findings))
	}
}

func TestJSONWriteAnswer(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.WriteAnswer(&buf, sampleFindings()[1], sampleAnswer()); err != nil {
		t.Fatalf("WriteAnswer error: %v", err)
	}

	var env struct {
		Finding coach.Finding `json:"finding"`
		Answer  coach.Answer  `json:"answer"`
	}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env.Finding.RuleID != "B602" {
		t.Errorf("Finding.RuleID = %q", env.Finding.RuleID)
	}
	if env.Answer.Safety.SpanHash != "2c65839692" {
		t.Errorf("SpanHash = %q", env.Answer.Safety.SpanHash)
	}
}

func TestMarkdownWriteFindings(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.WriteFindings(&buf, "refactor-logging", sampleFindings()); err != nil {
		t.Fatalf("WriteFindings error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"## Review findings for refactor-logging",
		"| High     | 1    |",
		":red_circle:",
		"**`runner.py:88-90`**",
		"```python\nimport os\n```",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriteAnswer(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.WriteAnswer(&buf, sampleFindings()[0], sampleAnswer()); err != nil {
		t.Fatalf("WriteAnswer error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"**Flake8 F401 at app/api.py:3**",
		"**Steps to fix:**",
		"- Delete the import line.",
		"```python",
		"*span `2c65839692` | redactions applied*",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInferLang(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"app/main.py", "python"},
		{"cmd/root.go", "go"},
		{"deploy.yaml", "yaml"},
		{"README", ""},
	}
	for _, tt := range tests {
		if got := inferLang(tt.path); got != tt.want {
			t.Errorf("inferLang(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("short", 70)
	if len(lines) != 1 || lines[0] != "short" {
		t.Errorf("wrapText short = %v", lines)
	}

	long := strings.Repeat("word ", 30)
	for _, line := range wrapText(long, 20) {
		if len(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}
