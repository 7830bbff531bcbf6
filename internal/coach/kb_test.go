package coach

import (
	"strings"
	"testing"
)

func TestKnowledgeBase_KnownRules(t *testing.T) {
	kb := NewKnowledgeBase()
	tests := []struct {
		tool, rule, wantWhat string
	}{
		{"Flake8", "F401", "imports that are never used"},
		{"Bandit", "B602", "shell=True"},
		{"pydocstyle", "D102", "missing docstring"},
		{"mypy", "TYP001", "type annotations"},
	}
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			b := kb.Lookup(tt.tool, tt.rule)
			if !strings.Contains(b.What, tt.wantWhat) {
				t.Errorf("Lookup(%s, %s).What = %q", tt.tool, tt.rule, b.What)
			}
			if b.Why == "" || b.Fix == "" {
				t.Errorf("Lookup(%s, %s) has empty why/fix", tt.tool, tt.rule)
			}
			if len(b.References) == 0 {
				t.Errorf("Lookup(%s, %s) has no references", tt.tool, tt.rule)
			}
		})
	}
}

func TestKnowledgeBase_UnknownRuleFallback(t *testing.T) {
	b := NewKnowledgeBase().Lookup("sometool", "X123")
	if !strings.Contains(b.What, "X123") {
		t.Errorf("fallback blurb should name the rule: %q", b.What)
	}
	if len(b.References) != 0 {
		t.Errorf("fallback blurb should have an empty reference list: %+v", b.References)
	}
}

func TestKnowledgeBase_ToolMismatchFallsBack(t *testing.T) {
	// The pair is keyed by (tool, rule); the right rule under the wrong tool
	// is still unknown.
	b := NewKnowledgeBase().Lookup("Flake8", "B602")
	if !strings.Contains(b.What, "triggered by the analyzer") {
		t.Errorf("expected fallback blurb, got %q", b.What)
	}
}
