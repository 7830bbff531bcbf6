package coach

import (
	"strings"
	"testing"
)

func TestRouteQuestion_ByRuleID(t *testing.T) {
	fs, err := newTestFetcher().Fetch("shell-task-runner")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	f, ok := RouteQuestion("why is B602 a problem here?", fs)
	if !ok {
		t.Fatal("expected a match for B602")
	}
	if f.RuleID != "B602" {
		t.Errorf("matched %s, want B602", f.RuleID)
	}
}

func TestRouteQuestion_ByFile(t *testing.T) {
	fs, err := newTestFetcher().Fetch("shell-task-runner")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	f, ok := RouteQuestion("what's wrong in runner.py?", fs)
	if !ok {
		t.Fatal("expected a match for runner.py")
	}
	if f.File != "runner.py" {
		t.Errorf("matched %s, want runner.py", f.File)
	}
}

func TestRouteQuestion_NoMatch(t *testing.T) {
	fs, err := newTestFetcher().Fetch("refactor-logging")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if _, ok := RouteQuestion("what is the docstring policy?", fs); ok {
		t.Error("expected no match")
	}
	if _, ok := RouteQuestion("", fs); ok {
		t.Error("empty question should not match")
	}
}

func TestPolicyOverview(t *testing.T) {
	out := PolicyOverview(DefaultPolicy())
	if !strings.Contains(out, "Policy overview") {
		t.Errorf("overview missing header: %q", out)
	}
	if !strings.Contains(out, "shell=True") || !strings.Contains(out, "F401") {
		t.Errorf("overview should summarize the core rules: %q", out)
	}
}
