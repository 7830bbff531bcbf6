package cli

import (
	"strings"
	"testing"

	"prcoach/internal/coach"
	"prcoach/internal/config"
)

func resetFlags() {
	flagProvider = ""
	flagModel = ""
	flagFormat = ""
	flagNoSnippet = false
	flagLocal = false
	flagFindingID = ""
	flagRuleID = ""
}

func TestBuildOverrides(t *testing.T) {
	resetFlags()
	if m := buildOverrides(); len(m) != 0 {
		t.Errorf("no flags set, got overrides %v", m)
	}

	flagProvider = "ollama"
	flagFormat = "json"
	flagNoSnippet = true
	defer resetFlags()

	m := buildOverrides()
	if m["provider"] != "ollama" || m["format"] != "json" || m["noSnippet"] != "true" {
		t.Errorf("unexpected overrides: %v", m)
	}
	if _, ok := m["model"]; ok {
		t.Error("model should be absent when flag unset")
	}
}

func TestLoadFindings_Sample(t *testing.T) {
	key, findings, err := loadFindings("refactor-logging")
	if err != nil {
		t.Fatalf("loadFindings error: %v", err)
	}
	if !strings.HasPrefix(key, "https://") {
		t.Errorf("sample should resolve to its URL, got %q", key)
	}
	if len(findings) == 0 {
		t.Fatal("expected findings for registered sample")
	}
}

func TestLoadFindings_EmptyKey(t *testing.T) {
	if _, _, err := loadFindings("  "); err == nil {
		t.Error("expected error for blank key")
	}
}

func TestSelectFinding(t *testing.T) {
	findings := []coach.Finding{
		{ID: "f1-436-1", RuleID: "F401"},
		{ID: "f2-436-2", RuleID: "B602"},
	}

	resetFlags()
	f, err := selectFinding(findings)
	if err != nil {
		t.Fatalf("selectFinding error: %v", err)
	}
	if f.ID != "f1-436-1" {
		t.Errorf("default selection = %q, want first finding", f.ID)
	}

	flagFindingID = "f2-436-2"
	f, err = selectFinding(findings)
	if err != nil {
		t.Fatalf("selectFinding error: %v", err)
	}
	if f.RuleID != "B602" {
		t.Errorf("by ID selection = %q", f.RuleID)
	}

	flagFindingID = "missing"
	if _, err := selectFinding(findings); err == nil {
		t.Error("expected error for unknown finding ID")
	}

	resetFlags()
	flagRuleID = "B602"
	defer resetFlags()
	f, err = selectFinding(findings)
	if err != nil {
		t.Fatalf("selectFinding error: %v", err)
	}
	if f.ID != "f2-436-2" {
		t.Errorf("by rule selection = %q", f.ID)
	}

	if _, err := selectFinding(nil); err == nil {
		t.Error("expected error for empty findings")
	}
}

func TestBuildNarrator_Local(t *testing.T) {
	resetFlags()
	flagLocal = true
	defer resetFlags()

	n, err := buildNarrator(config.Default())
	if err != nil {
		t.Fatalf("buildNarrator error: %v", err)
	}
	if n != nil {
		t.Error("local mode should return nil narrator")
	}
}

func TestBuildNarrator_MissingKeyDegrades(t *testing.T) {
	resetFlags()
	t.Setenv("GROQ_API_KEY", "")

	n, err := buildNarrator(config.Default())
	if err != nil {
		t.Fatalf("missing credential should disable the narrator, got error: %v", err)
	}
	if n != nil {
		t.Error("missing credential should return a nil narrator")
	}
}

func TestBuildNarrator_UnknownProviderFails(t *testing.T) {
	resetFlags()
	cfg := config.Default()
	cfg.Provider = "nope"

	if _, err := buildNarrator(cfg); err == nil {
		t.Error("unknown provider should still be an error")
	}
}

func TestFeedbackDBPath(t *testing.T) {
	cfg := config.Default()
	cfg.FeedbackDB = "/tmp/custom.db"
	path, err := feedbackDBPath(cfg)
	if err != nil {
		t.Fatalf("feedbackDBPath error: %v", err)
	}
	if path != "/tmp/custom.db" {
		t.Errorf("path = %q, want configured override", path)
	}

	cfg.FeedbackDB = ""
	path, err = feedbackDBPath(cfg)
	if err != nil {
		t.Fatalf("feedbackDBPath error: %v", err)
	}
	if !strings.HasSuffix(path, "feedback.db") {
		t.Errorf("default path = %q", path)
	}
}
