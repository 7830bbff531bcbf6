package coach

import (
	"strings"
	"testing"
)

func TestRemediationSteps_F401(t *testing.T) {
	steps := RemediationSteps(testFinding("F401"))
	found := false
	for _, s := range steps {
		if strings.Contains(strings.ToLower(s), "unused import") {
			found = true
		}
	}
	if !found {
		t.Errorf("F401 steps should mention the unused import: %v", steps)
	}
}

func TestRemediationSteps_B602(t *testing.T) {
	steps := RemediationSteps(testFinding("B602"))

	var mentionsArgsList, mentionsShellOff bool
	for _, s := range steps {
		if strings.Contains(s, "list of args") {
			mentionsArgsList = true
		}
		if strings.Contains(s, "shell=False") {
			mentionsShellOff = true
		}
	}
	if !mentionsArgsList {
		t.Errorf("B602 steps should mention replacing the string command with a list of args: %v", steps)
	}
	if !mentionsShellOff {
		t.Errorf("B602 steps should mention shell=False: %v", steps)
	}
}

func TestRemediationSteps_FirstStepNamesLocation(t *testing.T) {
	for _, rule := range []string{"F401", "B602", "D102", "TYP001"} {
		f := testFinding(rule)
		steps := RemediationSteps(f)
		if len(steps) < 2 {
			t.Fatalf("%s: too few steps: %v", rule, steps)
		}
		if !strings.Contains(steps[0], f.File) {
			t.Errorf("%s: first step should name the file: %q", rule, steps[0])
		}
	}
}

func TestRemediationSteps_DefaultUsesStartLineWithoutEnd(t *testing.T) {
	f := Finding{RuleID: "ZZ1", File: "a.py", StartLine: 7}
	steps := RemediationSteps(f)
	if !strings.Contains(steps[0], "lines 7-7") {
		t.Errorf("default steps should collapse to start line: %q", steps[0])
	}
}

func TestRemediationSteps_Deterministic(t *testing.T) {
	f := testFinding("D102")
	a := RemediationSteps(f)
	b := RemediationSteps(f)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("step %d not deterministic", i)
		}
	}
}
