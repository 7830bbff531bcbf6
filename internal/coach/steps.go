package coach

import "fmt"

// StepBuilder produces the ordered remediation steps for one finding.
type StepBuilder func(f Finding) []string

// stepBuilders maps rule IDs to their step builders. Steps stay fully
// deterministic even when the narrative text comes from an external
// generator, so tests and CI gates can rely on them.
var stepBuilders = map[string]StepBuilder{
	"F401": func(f Finding) []string {
		return []string{
			fmt.Sprintf("Open `%s` line %d.", f.File, f.StartLine),
			"Remove the unused import or reference it where intended.",
			"Run linters locally to confirm the warning is resolved.",
		}
	},
	"B602": func(f Finding) []string {
		return []string{
			fmt.Sprintf("Open `%s` line %d.", f.File, f.StartLine),
			"Replace the string command with a list of args, e.g., ['ls','-l']",
			"Set `shell=False` and validate inputs.",
			"Re-run security checks.",
		}
	},
	"D102": func(f Finding) []string {
		return []string{
			fmt.Sprintf("Open `%s` line %d.", f.File, f.StartLine),
			"Add a concise docstring describing purpose, parameters, and return.",
			"Ensure docstring style matches the team convention.",
		}
	},
	"TYP001": func(f Finding) []string {
		return []string{
			fmt.Sprintf("Open `%s` line %d.", f.File, f.StartLine),
			"Add type annotations for parameters and return type.",
			"Run `mypy` locally to confirm the error is resolved.",
		}
	},
}

// RemediationSteps returns the fix steps for a finding. Rules without a
// dedicated builder get a generic review/apply sequence over the finding's
// line range.
func RemediationSteps(f Finding) []string {
	if build, ok := stepBuilders[f.RuleID]; ok {
		return build(f)
	}
	return []string{
		fmt.Sprintf("Review `%s` lines %d-%d.", f.File, f.StartLine, f.LastLine()),
		"Apply the rule's guidance; re-run checks.",
	}
}
