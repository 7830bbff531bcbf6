package coach

import "fmt"

// ruleKey identifies a blurb by analyzer tool and rule ID.
type ruleKey struct {
	Tool   string
	RuleID string
}

// KnowledgeBase is the static what/why/fix reference data for known rules.
// Lookups never fail: unknown rules get a generic synthesized blurb.
type KnowledgeBase struct {
	blurbs map[ruleKey]RuleBlurb
}

// NewKnowledgeBase builds the built-in rule knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		blurbs: map[ruleKey]RuleBlurb{
			{"Flake8", "F401"}: {
				What:       "F401 flags imports that are never used.",
				Why:        "Unused imports add noise, slow tooling, and suggest dead code.",
				Fix:        "Remove the import or use it explicitly; ensure `__all__` isn't masking usage.",
				References: []Reference{{Title: "Flake8 F401 docs", Anchor: "F401"}},
			},
			{"Bandit", "B602"}: {
				What:       "B602 warns against `shell=True` in subprocess calls.",
				Why:        "It can enable command injection if any part of the command is user-controlled.",
				Fix:        "Pass a list of arguments, set `shell=False`, and validate inputs.",
				References: []Reference{{Title: "Bandit B602 docs", Anchor: "B602"}},
			},
			{"pydocstyle", "D102"}: {
				What:       "D102 reports missing docstring in public methods.",
				Why:        "Docstrings improve readability, onboarding, and tooling (Sphinx, IDEs).",
				Fix:        "Add a short docstring describing purpose, params, and return value.",
				References: []Reference{{Title: "pydocstyle D102", Anchor: "D102"}},
			},
			{"mypy", "TYP001"}: {
				What:       "Function or module lacks type annotations.",
				Why:        "Types improve correctness, IDE support, and readability; they prevent common bugs.",
				Fix:        "Add parameter and return annotations; enable strict checks in CI for changed files.",
				References: []Reference{{Title: "mypy typing guide", Anchor: "typing"}},
			},
		},
	}
}

// Lookup returns the blurb for (tool, ruleID), or a generic fallback blurb
// naming the rule when it is not cataloged.
func (kb *KnowledgeBase) Lookup(tool, ruleID string) RuleBlurb {
	if b, ok := kb.blurbs[ruleKey{Tool: tool, RuleID: ruleID}]; ok {
		return b
	}
	return RuleBlurb{
		What:       fmt.Sprintf("%s triggered by the analyzer.", ruleID),
		Why:        "The rule enforces consistency or safety per project policy.",
		Fix:        "Review the rule's guidance and update the code accordingly.",
		References: []Reference{},
	}
}
