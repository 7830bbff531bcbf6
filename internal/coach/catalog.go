package coach

// SamplePR is a named demo pull request.
type SamplePR struct {
	Name string
	Slug string
	URL  string
}

// Catalog is the read-only finding store: prototype findings keyed by rule
// ID, demo PRs, and the mapping from review key to prototype keys. It is
// built once at startup and never mutated.
type Catalog struct {
	templates map[string]Finding
	order     []string
	samples   []SamplePR
	keyRules  map[string][]string
}

// NewCatalog builds the built-in demo catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		templates: make(map[string]Finding),
		keyRules:  make(map[string][]string),
	}

	c.add(Finding{
		ID:         "f1",
		Tool:       "Flake8",
		RuleID:     "F401",
		Severity:   SeverityLow,
		File:       "utils/log.py",
		StartLine:  1,
		Message:    "module imported but unused: 'datetime'",
		Snippet:    "from datetime import datetime  # unused",
		Suggestion: "Remove unused import or reference it.",
	})
	c.add(Finding{
		ID:         "f2",
		Tool:       "Bandit",
		RuleID:     "B602",
		Severity:   SeverityHigh,
		File:       "runner.py",
		StartLine:  88,
		Message:    "subprocess call with shell=True identified, security issue.",
		Snippet:    "subprocess.Popen(cmd, shell=True)",
		Suggestion: "Use list-of-args and shell=False.",
	})
	c.add(Finding{
		ID:         "f3",
		Tool:       "pydocstyle",
		RuleID:     "D102",
		Severity:   SeverityMedium,
		File:       "services/payments.py",
		StartLine:  42,
		Message:    "Missing docstring in public method",
		Snippet:    "def charge_customer(self, amount): ...",
		Suggestion: "Add a concise docstring describing params/returns.",
	})
	c.add(Finding{
		ID:         "f4",
		Tool:       "mypy",
		RuleID:     "TYP001",
		Severity:   SeverityMedium,
		File:       "api/handlers.py",
		StartLine:  73,
		Message:    "Function is missing type annotations for one or more arguments",
		Snippet:    "def handle(req): return process(req)",
		Suggestion: "Annotate parameters and return type, e.g., def handle(req: Request) -> Response:",
	})

	c.addSample(
		SamplePR{Name: "Add payments gateway", Slug: "payments-gateway", URL: "https://github.com/example/acme-payments/pull/101"},
		"D102", "TYP001",
	)
	c.addSample(
		SamplePR{Name: "Refactor logging utils", Slug: "refactor-logging", URL: "https://github.com/example/acme-core/pull/42"},
		"F401",
	)
	c.addSample(
		SamplePR{Name: "Shell task runner", Slug: "shell-task-runner", URL: "https://github.com/example/acme-jobs/pull/7"},
		"B602", "F401",
	)

	return c
}

func (c *Catalog) add(f Finding) {
	c.templates[f.RuleID] = f
	c.order = append(c.order, f.RuleID)
}

func (c *Catalog) addSample(s SamplePR, ruleIDs ...string) {
	c.samples = append(c.samples, s)
	// Both the URL and the short slug act as known review keys.
	c.keyRules[s.URL] = ruleIDs
	c.keyRules[s.Slug] = ruleIDs
}

// Template returns the prototype finding for a rule ID.
func (c *Catalog) Template(ruleID string) (Finding, bool) {
	f, ok := c.templates[ruleID]
	return f, ok
}

// Keys returns the template rule IDs in catalog order. The order is fixed so
// that hash-derived fallback selection is stable across processes.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// RulesForKey returns the template keys mapped to a known review key
// (sample PR URL or slug).
func (c *Catalog) RulesForKey(key string) ([]string, bool) {
	keys, ok := c.keyRules[key]
	return keys, ok
}

// Samples returns the demo PRs.
func (c *Catalog) Samples() []SamplePR {
	samples := make([]SamplePR, len(c.samples))
	copy(samples, c.samples)
	return samples
}

// ResolveSample maps a sample PR name or slug to its URL. Anything else is
// returned unchanged so callers can pass URLs and names interchangeably.
func (c *Catalog) ResolveSample(nameOrURL string) string {
	for _, s := range c.samples {
		if s.Name == nameOrURL || s.Slug == nameOrURL {
			return s.URL
		}
	}
	return nameOrURL
}
