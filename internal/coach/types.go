package coach

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Finding represents a single analyzer finding attached to a review.
// Findings are immutable once created by the Fetcher; the snippet is
// already redacted by then.
type Finding struct {
	ID         string   `json:"id"`
	Tool       string   `json:"tool"`
	RuleID     string   `json:"ruleId"`
	Severity   Severity `json:"severity"`
	File       string   `json:"file"`
	StartLine  int      `json:"startLine"`
	EndLine    int      `json:"endLine,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Snippet    string   `json:"snippet,omitempty"`
}

// LastLine returns the end line if set, otherwise the start line.
func (f Finding) LastLine() int {
	if f.EndLine > 0 {
		return f.EndLine
	}
	return f.StartLine
}

// Policy controls how explanations are composed. It is read-only for the
// lifetime of a session.
type Policy struct {
	RequireDocstringsPublicOnly bool              `json:"requireDocstringsPublicOnly"`
	MaxInlineComments           int               `json:"maxInlineComments"`
	AllowSnippets               bool              `json:"allowSnippets"`
	Notes                       map[string]string `json:"notes,omitempty"`
}

// DefaultPolicy returns the policy applied when the caller supplies none.
func DefaultPolicy() Policy {
	return Policy{
		RequireDocstringsPublicOnly: true,
		MaxInlineComments:           10,
		AllowSnippets:               true,
		Notes: map[string]string{
			"docstrings": "Docstrings required for public APIs; private (_name) recommended, not required.",
		},
	}
}

// Reference points at documentation for a rule.
type Reference struct {
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// RuleBlurb is the static what/why/fix knowledge for one (tool, rule) pair.
type RuleBlurb struct {
	What       string      `json:"what"`
	Why        string      `json:"why"`
	Fix        string      `json:"fix"`
	References []Reference `json:"references,omitempty"`
}

// Safety carries audit metadata attached to every answer.
type Safety struct {
	RedactionsApplied bool   `json:"redactionsApplied"`
	SpanHash          string `json:"spanHash"`
	NarratorUsed      bool   `json:"narratorUsed"`
}

// Answer is the result of explaining a single finding. It is always
// complete: even when the external narrator fails, the text and steps are
// filled from the local templates.
type Answer struct {
	Text           string      `json:"text"`
	Steps          []string    `json:"steps"`
	ExampleSnippet string      `json:"exampleSnippet,omitempty"`
	References     []Reference `json:"references"`
	Safety         Safety      `json:"safety"`
}
