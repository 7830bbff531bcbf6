package coach

import (
	"context"
	"fmt"
	"strings"

	"prcoach/internal/logging"
	"prcoach/internal/providers"
)

// docRulePrefix marks documentation-family rules (pydocstyle D1xx etc).
const docRulePrefix = "D"

// narratorMaxTokens and narratorTemperature bound the optional external
// narrative call; steps and references never come from the narrator.
const (
	narratorMaxTokens   = 300
	narratorTemperature = 0.2
)

// Engine composes findings, policy, and rule knowledge into answers. A nil
// narrator means every narrative is produced locally.
type Engine struct {
	kb       *KnowledgeBase
	narrator providers.Narrator
}

// NewEngine creates an explanation engine. narrator may be nil.
func NewEngine(kb *KnowledgeBase, narrator providers.Narrator) *Engine {
	return &Engine{kb: kb, narrator: narrator}
}

// ExplainOptions are per-request switches.
type ExplainOptions struct {
	// NoSnippet suppresses the example snippet even when policy allows it.
	NoSnippet bool
}

// Explain produces an Answer for one finding. It always returns a usable
// answer: narrator failures of any kind degrade to the local templated
// narrative and are only logged.
func (e *Engine) Explain(ctx context.Context, f Finding, pol Policy, opts ExplainOptions) Answer {
	blurb := e.kb.Lookup(f.Tool, f.RuleID)

	var snippet string
	if !opts.NoSnippet && pol.AllowSnippets {
		snippet = f.Snippet
	}

	policyNote := e.policyNote(f, pol)

	text, narrated := e.narrate(ctx, f, blurb, policyNote, snippet)
	if !narrated {
		text = localNarrative(blurb, policyNote)
	}

	return Answer{
		Text:           text,
		Steps:          RemediationSteps(f),
		ExampleSnippet: snippet,
		References:     blurb.References,
		Safety: Safety{
			RedactionsApplied: true, // snippets are redacted at fetch time
			SpanHash:          HashSpan(f.File, f.StartLine),
			NarratorUsed:      narrated,
		},
	}
}

// policyNote returns the clarifying note for documentation rules under a
// public-only docstring policy.
func (e *Engine) policyNote(f Finding, pol Policy) string {
	if strings.HasPrefix(f.RuleID, docRulePrefix) && pol.RequireDocstringsPublicOnly {
		return "Per policy, docstrings are required for public APIs; private (`_name`) recommended, not required."
	}
	return ""
}

// narrate attempts the external narrative call. It reports failure instead
// of propagating it: an injected narrator must never take down an
// explanation.
func (e *Engine) narrate(ctx context.Context, f Finding, blurb RuleBlurb, policyNote, snippet string) (text string, ok bool) {
	if e.narrator == nil {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Warnw("narrator panicked, using local narrative",
				"narrator", e.narrator.Name(), "rule", f.RuleID, "panic", r)
			text, ok = "", false
		}
	}()

	resp, err := e.narrator.Narrate(ctx, providers.NarrateRequest{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildPrompt(f, blurb, policyNote, snippet),
		MaxTokens:    narratorMaxTokens,
		Temperature:  narratorTemperature,
	})
	if err != nil {
		logging.Logger.Warnw("narrative generation failed, using local narrative",
			"narrator", e.narrator.Name(), "rule", f.RuleID, "err", err)
		return "", false
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		logging.Logger.Warnw("narrator returned empty content, using local narrative",
			"narrator", e.narrator.Name(), "rule", f.RuleID)
		return "", false
	}
	return content, true
}

// localNarrative is the deterministic fallback composition of a blurb.
func localNarrative(blurb RuleBlurb, policyNote string) string {
	text := fmt.Sprintf("**What it is:** %s\n\n**Why it matters:** %s\n\n**How to fix:** %s",
		blurb.What, blurb.Why, blurb.Fix)
	if policyNote != "" {
		text += "\n\n" + policyNote
	}
	return text
}
