package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prcoach/internal/cache"
	"prcoach/internal/coach"
	"prcoach/internal/config"
	"prcoach/internal/logging"
	"prcoach/internal/output"
	"prcoach/internal/providers"
)

var (
	flagFindingID string
	flagRuleID    string
)

// buildNarrator constructs the configured narrator wrapped with the response
// cache. A nil narrator means local templates only: a provider whose API key
// is absent from the environment is treated as disabled, not as an error.
func buildNarrator(cfg config.Config) (providers.Narrator, error) {
	if flagLocal {
		return nil, nil
	}
	n, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		if providers.IsCredentialError(err) {
			logging.Logger.Infow("narrator disabled, using local narratives",
				"provider", cfg.Provider, "reason", err)
			return nil, nil
		}
		return nil, err
	}
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return cache.WrapNarrator(n, c), nil
}

// selectFinding picks the finding to explain: by --finding ID, by --rule,
// or the first finding when neither is given.
func selectFinding(findings []coach.Finding) (coach.Finding, error) {
	if len(findings) == 0 {
		return coach.Finding{}, fmt.Errorf("no findings to explain")
	}
	if flagFindingID != "" {
		for _, f := range findings {
			if f.ID == flagFindingID {
				return f, nil
			}
		}
		return coach.Finding{}, fmt.Errorf("no finding with id %q", flagFindingID)
	}
	if flagRuleID != "" {
		for _, f := range findings {
			if f.RuleID == flagRuleID {
				return f, nil
			}
		}
		return coach.Finding{}, fmt.Errorf("no finding for rule %q", flagRuleID)
	}
	return findings[0], nil
}

func writeAnswer(cfg config.Config, f coach.Finding, ans coach.Answer) error {
	writer, err := output.GetWriter(cfg.Format)
	if err != nil {
		return err
	}
	return writer.WriteAnswer(os.Stdout, f, ans)
}

var explainCmd = &cobra.Command{
	Use:   "explain <pr>",
	Short: "Explain a finding in plain language",
	Long:  "Explain one finding from a pull request: what it is, why it matters, and steps to fix. Defaults to the first finding; select with --finding or --rule.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		_, findings, err := loadFindings(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		f, err := selectFinding(findings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		narrator, err := buildNarrator(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if providers.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		engine := coach.NewEngine(coach.NewKnowledgeBase(), narrator)
		ans := engine.Explain(context.Background(), f, cfg.Policy, coach.ExplainOptions{
			NoSnippet: cfg.NoSnippet,
		})

		if err := writeAnswer(cfg, f, ans); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	addCoachFlags(explainCmd)
	explainCmd.Flags().StringVar(&flagFindingID, "finding", "", "Finding ID to explain")
	explainCmd.Flags().StringVar(&flagRuleID, "rule", "", "Rule ID to explain (first match)")
}
