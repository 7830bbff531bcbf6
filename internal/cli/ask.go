package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prcoach/internal/coach"
	"prcoach/internal/config"
	"prcoach/internal/providers"
)

var askCmd = &cobra.Command{
	Use:   "ask <pr> <question>",
	Short: "Ask a free-text question about a pull request",
	Long:  "Ask a question about a pull request's findings. Questions that name a rule ID or file are routed to the matching finding; everything else gets the policy overview.",
	Args:  cobra.MinimumNArgs(2),
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

		question := strings.Join(args[1:], " ")
		f, ok := coach.RouteQuestion(question, findings)
		if !ok {
			fmt.Fprintln(os.Stdout, coach.PolicyOverview(cfg.Policy))
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
	addCoachFlags(askCmd)
}
