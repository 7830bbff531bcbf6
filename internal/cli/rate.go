package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"prcoach/internal/config"
	"prcoach/internal/feedback"
)

var (
	flagHelpful   bool
	flagUnhelpful bool
	flagNote      string
	flagSpanHash  string
	flagRatingsFinding string
)

// feedbackDBPath resolves the ratings database location: config override or
// the default under the config directory.
func feedbackDBPath(cfg config.Config) (string, error) {
	if cfg.FeedbackDB != "" {
		return cfg.FeedbackDB, nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "feedback.db"), nil
}

var rateCmd = &cobra.Command{
	Use:   "rate <finding-id>",
	Short: "Rate an explanation as helpful or not",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagHelpful == flagUnhelpful {
			return fmt.Errorf("exactly one of --helpful or --unhelpful is required")
		}

		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		path, err := feedbackDBPath(cfg)
		if err != nil {
			return err
		}
		store, err := feedback.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		defer store.Close()

		r, err := store.Save(args[0], flagSpanHash, flagHelpful, flagNote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Recorded rating %s for %s\n", r.ID, r.FindingID)
		return nil
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Inspect recorded explanation ratings",
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded ratings, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		path, err := feedbackDBPath(cfg)
		if err != nil {
			return err
		}
		store, err := feedback.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		defer store.Close()

		ratings, err := store.List(flagRatingsFinding)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		data, err := json.MarshalIndent(ratings, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var feedbackSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show helpful/unhelpful counts per finding",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		path, err := feedbackDBPath(cfg)
		if err != nil {
			return err
		}
		store, err := feedback.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		defer store.Close()

		sums, err := store.Summarize()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		for _, s := range sums {
			fmt.Fprintf(os.Stdout, "%-16s helpful: %d  unhelpful: %d\n", s.FindingID, s.Helpful, s.Unhelpful)
		}
		return nil
	},
}

func init() {
	rateCmd.Flags().BoolVar(&flagHelpful, "helpful", false, "Mark the explanation as helpful")
	rateCmd.Flags().BoolVar(&flagUnhelpful, "unhelpful", false, "Mark the explanation as not helpful")
	rateCmd.Flags().StringVar(&flagNote, "note", "", "Optional note")
	rateCmd.Flags().StringVar(&flagSpanHash, "span", "", "Span hash from the explanation footer")

	feedbackListCmd.Flags().StringVar(&flagRatingsFinding, "finding", "", "Filter by finding ID")

	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackCmd.AddCommand(feedbackSummaryCmd)
}
