package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prcoach/internal/coach"
	"prcoach/internal/config"
	"prcoach/internal/output"
)

// Shared command flags
var (
	flagProvider  string
	flagModel     string
	flagFormat    string
	flagNoSnippet bool
	flagLocal     bool
)

func addCoachFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Narrator provider (groq, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().BoolVar(&flagNoSnippet, "no-snippet", false, "Omit code snippets from output")
	cmd.Flags().BoolVar(&flagLocal, "local", false, "Skip the narrator and use local templates only")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagNoSnippet {
		m["noSnippet"] = "true"
	}
	return m
}

// loadFindings resolves a sample name or PR URL and fetches its findings.
func loadFindings(prKey string) (string, []coach.Finding, error) {
	catalog := coach.NewCatalog()
	key := catalog.ResolveSample(prKey)
	findings, err := coach.NewFetcher(catalog).Fetch(key)
	if err != nil {
		return "", nil, err
	}
	return key, findings, nil
}

var findingsCmd = &cobra.Command{
	Use:   "findings <pr>",
	Short: "List findings for a pull request",
	Long:  "List analyzer findings for a pull request URL or a registered sample name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		key, findings, err := loadFindings(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		writer, err := output.GetWriter(cfg.Format)
		if err != nil {
			return err
		}
		if err := writer.WriteFindings(os.Stdout, key, findings); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	addCoachFlags(findingsCmd)
}
