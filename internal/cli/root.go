package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prcoach/internal/logging"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:   "prcoach",
	Short: "Explain code-review findings in plain language",
	Long:  "PR Coach fetches analyzer findings for a pull request and explains each one with what it is, why it matters, and concrete steps to fix it.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(flagDebug)
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(findingsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print prcoach version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "prcoach version %s\n", version)
	},
}
