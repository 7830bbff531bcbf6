package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prcoach/internal/coach"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List registered sample pull requests",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range coach.NewCatalog().Samples() {
			fmt.Fprintf(os.Stdout, "%-20s %s\n    %s\n", s.Slug, s.Name, s.URL)
		}
	},
}
