package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

var (
	historyLimit int
	historyCSV   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the conversation history",
	Long: `Show logged conversations with the chatbot, newest first.

Use --csv to export the full log as CSV to stdout:
  wanderstay history --csv > conversations.csv`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of exchanges to show")
	historyCmd.Flags().BoolVar(&historyCSV, "csv", false, "export the full log as CSV")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := cmd.Context()

	if historyCSV {
		return historyService.ExportCSV(ctx, cmd.OutOrStdout())
	}

	entries, err := historyService.List(ctx, historyLimit, 0)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No conversations yet.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("[%s]\n", entry.CreatedAt.Format(domain.LogTimeFormat))
		cmd.Printf("  You:        %s\n", entry.UserInput)
		cmd.Printf("  WanderStay: %s\n", entry.Response)
		cmd.Println()
	}

	return nil
}
