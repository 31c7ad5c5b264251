package cli

import (
	"github.com/spf13/cobra"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/views/about"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "About WanderStay",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("WanderStay - Your Premium Hotel Finder")
		cmd.Println()
		cmd.Print(about.Text())
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
