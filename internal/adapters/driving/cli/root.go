// Package cli implements the cobra command tree for the WanderStay CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	corpusPath string
	dataDir    string
)

var (
	chatService    driving.ChatService
	historyService driving.HistoryService
)

// ServiceFactory builds the core services once the persistent flags are
// parsed. It returns a cleanup function that releases the underlying
// stores.
type ServiceFactory func(corpusPath, dataDir string) (driving.ChatService, driving.HistoryService, func(), error)

var serviceFactory ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "wanderstay",
	Short: "WanderStay - Your Premium Hotel Finder chatbot",
	Long: `WanderStay is a hotel-finder chatbot for your terminal.

It trains an intent classifier on a local JSON patterns file and
answers questions about rooms, amenities, bookings, and more. Every
exchange is logged locally and can be browsed or exported as CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		if chatService != nil || serviceFactory == nil || !needsServices(cmd) {
			return nil
		}

		chat, history, cleanup, err := serviceFactory(corpusPath, dataDir)
		if err != nil {
			return err
		}
		chatService = chat
		historyService = history
		if cleanup != nil {
			cobra.OnFinalize(cleanup)
		}
		return nil
	},
}

// needsServices reports whether the command touches the core services.
// Informational commands run without opening the chat log database.
func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "about", "help", "completion":
		return false
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "path to the JSON patterns file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for the chat log database")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory sets the factory used to build services lazily.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetChatService injects the chat service directly, bypassing the
// factory. Used by tests.
func SetChatService(s driving.ChatService) {
	chatService = s
}

// SetHistoryService injects the history service directly, bypassing
// the factory. Used by tests.
func SetHistoryService(s driving.HistoryService) {
	historyService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
