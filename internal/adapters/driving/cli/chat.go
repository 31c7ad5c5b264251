package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui"
	chatview "github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/views/chat"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

var chatHistoryLimit int

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the WanderStay chatbot",
	Long: `Talk to the WanderStay chatbot.

With a message argument, answers it once and exits:
  wanderstay chat "do you have rooms available?"

Without arguments, opens the interactive terminal UI. When stdin is
not a terminal (for example when piping), each input line is answered
in turn instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().IntVar(&chatHistoryLimit, "history-limit", 50, "exchanges shown in the history view")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	ctx := cmd.Context()

	// One-shot mode: answer a single message and exit.
	if len(args) == 1 {
		if err := chatService.Initialize(ctx); err != nil {
			return fmt.Errorf("initializing chatbot: %w", err)
		}
		entry, err := chatService.Respond(ctx, args[0])
		if err != nil {
			return fmt.Errorf("responding: %w", err)
		}
		cmd.Println(entry.Response)
		return nil
	}

	// Piped or redirected input: answer line by line.
	if in := cmd.InOrStdin(); in != os.Stdin || !term.IsTerminal(int(os.Stdin.Fd())) {
		return runChatPiped(cmd, chatService)
	}

	app, err := tui.NewApp(&tui.Ports{
		Chat:         chatService,
		History:      historyService,
		HistoryLimit: chatHistoryLimit,
	})
	if err != nil {
		return fmt.Errorf("creating chat UI: %w", err)
	}

	return app.WithContext(ctx).Run()
}

// runChatPiped reads messages from stdin and prints a reply per line.
// A goodbye reply ends the conversation.
func runChatPiped(cmd *cobra.Command, chat driving.ChatService) error {
	ctx := cmd.Context()
	if err := chat.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing chatbot: %w", err)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		entry, err := chat.Respond(ctx, text)
		if err != nil {
			return fmt.Errorf("responding: %w", err)
		}
		cmd.Println(entry.Response)

		switch strings.ToLower(strings.TrimSpace(entry.Response)) {
		case "goodbye", "bye":
			cmd.Println(chatview.FarewellMessage)
			return nil
		}
	}
	return scanner.Err()
}
