// Package history provides the conversation history view for the TUI.
package history

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/messages"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/styles"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

// View represents the conversation history view.
type View struct {
	styles *styles.Styles

	historyService driving.HistoryService
	ctx            context.Context

	entries []domain.ChatLogEntry
	limit   int
	loaded  bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new history view showing at most limit exchanges.
func NewView(s *styles.Styles, historyService driving.HistoryService, limit int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if limit <= 0 {
		limit = 50
	}

	return &View{
		styles:         s,
		historyService: historyService,
		ctx:            context.Background(),
		limit:          limit,
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.loadHistory()
}

// loadHistory fetches the log from the history service.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := v.historyService.List(v.ctx, v.limit, 0)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if msg.String() == "r" {
			v.loaded = false
			return v, v.loadHistory()
		}
		return v, nil

	case messages.HistoryLoaded:
		v.loaded = true
		v.entries = msg.Entries
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.entries)*3+6)

	sections = append(sections, v.styles.Title.Render("Conversation History"), "")

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case !v.loaded:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case len(v.entries) == 0:
		sections = append(sections, v.styles.Muted.Render("No conversations yet."))
	default:
		sections = append(sections, v.styles.Muted.Render(
			fmt.Sprintf("Showing %d most recent exchanges", len(v.entries))), "")
		for _, entry := range v.entries {
			timestamp := entry.CreatedAt.Format(domain.LogTimeFormat)
			sections = append(sections,
				v.styles.Muted.Render(timestamp),
				v.styles.UserMessage.Render("You: ")+v.styles.Normal.Render(entry.UserInput),
				v.styles.BotMessage.Render("WanderStay: "+entry.Response),
				"",
			)
		}
	}

	sections = append(sections, "", v.styles.Help.Render("[r] Reload  [Esc] Menu  [Ctrl+C] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.ChatLogEntry {
	return v.entries
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
