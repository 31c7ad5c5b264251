// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/components/input"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/messages"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/styles"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

// WelcomeBanner greets the user when the chat view opens.
const WelcomeBanner = "Welcome to WanderStay, your one stop solution for finding famous hotels in INDIA. " +
	"Please kindly search for hotels in state wise or UT wise format like: " +
	"'Recommend some best-rated hotels to rent in Goa', and then press enter to start the conversation."

// FarewellMessage is shown before the app exits on a goodbye reply.
const FarewellMessage = "Thank you for chatting with me. Have a great JOURNEY ahead!"

// farewellDelay keeps the farewell on screen before quitting.
const farewellDelay = 1200 * time.Millisecond

// exchange is one rendered turn of the conversation.
type exchange struct {
	userInput string
	response  string
}

// View represents the conversation view with a transcript and input.
type View struct {
	styles *styles.Styles
	input  *input.ChatInput

	chatService driving.ChatService
	ctx         context.Context

	transcript []exchange
	closing    bool
	waiting    bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		input:       input.NewChatInput(s),
		chatService: chatService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ResponseReceived:
		return v.handleResponse(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.waiting = false
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.closing {
		return v, nil
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(v.input.Value())
		if text == "" || v.waiting {
			return v, nil
		}
		v.waiting = true
		v.input.SetValue("")
		return v, v.sendMessage(text)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// sendMessage asks the chat service for a reply.
func (v *View) sendMessage(text string) tea.Cmd {
	return func() tea.Msg {
		entry, err := v.chatService.Respond(v.ctx, text)
		return messages.ResponseReceived{Entry: entry, Err: err}
	}
}

// handleResponse appends the exchange to the transcript and quits the
// conversation on a goodbye reply.
func (v *View) handleResponse(msg messages.ResponseReceived) (*View, tea.Cmd) {
	v.waiting = false

	if msg.Err != nil {
		v.err = msg.Err
		return v, nil
	}

	v.err = nil
	v.transcript = append(v.transcript, exchange{
		userInput: msg.Entry.UserInput,
		response:  msg.Entry.Response,
	})

	if isGoodbye(msg.Entry.Response) {
		v.closing = true
		v.input.Blur()
		return v, tea.Tick(farewellDelay, func(time.Time) tea.Msg {
			return messages.Quit{}
		})
	}

	return v, nil
}

// isGoodbye reports whether the reply ends the conversation.
func isGoodbye(response string) bool {
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "goodbye", "bye":
		return true
	}
	return false
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.transcript)*2+8)

	sections = append(sections, v.styles.Title.Render("WanderStay Chat"), "")
	sections = append(sections, v.styles.Muted.Render(WelcomeBanner), "")

	for _, ex := range v.transcript {
		sections = append(sections,
			v.styles.UserMessage.Render("You: ")+v.styles.Normal.Render(ex.userInput),
			v.styles.BotMessage.Render("WanderStay: "+ex.response),
			"",
		)
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.closing {
		sections = append(sections, v.styles.Success.Render(FarewellMessage))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if v.waiting {
		sections = append(sections, v.styles.Muted.Render("..."), "")
	}

	sections = append(sections, v.input.View(), "")
	sections = append(sections, v.styles.Help.Render("[Enter] Send  [Esc] Menu  [Ctrl+C] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Reset clears the transcript and focuses the input.
func (v *View) Reset() {
	v.transcript = nil
	v.closing = false
	v.waiting = false
	v.err = nil
	v.input.Focus()
	v.input.SetValue("")
}

// Transcript returns the number of completed exchanges.
func (v *View) Transcript() int {
	return len(v.transcript)
}

// Closing reports whether a goodbye reply ended the conversation.
func (v *View) Closing() bool {
	return v.closing
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
