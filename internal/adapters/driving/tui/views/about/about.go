// Package about provides the about view for the TUI.
package about

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/messages"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/tui/styles"
)

// section is one heading/body pair of the about copy.
type section struct {
	heading string
	body    string
}

// sections carries the about copy: goal, overview, dataset, interface,
// conclusion.
var sections = []section{
	{
		heading: "",
		body: `The main goal of making WanderStay is to assist people in India by
serving as a personalized, intelligent travel assistant for finding
hotels across states and union territories.`,
	},
	{
		heading: "Overview of WanderStay:",
		body: `WanderStay is divided into various parts:
1. It allows users to search for hotels in a specific state, city, or
   union territory by simply entering their destination.
2. It categorizes hotels based on region, making it easier for users
   to navigate their options.
3. For each state or union territory, WanderStay can provide curated
   lists of iconic hotels with cultural or historical value (e.g.
   palaces in Rajasthan), eco-friendly stays or rural homestays, and
   modern business hotels in metro cities like Mumbai, Delhi, or
   Bengaluru.
4. It also promotes sustainable and eco-friendly accommodations for
   environmentally conscious travelers.`,
	},
	{
		heading: "Dataset of WanderStay",
		body: `The dataset used in WanderStay is a collection of labelled patterns
and entities. The data is stored in a list.
- Patterns: the intent of the user input (e.g. "greeting", "Hotels",
  "JOURNEY")
- Entities: the entities extracted from user input (e.g. "Hi", "Show
  some hotels to stay in for vacations in Goa", "Famous hotels to
  stay in Gujarat")
- Text: the user input text.`,
	},
	{
		heading: "WanderStay's Interface:",
		body: `WanderStay's interface runs in the terminal. It includes a text input
box for users to type their message and a chat transcript that
displays the chatbot's responses. The interface uses the trained
model to generate responses to user input.`,
	},
	{
		heading: "Conclusion:",
		body: `By offering tailored services and an easy-to-use interface,
WanderStay ensures travelers across India find the best accommodation
options, saving time, money, and effort. It serves as a one-stop
solution for planning stays during vacations, work trips, or even
pilgrimages.

DEAR customers, please be ensured that WanderStay will be operational
soon across the GLOBE`,
	},
}

// Text returns the about copy as plain unstyled text.
func Text() string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.heading != "" {
			b.WriteString(s.heading)
			b.WriteString("\n")
		}
		b.WriteString(s.body)
		b.WriteString("\n")
	}
	return b.String()
}

// View represents the about view.
type View struct {
	styles *styles.Styles
	width  int
	height int
	ready  bool
}

// NewView creates a new about view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// Init initialises the about view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the about view.
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
	}
	return v, nil
}

// View renders the about view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("About WanderStay"))
	b.WriteString("\n\n")
	for _, s := range sections {
		if s.heading != "" {
			b.WriteString(v.styles.Subtitle.Render(s.heading))
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Normal.Render(s.body))
		b.WriteString("\n\n")
	}
	b.WriteString(v.styles.Help.Render("[Esc] Menu  [Ctrl+C] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
