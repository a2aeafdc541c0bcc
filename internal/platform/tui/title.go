package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// TitleChoice is what the user picked on the title screen.
type TitleChoice int

const (
	TitleChoiceNone TitleChoice = iota
	TitleChoicePlay
	TitleChoiceScores
)

// titleItems are the selectable entries, in display order.
var titleItems = []struct {
	label  string
	choice TitleChoice
}{
	{"Play", TitleChoicePlay},
	{"High Scores", TitleChoiceScores},
	{"Quit", TitleChoiceNone},
}

// TitleModel is the Bubble Tea model for the start screen.
type TitleModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choice    TitleChoice
	quitting  bool
}

// NewTitleModel creates a new title screen model.
func NewTitleModel(cfg core.RuntimeConfig) TitleModel {
	return TitleModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(titleItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := titleItems[m.cursor]
		if selected.choice == TitleChoiceNone {
			m.quitting = true
			return m, tea.Quit
		}
		m.choice = selected.choice
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText("D O O D L E   J U M P", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Bounce up the platforms. Don't fall.", m.width))
	b.WriteString("\n\n\n")

	for i, item := range titleItems {
		line := "  " + item.label
		if i == m.cursor {
			line = "> " + item.label
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	b.WriteString(centerText("←/→ steer · p pause · r retry · q quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selection, or TitleChoiceNone if nothing was picked yet.
func (m TitleModel) Choice() TitleChoice {
	return m.choice
}

// IsQuitting returns true if the user quit from the title screen.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}
