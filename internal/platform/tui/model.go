package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game. It samples input
// into a per-tick frame, steps the simulation at the configured tick rate,
// and renders the core's screen buffer.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	board      *storage.Board
	config     core.RuntimeConfig
	playerName string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	bell       bool // Ring the terminal bell in the next view (bounce sound)
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game core.Game, board *storage.Board, cfg core.RuntimeConfig, playerName string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		config:     cfg,
		playerName: playerName,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the title screen, but only from a settled state
	if action := m.keyMapper.MapKeyToMenuAction(msg); action == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in a
// fixed world space, so a resize only changes how it is scaled onto the
// terminal; the session itself is untouched.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.bell = false

	// Retry: reseed and rebuild the whole session
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev == core.EventBounce {
			m.bell = true
		}
	}

	// Record the run once per game over
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.board != nil {
			m.board.SaveScore(m.playerName, m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot dumps the current frame as plain text under
// ~/.doodle/screenshots. Best-effort; the game never stops for it.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".doodle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.bell {
		// BEL is the terminal's fire-and-forget sound channel.
		out = "\a" + out
	}
	return out
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the title screen.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// sessionState tracks which screen a session is showing.
type sessionState int

const (
	stateTitle sessionState = iota
	stateGame
	stateScores
)

// SessionModel manages the full session flow: title → game → title, with
// the leaderboard reachable from the title screen. It is the top-level
// model for both local play and SSH sessions.
type SessionModel struct {
	newGame    func() core.Game
	board      *storage.Board
	config     core.RuntimeConfig
	playerName string
	state      sessionState
	title      TitleModel
	gameModel  *GameModel
	scores     *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session which builds games from the given factory.
func NewSessionModel(newGame func() core.Game, board *storage.Board, cfg core.RuntimeConfig, playerName string) SessionModel {
	return SessionModel{
		newGame:    newGame,
		board:      board,
		config:     cfg,
		playerName: playerName,
		state:      stateTitle,
		title:      NewTitleModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.title.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size for every screen
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateTitle(msg)
	}
}

// updateTitle handles updates while the title screen is showing.
func (m SessionModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newTitle, cmd := m.title.Update(msg)
	if titleModel, ok := newTitle.(TitleModel); ok {
		m.title = titleModel
	}

	if m.title.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.title.Choice() {
	case TitleChoicePlay:
		game := m.newGame()
		gameModel := NewGameModel(game, m.board, m.config, m.playerName)
		m.gameModel = &gameModel
		m.state = stateGame
		m.title = NewTitleModel(m.config)
		return m, m.gameModel.Init()

	case TitleChoiceScores:
		scores := NewScoreboardModel(m.board, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.state = stateScores
		m.title = NewTitleModel(m.config)
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.state = stateTitle
		m.gameModel = nil
		m.title = NewTitleModel(m.config)
		return m, m.title.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates while the leaderboard is showing.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scoresModel
	}

	if m.scores.GoingBack() {
		m.state = stateTitle
		m.scores = nil
		m.title = NewTitleModel(m.config)
		return m, m.title.Init()
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.gameModel.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.title.View()
	}
}

// Run starts a local Bubble Tea session for the given game factory.
func Run(newGame func() core.Game, board *storage.Board, cfg core.RuntimeConfig, playerName string) error {
	model := NewSessionModel(newGame, board, cfg, playerName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
