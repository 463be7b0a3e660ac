package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/registry"
)

// audioSink is implemented by games that drive a soundtrack.
type audioSink interface {
	SetAudio(core.Audio)
}

// Model is the Bubble Tea model for running a game.
//
// Frames are delivered by a tick chain: each TickMsg schedules the next one.
// A chain starts when the player starts or restarts and stops at game over,
// so the title card and the game over screen cost nothing. Every new chain
// gets a fresh generation number and frames carrying an older one are
// discarded; a restart can never leave two chains driving the game. Frames
// that arrive while no chain is running are dropped as well.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int
	running    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom row of the terminal is reserved for the key help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)

	if sink, ok := game.(audioSink); ok {
		sink.SetAudio(loggedAudio{logger: logger})
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init prepares the game on its title card. No frames run until Start.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey records the key's action for the next frame. Start and Restart
// also begin a new tick chain when the game is waiting for them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)

	switch {
	case action == core.ActionStart && !m.gameState.Started:
		m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
		return m, m.newChain()
	case action == core.ActionRestart && m.gameState.GameOver:
		m.logger.Info("game restarted", "game", m.game.ID())
		return m, m.newChain()
	}
	return m, nil
}

// newChain abandons any running tick chain and starts another.
func (m *Model) newChain() tea.Cmd {
	m.gen++
	m.running = true
	return tickCmd(m.config.TickRate, m.gen)
}

// handleResize adapts the screen buffer. The world is only rebuilt for the
// new size while the title card is showing; a run in progress keeps its
// viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playfieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if !m.gameState.Started {
		m.game.Reset(m.config)
		m.inputFrame.Clear()
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next frame unless
// the game just ended.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.running || msg.Gen != m.gen {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.running = false
		if !wasOver {
			m.logger.Info("game over", "game", m.game.ID(),
				"score", m.gameState.Score, "distance", m.gameState.Distance, "ticks", m.gameState.Ticks)
		}
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
