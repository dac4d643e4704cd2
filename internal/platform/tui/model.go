package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model for one snake session.
//
// The session renders into an in-memory screen on every tick and View
// styles that screen. Key messages are buffered and sampled by the session
// at the start of the next tick.
type Model struct {
	session  *snake.Session
	screen   *core.Screen
	keys     *KeyBuffer
	keyMap   KeyMap
	theme    Theme
	err      error
	quitting bool
	over     bool
}

// NewModel creates a new Bubble Tea model for a snake session.
func NewModel(cfg config.SnakeConfig, logger *log.Logger) Model {
	screen := core.NewScreen(cfg.Field.Width, cfg.Field.Height)
	keys := &KeyBuffer{}

	return Model{
		session: snake.NewSession(cfg, screen, keys, logger),
		screen:  screen,
		keys:    keys,
		keyMap:  DefaultKeyMap(),
		theme:   NewTheme(cfg.Glyphs),
	}
}

// Init initializes the session and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Init()
	return tickCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.keys.Press(KeyName(msg))
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.over || m.quitting {
		return m, nil
	}

	if err := m.session.Step(); err != nil {
		m.err = err
		return m, tea.Quit
	}

	if m.session.Terminated() {
		m.over = true
		return m, tea.Quit
	}

	return m, tickCmd(m.session.Interval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.theme.RenderScreen(m.screen)
}

// Err returns the render error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Snapshot exposes the session state.
func (m Model) Snapshot() snake.Snapshot {
	return m.session.Snapshot()
}

// Run starts a Bubble Tea program for one session and blocks until the
// snake dies or the player quits. The inline renderer is used so the final
// frame stays on the terminal.
func Run(cfg config.SnakeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(cfg, logger))

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
