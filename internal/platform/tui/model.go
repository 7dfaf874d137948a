package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/loop"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Options configures a terminal session.
type Options struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger // Nil discards log output
	ScreenshotDir string      // Empty uses ~/.arcade/screenshots
}

// session holds the mutable state shared by copies of the Bubble Tea model.
type session struct {
	game    registry.Game
	display core.Display
	screen  *core.Screen
	surface *core.CellSurface
	clock   *loop.SystemClock
	frames  *loop.FrameQueue
	driver  *loop.Driver
	holds   *HoldTracker
	state   core.GameState
}

// newSession resets the game and sizes the screen to its canvas.
func newSession(game registry.Game, rc core.RuntimeConfig) (*session, error) {
	if err := game.Reset(rc); err != nil {
		return nil, err
	}
	d := game.Display()
	cols := int(math.Ceil(d.Width / d.CellWidth))
	rows := int(math.Ceil(d.Height / d.CellHeight))
	screen := core.NewScreen(cols, rows)

	s := &session{
		game:    game,
		display: d,
		screen:  screen,
		surface: core.NewCellSurface(screen, d.CellWidth, d.CellHeight),
		clock:   loop.NewSystemClock(),
		frames:  &loop.FrameQueue{},
		holds:   NewHoldTracker(d.HoldWindow),
		state:   game.State(),
	}
	s.driver = loop.NewDriver(d.TickRate, s.tick)
	return s, nil
}

func (s *session) start() {
	s.driver.Start(s.clock, s.frames)
}

func (s *session) tick() {
	s.state = s.game.Step(s.surface).State
}

// frame handles one display refresh: expired holds become key-ups, then the
// driver decides whether a tick is due.
func (s *session) frame() {
	now := s.clock.Now()
	for _, ev := range s.holds.Expire(now) {
		s.game.HandleKey(ev)
	}
	s.frames.Fire(now)
}

func (s *session) press(k core.Key) {
	s.game.HandleKey(s.holds.Press(k, s.clock.Now()))
}

// restart rebuilds the game and replaces the driver, since a stopped driver
// cannot be restarted.
func (s *session) restart(rc core.RuntimeConfig) error {
	s.holds.ReleaseAll()
	s.driver.Stop()
	if err := s.game.Reset(rc); err != nil {
		return err
	}
	s.state = s.game.State()
	s.screen.Clear()
	s.frames = &loop.FrameQueue{}
	s.driver = loop.NewDriver(s.display.TickRate, s.tick)
	s.start()
	return nil
}

// Model is the Bubble Tea model for running a maze game.
type Model struct {
	sess     *session
	opts     Options
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel resets the game and creates a model for it.
func NewModel(game registry.Game, opts Options) (Model, error) {
	sess, err := newSession(game, opts.Runtime)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		sess:   sess,
		opts:   opts,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   h,
		logger: logger,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.sess.start()
	m.logger.Debug("loop started",
		"game", m.sess.game.ID(),
		"tick_rate", m.sess.display.TickRate,
		"refresh_rate", m.sess.display.RefreshRate,
		"interval", m.sess.driver.Interval())
	return frameCmd(m.sess.display.RefreshRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		m.sess.frame()
		return m, frameCmd(m.sess.display.RefreshRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, action := m.mapper.MapKey(msg)

	switch action {
	case ActionMove:
		m.sess.press(k)

	case ActionQuit:
		m.sess.driver.Stop()
		m.quitting = true
		m.logger.Info("session ended",
			"game", m.sess.game.ID(),
			"score", m.sess.state.Score,
			"ticks", m.sess.state.Ticks)
		return m, tea.Quit

	case ActionRestart:
		if err := m.sess.restart(m.opts.Runtime); err != nil {
			m.logger.Error("restart failed", "error", err)
			m.status = fmt.Sprintf("restart failed: %v", err)
			return m, nil
		}
		m.status = "restarted"

	case ActionScreenshot:
		path, err := saveScreenshot(m.opts.ScreenshotDir, m.sess.game.ID(), m.sess.screen)
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
			return m, nil
		}
		m.logger.Info("screenshot saved", "path", path)
		m.status = "saved " + path

	case ActionCopy:
		if err := clipboard.WriteAll(m.sess.screen.String()); err != nil {
			m.logger.Warn("clipboard copy failed", "error", err)
			m.status = "clipboard unavailable"
			return m, nil
		}
		m.status = "frame copied to clipboard"

	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.sess.game.Title()),
		RenderScreen(m.sess.screen),
		statusStyle.Render(m.status),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.sess.state
}

// saveScreenshot writes the screen as plain text and returns the file path.
func saveScreenshot(dir, gameID string, screen *core.Screen) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: no home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for the given game and returns the
// final game state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	model, err := NewModel(game, opts)
	if err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
