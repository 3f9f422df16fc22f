package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// Layout rows around the surface.
const (
	hudRows    = 1
	zoneRows   = 1
	helpRows   = 1
	pauseWidth = 4 // Clickable columns of the pause control in the HUD row

	// ChromeRows is the number of terminal rows used besides the surface.
	ChromeRows = hudRows + zoneRows + helpRows
)

// SurfaceRows returns the surface height for a terminal of termRows rows:
// floor(termRows * ratio), reduced if the HUD, zones and help would not fit.
func SurfaceRows(termRows int, ratio float64) int {
	rows := int(float64(termRows) * ratio)
	if maxRows := termRows - ChromeRows; rows > maxRows {
		rows = maxRows
	}
	return max(rows, 0)
}

// Options configures a play model.
type Options struct {
	Variant       string             // Registry id of the game variant
	Runtime       core.RuntimeConfig // Surface size in cells, tick rate, seed
	SpawnInterval time.Duration
	RepeatDelay   time.Duration // Release timeout after a first key press
	HoldTimeout   time.Duration // Release timeout once the key auto-repeats
	ScreenshotDir string        // Empty means ~/.catch/screenshots
	Logger        *log.Logger   // Nil discards
}

// Model is the Bubble Tea model for a catch session.
type Model struct {
	opts      Options
	fixedSeed bool
	screen    *core.Screen
	session   *Session
	lastGen   uint64
	hud       *HUD
	keys      KeyMap
	help      help.Model
	logger    *log.Logger

	frame      string // Last rendered surface
	gameOver   bool
	finalScore int
	quitting   bool
}

// NewModel creates the model and starts the first session.
// A game that cannot start on the given surface is returned as an error.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = time.Second
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = 150 * time.Millisecond
	}
	if opts.RepeatDelay < opts.HoldTimeout {
		opts.RepeatDelay = max(600*time.Millisecond, opts.HoldTimeout)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:      opts,
		fixedSeed: opts.Runtime.Seed != 0,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		hud:       &HUD{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
	}
	m.help.Width = opts.Runtime.ScreenW

	if err := m.startSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession builds a fresh game from the registry under a new generation.
func (m *Model) startSession() error {
	game, err := registry.Create(m.opts.Variant)
	if err != nil {
		return err
	}
	game.AttachHUD(m.hud)

	cfg := m.opts.Runtime
	if !m.fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	m.lastGen++
	s, err := newSession(m.lastGen, game, cfg)
	if err != nil {
		return fmt.Errorf("start %s: %w", m.opts.Variant, err)
	}

	m.session = s
	m.gameOver = false
	m.finalScore = 0
	m.screen.Clear()
	game.Render(m.screen)
	m.frame = RenderScreen(m.screen)

	m.logger.Info("session started", "variant", game.ID(), "session", s.ID(), "seed", cfg.Seed)
	return nil
}

// sessionCmds starts the frame loop, the spawn timer and the asset watch
// of the current session.
func (m Model) sessionCmds() tea.Cmd {
	return tea.Batch(
		frameCmd(m.session.ID(), m.opts.Runtime.TickRate),
		spawnCmd(m.session.ID(), m.opts.SpawnInterval),
		m.assetsCmd(),
	)
}

// holdTimeout returns how long a press of k keeps the direction held. A first
// press waits out the terminal's repeat delay; a key that is already held is
// auto-repeating and uses the short hold timeout.
func (m Model) holdTimeout(s *Session, k core.Key) time.Duration {
	if s.input.Held(k) {
		return m.opts.HoldTimeout
	}
	return m.opts.RepeatDelay
}

// assetWaiter is implemented by games that load assets in the background.
type assetWaiter interface {
	WaitAssets(ctx context.Context) error
}

// assetsWaitLimit bounds how long the asset watch waits.
const assetsWaitLimit = 30 * time.Second

// assetsCmd waits for the session's assets and reports the outcome.
// Nil when the game loads nothing in the background.
func (m Model) assetsCmd() tea.Cmd {
	w, ok := m.session.game.(assetWaiter)
	if !ok {
		return nil
	}
	gen := m.session.ID()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), assetsWaitLimit)
		defer cancel()
		return assetsMsg{gen: gen, err: w.WaitAssets(ctx)}
	}
}

// Session returns the running session.
func (m Model) Session() *Session {
	return m.session
}

// Init starts the timers of the first session.
func (m Model) Init() tea.Cmd {
	return m.sessionCmds()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The surface keeps its startup size
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if !m.session.Owns(msg.gen) {
			return m, nil
		}
		return m.handleFrame()

	case spawnMsg:
		if !m.session.Owns(msg.gen) {
			return m, nil
		}
		m.session.game.Spawn()
		return m, spawnCmd(msg.gen, m.opts.SpawnInterval)

	case releaseMsg:
		if m.session.Owns(msg.gen) {
			m.session.expire(msg.key, msg.seq)
		}
		return m, nil

	case assetsMsg:
		if msg.err != nil && m.session.Owns(msg.gen) {
			m.logger.Error("asset loading failed, drawing placeholders", "session", msg.gen, "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleFrame runs one frame: clear, render, step, schedule the next frame.
// The cached view therefore shows the state before this frame's step.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	s := m.session

	m.screen.Clear()
	s.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)

	result := s.game.Step(s.input.Frame())
	m.logEvents(result.Events)

	if result.Has(core.EventGameOver) {
		m.gameOver = true
		m.finalScore = result.State.Score
		s.input.Release()
		m.logger.Info("game over", "score", m.finalScore, "session", s.ID(), "elapsed", s.Elapsed().Round(time.Second))
	}

	return m, frameCmd(s.ID(), m.opts.Runtime.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventSpeedUp:
			m.logger.Debug("speed up", "score", ev.Score)
		case core.EventCatch, core.EventMiss:
			m.logger.Debug(ev.Type.String(), "score", ev.Score, "lives", ev.Lives)
		}
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Stop()
		m.logger.Info("session stopped", "session", m.session.ID())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.gameOver {
		if key.Matches(msg, m.keys.Restart) {
			return m.restart()
		}
		return m, nil
	}

	s := m.session
	k := m.keys.MapKey(msg)
	switch k {
	case core.KeyNone:
		return m, nil
	case core.KeyPause:
		if s.input.KeyDown(k, m.hud.Paused) {
			s.game.TogglePause()
		}
		return m, nil
	}

	if m.hud.Paused {
		s.input.KeyDown(k, true)
		return m, nil
	}

	// Terminals send no key release: pressing one direction lets go of the other,
	// and a direction is released when no auto-repeat arrives in time.
	s.input.KeyUp(opposite(k))
	timeout := m.holdTimeout(s, k)
	s.input.KeyDown(k, false)
	seq := s.hold(k)
	return m, releaseCmd(s.ID(), k, seq, timeout)
}

// handleMouse maps clicks on the direction zones to touches and
// clicks on the pause control to a pause toggle.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gameOver {
		return m, nil
	}
	s := m.session

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == 0 && msg.X < pauseWidth {
			s.game.TogglePause()
			return m, nil
		}
		if z := m.zoneAt(msg.X, msg.Y); z != core.ZoneNone {
			if s.touching != core.ZoneNone && s.touching != z {
				s.input.TouchEnd(s.touching)
			}
			s.touching = z
			s.input.TouchStart(z)
		}

	case tea.MouseActionRelease:
		if s.touching != core.ZoneNone {
			s.input.TouchEnd(s.touching)
			s.touching = core.ZoneNone
		}
	}

	return m, nil
}

// zoneAt returns the touch zone under the terminal cell (x, y).
// The zones split the row below the surface in two halves.
func (m Model) zoneAt(x, y int) core.Zone {
	w := m.screen.Width()
	row := hudRows + m.screen.Height()

	switch {
	case core.NewRect(0, row, w/2, zoneRows).Contains(x, y):
		return core.ZoneLeft
	case core.NewRect(w/2, row, w-w/2, zoneRows).Contains(x, y):
		return core.ZoneRight
	}
	return core.ZoneNone
}

// restart tears down the finished session and starts a new one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	old := m.session
	old.Stop()
	m.logger.Info("session stopped", "session", old.ID())

	if err := m.startSession(); err != nil {
		m.logger.Error("could not restart", "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.sessionCmds()
}

// saveScreenshot saves the current surface to a file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".catch", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the HUD, the surface, the touch zones and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()
	surface := m.frame
	if m.gameOver {
		surface = RenderGameOver(m.finalScore, w, h)
	}

	return RenderHUD(m.hud, w) + "\n" +
		surface + "\n" +
		RenderZones(w, m.session.touching) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
