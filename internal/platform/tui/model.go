package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// Resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Reconfigurer is implemented by games that accept a new configuration for
// their next round.
type Reconfigurer interface {
	Reconfigure(cfg config.FroggerConfig)
}

// Options holds the per-session settings of a Model.
type Options struct {
	Player     string // stored with every run
	Difficulty string // stored with every run
	Logger     *log.Logger
	Reloads    <-chan config.Reload // optional config hot reload
}

// StatsReporter is implemented by games that count their own rounds.
// The model falls back to counting step events for other games.
type StatsReporter interface {
	RunStats() core.RunStats
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	run        core.RunStats
	best       int
	status     string

	scoreboard     *ScoreboardModel
	showScoreboard bool

	hosted     bool // Runs inside a SessionModel; leaving does not stop the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger.With("player", opts.Player),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}

	// The game screen leaves the last line for the help bar
	m.config.ScreenH = m.screen.Height()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.best = m.loadBest()
	return m
}

// gameHeight reserves one line for the help bar.
func gameHeight(h int) int {
	return max(1, h-1)
}

// Init starts the tick loop and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.opts.Reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScoreboard {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.hosted {
				return m, nil
			}
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionScoreboard:
		if m.gameState.GameOver {
			sb := NewScoreboardModel(m.store, m.game.ID(), m.config.ScreenW, m.config.ScreenH+1)
			sb.embedded = true
			m.scoreboard = &sb
			m.showScoreboard = true
		}
		return m, nil

	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// updateScoreboard forwards keys to the embedded scoreboard until it is closed.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	m.scoreboard = &sb

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.showScoreboard = false
		m.scoreboard = nil
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Games that can relayout keep their state; others restart
	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	if m.scoreboard != nil {
		updated, _ := m.scoreboard.Update(msg)
		if sb, ok := updated.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.run.Ticks++
	}

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a game event and updates the round counters.
func (m *Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventCollision:
		m.run.Collisions++
		m.logger.Debug("collision", "x", e.X, "y", e.Y)
	case core.EventLifeLost:
		m.logger.Debug("life lost", "lives", e.Value)
	case core.EventGoal:
		m.run.Crossings++
		m.logger.Debug("goal", "points", e.Value, "score", m.gameState.Score)
	case core.EventGameOver:
		m.logger.Debug("game over", "score", e.Value)
		m.saveRun()
	case core.EventReset:
		m.logger.Debug("round reset")
		m.run = core.RunStats{}
		m.scoreSaved = false
		m.status = ""
	case core.EventHelp:
		m.logger.Debug("help requested")
	}
}

// saveRun stores the finished round once. Storage is best-effort: errors
// are logged and the game continues.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.gameState.Score
	switch {
	case score > m.best:
		m.status = fmt.Sprintf("New best: %d!", score)
		m.best = score
	default:
		m.status = fmt.Sprintf("Best: %d", m.best)
	}

	if m.store == nil || score <= 0 {
		return
	}
	stats := m.runStats()
	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Difficulty: m.opts.Difficulty,
		Score:      score,
		Crossings:  stats.Crossings,
		Collisions: stats.Collisions,
		Ticks:      stats.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", score, "crossings", stats.Crossings)
}

// runStats returns the counters of the current round.
func (m Model) runStats() core.RunStats {
	if r, ok := m.game.(StatsReporter); ok {
		return r.RunStats()
	}
	return m.run
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.PlayerBest(m.game.ID(), playerName(m.opts.Player))
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}

func playerName(name string) string {
	if name == "" {
		return storage.AnonymousPlayer
	}
	return name
}

// handleReload hands a changed configuration to the game for its next round.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Reloads)
	if msg.Err != nil {
		m.logger.Warn("config reload rejected", "path", msg.Path, "error", msg.Err)
		m.status = "Config error, keeping current settings"
		return m, next
	}

	r, ok := m.game.(Reconfigurer)
	if !ok {
		return m, next
	}
	cfg := msg.Config
	if m.opts.Difficulty != "" {
		config.ApplyFroggerPreset(&cfg, config.DifficultyPreset(m.opts.Difficulty))
	}
	r.Reconfigure(cfg)
	m.logger.Info("config reloaded", "path", msg.Path)
	m.status = "Config reloaded, applies on restart"
	return m, next
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "Screenshot saved"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.showScoreboard && m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	status := m.help.View(m.keyMapper.Keys())
	if m.status != "" {
		status = m.status + "  " + status
	}
	return renderFrame(m.screen, status)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
