package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FBastiaan04/solitui/internal/core"
	"github.com/FBastiaan04/solitui/internal/registry"
	"github.com/FBastiaan04/solitui/internal/storage"
)

// fullDeck is the foundation count that ends a deal as a win.
const fullDeck = 52

// GameModel is the Bubble Tea model for playing a single deal.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	gameState   core.GameState
	keyMapper   *KeyMapper
	startedAt   time.Time
	quitting    bool
	backToMenu  bool
	exitToMenu  bool // Quit requests return to menu instead of exiting
	resultSaved bool
}

// NewGameModel creates a new model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		gameState: game.State(),
		keyMapper: NewKeyMapper(),
		startedAt: time.Now(),
	}
}

// Init initializes the model. The game waits for input; there is no
// tick loop.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.leave()
	}
	if action == core.ActionNone {
		return m, nil
	}

	if action == core.ActionNewDeal {
		// Record the abandoned deal before starting a fresh one
		m.saveResult()
		m.resultSaved = false
		m.startedAt = time.Now()
	}

	result := m.game.Handle(core.KeyEvent(action))
	m.gameState = result.State
	m.maybeSaveWin()
	return m, nil
}

// handleMouse processes mouse input. Only left-button releases count
// as clicks; motion and press events are ignored.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	result := m.game.Handle(core.ClickEvent(msg.X, msg.Y))
	m.gameState = result.State
	m.maybeSaveWin()
	return m, nil
}

// handleResize processes window resize events. The deal in progress
// is preserved; only the render buffer changes size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// leave records the deal outcome and either quits or hands control
// back to the menu.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.saveResult()
	if m.exitToMenu {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// maybeSaveWin persists the result as soon as every card reaches the
// foundations, so a won deal is recorded even if the session drops.
func (m *GameModel) maybeSaveWin() {
	if m.gameState.CardsHome == fullDeck && !m.resultSaved {
		m.saveResult()
	}
}

// saveResult writes the current deal outcome to storage. Untouched
// deals are not recorded.
func (m *GameModel) saveResult() {
	if m.store == nil || m.resultSaved || m.gameState.Moves == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.Result{
		GameID:       m.game.ID(),
		CardsHome:    m.gameState.CardsHome,
		Moves:        m.gameState.Moves,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
		Won:          m.gameState.CardsHome == fullDeck,
	})
	m.resultSaved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks select and move cards
	)

	_, err := p.Run()
	return err
}
