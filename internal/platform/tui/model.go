package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/tui-simlab/internal/core"
	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/storage"
)

// Model is the Bubble Tea model for running simulations.
type Model struct {
	sim        registry.Simulation
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	simState   core.SimState
	err        error
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s.Reset(cfg)

	return Model{
		sim:        s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveSession()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse accumulates pointer state into the input frame. Drag deltas and
// wheel ticks build up until the next simulation tick consumes them.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := &m.inputFrame.Pointer

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.Wheel++
	case tea.MouseButtonWheelDown:
		p.Wheel--
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			p.Dragging = true
		case tea.MouseActionRelease:
			p.Dragging = false
		case tea.MouseActionMotion:
			if p.Dragging {
				p.DX += msg.X - p.X
				p.DY += msg.Y - p.Y
			}
		}
	case tea.MouseButtonNone:
		if msg.Action == tea.MouseActionRelease {
			p.Dragging = false
		}
	}

	p.X = msg.X
	p.Y = msg.Y

	return m, nil
}

// handleResize adapts the screen and the simulation viewport to the new
// terminal size. The run itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.sim.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)

	result := m.sim.Step(m.inputFrame, dt)
	m.simState = result.State

	// State file failures are unrecoverable: surface and exit.
	if result.Err != nil {
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the finished run in the session log.
func (m *Model) saveSession() {
	if m.store == nil || m.simState.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(m.sim.ID(), m.simState.Tick, m.simState.Time, m.simState.MaxIndex+1)
}

// Err returns the fatal error that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(s registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(s, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag pan and wheel zoom
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
