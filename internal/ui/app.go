// ABOUTME: Root Bubble Tea model: drains captured key events once per frame
// ABOUTME: Owns the overlay entry model, drag-to-move, focus outline and exit keys

package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/keycast/internal/config"
	"github.com/mauromedda/keycast/internal/keys"
	"github.com/mauromedda/keycast/internal/log"
	"github.com/mauromedda/keycast/internal/overlay"
)

// EventSource yields captured events. overlay.Queue implements it.
type EventSource interface {
	Drain() ([]keys.Event, error)
}

// Deps holds the external dependencies of the overlay program.
type Deps struct {
	Events   EventSource
	Settings config.Settings
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root Bubble Tea model. It is the only mutator of the
// overlay entry collection.
type Model struct {
	events   EventSource
	settings config.Settings
	policy   overlay.SurfacePolicy
	now      func() time.Time

	entries *overlay.Model

	width, height int
	off           offset

	dragging bool
	grab     offset

	focused bool
	err     error
}

// New builds the root model from deps.
func New(deps Deps) Model {
	s := deps.Settings
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return Model{
		events:   deps.Events,
		settings: s,
		now:      now,
		policy: overlay.SurfacePolicy{
			AutoHide:   s.Variant == config.VariantAutoHide,
			HideDelay:  s.HideDelay,
			WindowFade: s.WindowFade,
			Background: s.Background,
		},
		entries: overlay.NewModel(s.MaxKeys, overlay.Timing{
			PressIn: s.PressIn,
			Display: s.Display,
			FadeOut: s.FadeOut,
		}),
		focused: true,
	}
}

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tick(m.settings.FrameInterval)
}

// Update routes messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.step()

	case CaptureStoppedMsg:
		if msg.Err != nil && !errors.Is(msg.Err, overlay.ErrQueueClosed) {
			log.Error("capture stopped: %v", msg.Err)
			m.err = msg.Err
		}
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		m.dragging = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

// step drains, applies and expires within a single tick.
func (m Model) step() (tea.Model, tea.Cmd) {
	events, err := m.events.Drain()
	m.entries.ApplyAll(events)
	m.entries.Expire(m.now())

	if err != nil {
		return m, func() tea.Msg { return CaptureStoppedMsg{Err: err} }
	}
	return m, tick(m.settings.FrameInterval)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.focused {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	// A fully faded overlay takes no input.
	if m.Frame().Surface.Hidden {
		m.dragging = false
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		r := m.area()
		if !r.contains(msg.X, msg.Y) {
			return m
		}
		m.dragging = true
		m.grab = offset{dx: msg.X - r.X, dy: msg.Y - r.Y}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m
		}
		base := anchor(m.width, m.height, m.settings.WidthFraction, m.settings.TopFraction)
		m.off = offset{
			dx: msg.X - m.grab.dx - base.X,
			dy: msg.Y - m.grab.dy - base.Y,
		}

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

// area is the current overlay rectangle.
func (m Model) area() rect {
	return placeOverlay(m.width, m.height, m.settings.WidthFraction, m.settings.TopFraction, m.off)
}

// Frame returns the renderable state at the model's clock.
func (m Model) Frame() overlay.Frame {
	return m.entries.Frame(m.now(), m.policy)
}

// View draws the overlay rectangle at its place in the terminal.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	r := m.area()
	panel := renderFrame(m.Frame(), r, m.focused)
	if panel == "" {
		return ""
	}
	return lipgloss.NewStyle().MarginLeft(r.X).MarginTop(r.Y).Render(panel)
}
