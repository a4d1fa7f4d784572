package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	frames   []core.InputFrame
	resets   int
	state    core.GameState
	events   []core.Event // Returned on the next Step only
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses its frame after Step returns
	frame := core.NewInputFrame()
	for a, held := range in.Actions {
		frame.Actions[a] = held
	}
	frame.Events = append(frame.Events, in.Events...)
	g.frames = append(g.frames, frame)
	if in.Has(core.ActionQuit) {
		g.state.Done = true
	}
	res := core.StepResult{State: g.state, Events: g.events}
	g.events = nil
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	g.rendered++
	dst.Clear()
	dst.DrawText(0, 0, "stub arena")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func newTestModel(mode config.FireMode) (Model, *stubGame) {
	g := &stubGame{}
	m := NewModel(g, Options{
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 50, Seed: 7},
		FireMode:  mode,
		HoldTicks: 3,
	})
	m.Init()
	return m, g
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var space = tea.KeyMsg{Type: tea.KeySpace}

func TestModelToggleFire(t *testing.T) {
	m, g := newTestModel(config.FireToggle)

	m, _ = send(m, space)
	m, _ = send(m, TickMsg{})
	if ev := g.lastFrame().Events; len(ev) != 1 || ev[0].Kind != core.Press {
		t.Fatalf("first space should press fire, got %v", ev)
	}

	m, _ = send(m, TickMsg{})
	if ev := g.lastFrame().Events; len(ev) != 0 {
		t.Fatalf("idle tick should carry no transitions, got %v", ev)
	}

	m, _ = send(m, space)
	_, _ = send(m, TickMsg{})
	if ev := g.lastFrame().Events; len(ev) != 1 || ev[0].Kind != core.Release {
		t.Fatalf("second space should release fire, got %v", ev)
	}
}

func TestModelMovementHeldBetweenRepeats(t *testing.T) {
	m, g := newTestModel(config.FireToggle)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 5; i++ {
		m, _ = send(m, TickMsg{})
	}

	var held int
	for _, f := range g.frames {
		if f.Has(core.ActionRight) {
			held++
		}
	}
	if held != 3 {
		t.Errorf("right held for %d frames, expected 3", held)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(config.FireToggle)

	m, _ = send(m, runeKey('q'))
	m, cmd := send(m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done game should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m, g := newTestModel(config.FireToggle)

	m, _ = send(m, runeKey('r'))
	m, _ = send(m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play should be ignored, resets=%d", g.resets)
	}

	g.state.GameOver = true
	m, _ = send(m, TickMsg{})
	m, _ = send(m, runeKey('r'))
	_, _ = send(m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("restart after game over should reset, resets=%d", g.resets)
	}
}

func TestModelResetsChargeOnOvercharge(t *testing.T) {
	m, g := newTestModel(config.FireToggle)

	m, _ = send(m, space)
	g.events = []core.Event{{Type: core.EventOvercharge, Value: 152}}
	m, _ = send(m, TickMsg{})

	// The tracker forgot the toggle, so the next space presses again
	m, _ = send(m, space)
	_, _ = send(m, TickMsg{})
	if ev := g.lastFrame().Events; len(ev) != 1 || ev[0].Kind != core.Press {
		t.Errorf("fire after overcharge should press, got %v", ev)
	}
}

func TestModelResizeAndView(t *testing.T) {
	m, g := newTestModel(config.FireToggle)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize should not reset the game")
	}

	view := m.View()
	if !strings.Contains(view, "stub arena") || !strings.Contains(view, "quit") {
		t.Errorf("view should contain the arena and the help bar: %q", view)
	}
}
