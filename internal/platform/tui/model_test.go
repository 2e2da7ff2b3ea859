package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// scriptedGame ends the session on the tick its score reaches overAt and
// restarts when asked.
type scriptedGame struct {
	state   core.GameState
	overAt  int
	resets  int
	resized [2]int
	inputs  []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, copyFrame(in))
	if in.Has(core.ActionRestart) || in.Pointer.Clicked {
		g.state = core.GameState{Level: 1}
		return core.StepResult{State: g.state, Restarted: true}
	}
	if !g.state.GameOver {
		g.state.Score += 10
		if g.state.Score >= g.overAt {
			g.state.GameOver = true
		}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

// copyFrame detaches a frame from the map the model reuses between ticks.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		out.Actions[a] = on
	}
	out.Pointer = in.Pointer
	return out
}

func newTestModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, store, cfg, Options{HoldTicks: 3})
	m.Start()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelSavesScoreOncePerSession(t *testing.T) {
	g := &scriptedGame{overAt: 30}
	m, store := newTestModel(t, g)

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 30 || scores[0].Level != 1 {
		t.Errorf("saved %+v, want score 30 level 1", scores[0])
	}
	if scores[0].SessionID != m.sessionID.String() {
		t.Errorf("session id = %s, want %s", scores[0].SessionID, m.sessionID)
	}
}

func TestModelRestartStartsNewSession(t *testing.T) {
	g := &scriptedGame{overAt: 20}
	m, store := newTestModel(t, g)

	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg{})
	}
	first := m.sessionID

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = update(t, m, TickMsg{})
	if m.sessionID == first {
		t.Fatal("restart should assign a new session id")
	}
	if m.scoreSaved {
		t.Error("restart should clear the saved flag")
	}

	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg{})
	}
	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want one per session", len(scores))
	}
}

func TestModelHoldsDirectionKeys(t *testing.T) {
	g := &scriptedGame{overAt: 1000}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	var held []bool
	for _, in := range g.inputs {
		held = append(held, in.Has(core.ActionLeft))
	}
	want := []bool{true, true, true, false, false}
	for i := range want {
		if held[i] != want[i] {
			t.Fatalf("left held per tick = %v, want %v", held, want)
		}
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &scriptedGame{overAt: 1000}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.inputs) != 3 {
		t.Fatalf("got %d ticks, want 3", len(g.inputs))
	}
	if g.inputs[0].Pointer.Clicked || !g.inputs[0].Pointer.Valid || g.inputs[0].Pointer.X != 4 {
		t.Errorf("motion tick pointer = %+v", g.inputs[0].Pointer)
	}
	if !g.inputs[1].Pointer.Clicked {
		t.Error("press should be seen as a click on the next tick")
	}
	if g.inputs[2].Pointer.Clicked || g.inputs[2].Pointer.X != 5 {
		t.Errorf("click should last one tick and keep position, got %+v", g.inputs[2].Pointer)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &scriptedGame{overAt: 1000}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized to %v, want [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not reset a Resizer", g.resets)
	}
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config = %dx%d, want 100x30", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantBack bool
	}{
		{"escape returns to menu", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, &scriptedGame{overAt: 1000})
			next, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			nm := next.(Model)
			if nm.WantsMenu() != tt.wantBack {
				t.Errorf("WantsMenu() = %v, want %v", nm.WantsMenu(), tt.wantBack)
			}
			if nm.View() != "" {
				t.Error("View should be empty after leaving")
			}
		})
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{overAt: 1000})
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View should render the game")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "starfall", core.DefaultConfig())

	step := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(menuChoices)-1 {
		t.Errorf("cursor = %d, want clamped at %d", m.cursor, len(menuChoices)-1)
	}
	if !strings.Contains(m.View(), "S T A R F A L L") {
		t.Error("menu should show the title")
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Choice(); got != ChoiceScores {
		t.Errorf("Choice() = %v, want %v", got, ChoiceScores)
	}
}

func TestMenuQuitChoosesQuit(t *testing.T) {
	m := NewMenuModel(nil, "starfall", core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.(MenuModel).Choice(); got != ChoiceQuit {
		t.Errorf("Choice() = %v, want Quit", got)
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 120, Level: 3},
		{Score: 40, Level: 1},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "120" || rows[0][2] != "3" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][2] != "1" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "starfall", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
