package starfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
	"github.com/vovakirdan/starfall/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")

	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "starfall" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "Starfall" {
		t.Errorf("Title = %q", g.Title())
	}
	if !registry.Exists("starfall") {
		t.Error("starfall should be registered")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, 1)

	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.GameOver {
		t.Errorf("initial state = %+v", state)
	}
	if g.Text(engine.TextScore) != "Score: 0" || g.Text(engine.TextLevel) != "Level: 1" {
		t.Errorf("HUD = %q / %q", g.Text(engine.TextScore), g.Text(engine.TextLevel))
	}
	if !g.mixer.IsPlaying(engine.CueBackground) {
		t.Error("background music should be playing")
	}
}

func TestGamePlayerLandsAndRuns(t *testing.T) {
	g := newTestGame(t, 1)
	in := core.NewInputFrame()

	for range 120 {
		g.Step(in)
	}
	player := g.Session().Player()
	if !player.Grounded() {
		t.Fatalf("player should land on the ground platform, y = %v", player.Position().Y)
	}

	startX := player.Position().X
	in.Set(core.ActionRight)
	for range 30 {
		g.Step(in)
	}
	if player.Position().X <= startX {
		t.Errorf("player did not run right: %v -> %v", startX, player.Position().X)
	}
	if player.Animation() != engine.AnimRight {
		t.Errorf("animation = %v", player.Animation())
	}
}

func TestGamePlayerStaysInsideField(t *testing.T) {
	g := newTestGame(t, 1)
	in := core.NewInputFrame()
	for range 120 {
		g.Step(in)
	}
	player := g.Session().Player()
	field := g.cfg.Field
	half := g.cfg.Sprites.Dude.Width / 2

	steps := []struct {
		action core.Action
		ticks  int
	}{
		{core.ActionRight, 300},
		{core.ActionLeft, 400},
	}
	for _, st := range steps {
		hold := core.NewInputFrame()
		hold.Set(st.action)
		for range st.ticks {
			g.Step(hold)
		}
		p := player.Position()
		if p.X < half || p.X > field.Width-half {
			t.Errorf("after holding %v: x = %v, want within [%v, %v]", st.action, p.X, half, field.Width-half)
		}
		if p.Y > field.Height {
			t.Errorf("after holding %v: player fell out, y = %v", st.action, p.Y)
		}
	}
}

func TestGameStarsSettle(t *testing.T) {
	g := newTestGame(t, 3)
	in := core.NewInputFrame()

	for range 300 {
		g.Step(in)
	}

	field := g.cfg.Field
	for i, c := range g.Session().State().Collectibles {
		p := c.Position()
		if p.Y <= 0 || p.Y >= field.Height {
			t.Errorf("star %d at %v, should rest on a platform", i, p)
		}
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() core.Vec {
		g := newTestGame(t, 99)
		in := core.NewInputFrame()
		for i := range 200 {
			in.Clear()
			if i%50 < 25 {
				in.Set(core.ActionRight)
			}
			if i%40 == 0 {
				in.Set(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Session().Player().Position()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and input diverged: %v vs %v", a, b)
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newTestGame(t, 1)
	g.Session().collect(g.Session().Player(), g.Session().State().Collectibles[0])
	g.Session().gameOver()
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if !res.Restarted {
		t.Error("Restarted should be set")
	}
	if res.State.GameOver || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if g.world.Paused() {
		t.Error("physics should resume after restart")
	}
}

func TestGameRestartButton(t *testing.T) {
	g := newTestGame(t, 1)
	r := g.restartRect()

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: r.X + 2, Y: r.Y, Valid: true}
	g.Step(in)
	if !g.hover {
		t.Error("pointer over the label should hover")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if c := screen.GetCell(r.X, r.Y); c.Color != core.ColorOrange {
		t.Errorf("hovered label color = %v, want orange", c.Color)
	}

	g.Session().gameOver()
	in.Pointer.Clicked = true
	res := g.Step(in)
	if !res.Restarted || res.State.GameOver {
		t.Errorf("click should restart, got %+v", res)
	}

	in.Pointer = core.Pointer{X: 0, Y: 10, Valid: true, Clicked: true}
	res = g.Step(in)
	if res.Restarted || g.hover {
		t.Error("click outside the label must not restart")
	}
}

func TestGameApplyConfigOnRestart(t *testing.T) {
	g := newTestGame(t, 1)

	cfg := config.DefaultStarfallConfig()
	cfg.Scoring.CollectPoints = 50
	g.ApplyConfig(cfg)

	s := g.Session()
	s.collect(s.Player(), s.State().Collectibles[0])
	if s.Score() != 10 {
		t.Errorf("running session should keep old tuning, score = %d", s.Score())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	s.collect(s.Player(), s.State().Collectibles[0])
	if s.Score() != 50 {
		t.Errorf("reloaded tuning not applied, score = %d", s.Score())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Level: 1", RestartLabel, string(StarChar), string(PlatformChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("running game must not show game over")
	}

	g.Session().gameOver()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Session()
	s.collect(s.Player(), s.State().Collectibles[0])

	g.Resize(120, 40)

	if g.Session() != s || g.State().Score != 10 {
		t.Error("resize should not reset the session")
	}
	if r := g.restartRect(); r.X != 120-len(RestartLabel)-1 {
		t.Errorf("restart label x = %d", r.X)
	}
}

func TestGameBell(t *testing.T) {
	tests := []struct {
		name     string
		writer   bool
		cfgBell  bool
		wantBell bool
	}{
		{"off by default", false, false, false},
		{"flag turns it on", true, false, true},
		{"config turns it on", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			if tt.writer {
				SetBell(&buf)
			} else {
				SetBell(nil)
			}
			t.Cleanup(func() { SetBell(nil) })

			g := newTestGame(t, 1)
			g.cfg.Audio.Bell = tt.cfgBell
			opts := g.mixerOptions()

			if got := opts.Bell != nil; got != tt.wantBell {
				t.Fatalf("bell enabled = %v, want %v", got, tt.wantBell)
			}
			if tt.writer {
				g.mixer = audio.NewMixer(opts)
				g.mixer.Play(engine.CueCollect)
				if buf.String() != "\a" {
					t.Errorf("bell output = %q, want BEL", buf.String())
				}
			}
		})
	}
}

func TestGameResetSilencesPreviousMixer(t *testing.T) {
	g := newTestGame(t, 1)
	old := g.mixer

	g.Reset(g.runtime)

	if old.IsPlaying(engine.CueBackground) {
		t.Error("reset should stop the previous background track")
	}
	if !g.mixer.IsPlaying(engine.CueBackground) {
		t.Error("new session should start its own background track")
	}
}
