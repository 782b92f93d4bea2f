package tui

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// stubGame ends the run after a fixed number of running ticks.
type stubGame struct {
	lifetime int
	resets   []int64
	inputs   []core.InputFrame
	state    core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg.Seed)
	g.state = core.GameState{HighScore: g.state.HighScore}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionPause) && !g.state.GameOver {
		if !g.state.Started {
			g.state.Started = true
		} else {
			g.state.Paused = !g.state.Paused
		}
	}
	if g.state.Started && !g.state.Paused && !g.state.GameOver {
		g.state.Score++
		g.state.Ticks++
		if g.state.Score >= g.lifetime {
			g.state.GameOver = true
			g.state.HighScore = max(g.state.HighScore, g.state.Score)
		}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "stub", core.ColorDefault)
	if g.state.Night {
		dst.SetColored(0, 1, '☾', core.ColorHUD)
	}
}

func (g *stubGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, game *stubGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 20, Seed: 42}
	m := NewModel(game, store, cfg, "tester", nil)
	m.Init()
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelInitResetsWithSeed(t *testing.T) {
	game := &stubGame{lifetime: 5}
	newTestModel(t, game, nil)

	if len(game.resets) != 1 || game.resets[0] != 42 {
		t.Errorf("resets = %v, expected [42]", game.resets)
	}
}

func TestModelForwardsInputOncePerTick(t *testing.T) {
	game := &stubGame{lifetime: 100}
	m := newTestModel(t, game, nil)

	m = press(t, m, runeKey("p"))
	m = tick(t, m)
	m = tick(t, m)

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionPause) {
		t.Error("first tick should carry the pause action")
	}
	if game.inputs[1].Has(core.ActionPause) {
		t.Error("input must be cleared after a tick")
	}
	if m.State().Score != 2 {
		t.Errorf("score = %d, expected 2", m.State().Score)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{lifetime: 3}
	m := newTestModel(t, game, store)

	m = press(t, m, runeKey("p"))
	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("stub game should be over")
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one recorded run, got %d", len(runs))
	}
	if runs[0].Score != 3 || runs[0].Player != "tester" || runs[0].Seed != 42 {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestModelRestartAfterGameOverReseeds(t *testing.T) {
	game := &stubGame{lifetime: 2}
	m := newTestModel(t, game, nil)

	m = press(t, m, runeKey("p"))
	m = tick(t, m)
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("stub game should be over")
	}

	m = press(t, m, runeKey("p"))
	m = tick(t, m)

	if len(game.resets) != 2 {
		t.Fatalf("expected a second reset, got %v", game.resets)
	}
	if game.resets[1] == 42 {
		t.Error("a new run should get a fresh seed")
	}
	st := m.State()
	if st.GameOver || !st.Started || st.Score != 1 {
		t.Errorf("pause after game over should start a new run, got %+v", st)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{lifetime: 5}, nil)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if got := next.(Model).View(); got != "" {
		t.Errorf("View after quit = %q, expected empty", got)
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(t, &stubGame{lifetime: 5}, nil)

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help line")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{lifetime: 5}
	m := newTestModel(t, game, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
	if len(game.resets) != 1 {
		t.Error("resize must not reset the run")
	}
}

func TestRenderScreenPalettes(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorHUD)

	for _, night := range []bool{false, true} {
		out := RenderScreen(s, PaletteFor(night))
		if !strings.Contains(out, "ab") {
			t.Errorf("night=%v: output %q lost the text", night, out)
		}
	}
	if len(DayPalette) != len(NightPalette) {
		t.Error("palettes should cover the same slots")
	}
}

func TestModelRestartMidRunReseeds(t *testing.T) {
	game := &stubGame{lifetime: 100}
	m := newTestModel(t, game, nil)

	m = press(t, m, runeKey("p"))
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	m = press(t, m, runeKey("r"))
	m = tick(t, m)

	if len(game.resets) != 2 || game.resets[1] == 42 {
		t.Fatalf("restart mid-run should reset with a fresh seed, resets = %v", game.resets)
	}
	if m.config.Seed != game.resets[1] {
		t.Errorf("model seed %d does not match the reset seed %d", m.config.Seed, game.resets[1])
	}
	if st := m.State(); st.Started || st.Score != 0 {
		t.Errorf("restart should leave the game idle, got %+v", st)
	}
	if last := game.inputs[len(game.inputs)-1]; last.Has(core.ActionRestart) {
		t.Error("restart is handled by the model and must not reach Step")
	}
}

func newRunnerGame(t *testing.T) *runner.Game {
	t.Helper()
	g, err := runner.NewGame(config.DefaultRunnerConfig(), runner.WithClock(runner.NewManualClock(time.Unix(0, 0))))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g
}

func TestModelRestartedRunReplaysFromSeed(t *testing.T) {
	game := newRunnerGame(t)
	m := newTestModel(t, &stubGame{}, nil)
	m.game = game
	m.Init()

	m = press(t, m, runeKey("p"))
	for i := 0; i < 12; i++ {
		m = tick(t, m)
	}
	m = press(t, m, runeKey("r"))
	m = tick(t, m)
	m = press(t, m, runeKey("p"))
	for i := 0; i < 40; i++ {
		m = tick(t, m)
	}

	replay := newRunnerGame(t)
	replay.Reset(core.RuntimeConfig{Seed: m.config.Seed})
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	replay.Step(pause)
	for i := 0; i < 39; i++ {
		replay.Step(core.NewInputFrame())
	}

	got, want := game.Snapshot(), replay.Snapshot()
	if got.Score != want.Score || !reflect.DeepEqual(got.Obstacles, want.Obstacles) {
		t.Errorf("run does not replay from its recorded seed:\nplayed=%+v\nreplay=%+v", got, want)
	}
}
