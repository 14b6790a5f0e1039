package systems

import (
	"testing"

	"github.com/automoto/tanks-mp/assets"
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeText struct {
	texts []string
}

func (f *fakeText) SetText(text string) { f.texts = append(f.texts, text) }

func (f *fakeText) last() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type fakeScenes struct {
	loads []int
}

func (f *fakeScenes) LoadScene(index int) { f.loads = append(f.loads, index) }

type fakeInput struct {
	held map[cfg.ActionID]bool
}

func (f *fakeInput) Held(action cfg.ActionID) bool { return f.held[action] }

type testBattle struct {
	ecs    *ecs.ECS
	rounds *RoundSystem
	text   *fakeText
	scenes *fakeScenes
	input  *fakeInput
}

// newTestBattle builds the default arena with its rig and cameras, without starting a game.
func newTestBattle(t *testing.T) *testBattle {
	t.Helper()

	arena, err := assets.NewArenaLoader().LoadArena(assets.DefaultArena)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	slots := factory.CreateArena(e, arena)
	factory.CreateRig(e, slots)
	factory.CreateCameraRig(e, len(slots), float64(arena.Width)/2, float64(arena.Height)/2, cfg.Minimap.DefaultSize)

	tb := &testBattle{
		ecs:    e,
		text:   &fakeText{},
		scenes: &fakeScenes{},
		input:  &fakeInput{held: map[cfg.ActionID]bool{}},
	}
	tb.rounds = NewRoundSystem(RoundDeps{
		Input:   tb.input,
		Text:    tb.text,
		Spawner: factory.TankSpawner{},
		Scenes:  tb.scenes,
	})
	return tb
}

func (tb *testBattle) round() *components.RoundData {
	entry, _ := components.Round.First(tb.ecs.World)
	return components.Round.Get(entry)
}

func (tb *testBattle) roster() *components.RosterData {
	entry, _ := components.Roster.First(tb.ecs.World)
	return components.Roster.Get(entry)
}

func (tb *testBattle) tick(n int) {
	for i := 0; i < n; i++ {
		tb.rounds.Update(tb.ecs)
	}
}

// startPlaying starts a game and runs the start delay out.
func (tb *testBattle) startPlaying(t *testing.T, players int) {
	t.Helper()
	tb.rounds.StartGame(tb.ecs, players)
	tb.tick(cfg.Ticks(cfg.Match.StartDelay))
	if tb.round().Phase != cfg.PhasePlaying {
		t.Fatalf("expected Playing after start delay, got phase %d", tb.round().Phase)
	}
}

func (tb *testBattle) kill(c *components.CombatantData) {
	factory.TankSpawner{}.SetActive(tb.ecs, c.Instance, false)
}

// moveTo places a combatant's tank center at x, y.
func (tb *testBattle) moveTo(c *components.CombatantData, x, y float64) {
	obj := components.Object.Get(c.Instance)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}
