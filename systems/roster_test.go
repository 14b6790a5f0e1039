package systems

import (
	"testing"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/systems/factory"
)

func TestAddCombatant_TwoToThree(t *testing.T) {
	tb := newTestBattle(t)
	tb.startPlaying(t, 2)

	m := NewRosterMutator(factory.TankSpawner{})
	if !m.AddCombatant(tb.ecs, tb.roster(), tb.round()) {
		t.Fatal("join should be accepted while playing")
	}

	roster := tb.roster()
	if roster.Len() != 3 || roster.ActiveCount() != 3 {
		t.Fatalf("expected 3 active combatants, got %d/%d", roster.ActiveCount(), roster.Len())
	}
	p3 := roster.Combatants[2]
	if p3.PlayerIndex != 3 || p3.Spawn != roster.SpawnSlots[2] {
		t.Fatalf("player 3 should use spawn slot 2, got %+v", p3)
	}
	if !components.Tank.Get(p3.Instance).ControlEnabled {
		t.Fatal("a joining tank gets control immediately")
	}
	if got := ActiveCameraCount(tb.ecs, cfg.CameraCombatant); got != 3 {
		t.Fatalf("expected 3 combatant cameras, got %d", got)
	}
	if ActiveCameraCount(tb.ecs, cfg.CameraMinimap) != 1 {
		t.Fatal("minimap should fill the empty quadrant")
	}

	want := map[int]cfg.Rect{
		1: {X: 0, Y: 0.5, W: 0.5, H: 0.5},
		2: {X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
		3: {X: 0, Y: 0, W: 0.5, H: 0.5},
	}
	for slot, r := range want {
		if got := combatantCamera(tb.ecs, slot).Viewport; got != r {
			t.Fatalf("player %d viewport %+v, want %+v", slot, got, r)
		}
	}

	targets, _ := components.CameraTargets.First(tb.ecs.World)
	if n := len(components.CameraTargets.Get(targets).Targets); n != 3 {
		t.Fatalf("overview should track 3 tanks, got %d", n)
	}
}

func TestAddCombatant_RejectedWhenFull(t *testing.T) {
	tb := newTestBattle(t)
	tb.startPlaying(t, 4)

	round := tb.round()
	round.CanAddAnother = true
	m := NewRosterMutator(factory.TankSpawner{})
	if m.AddCombatant(tb.ecs, tb.roster(), round) {
		t.Fatal("join must be rejected at capacity")
	}
	if tb.roster().Len() != 4 {
		t.Fatalf("roster changed: %d", tb.roster().Len())
	}
}

func TestAddCombatant_RejectedOutsidePlaying(t *testing.T) {
	tb := newTestBattle(t)
	tb.rounds.StartGame(tb.ecs, 2)

	m := NewRosterMutator(factory.TankSpawner{})
	if m.AddCombatant(tb.ecs, tb.roster(), tb.round()) {
		t.Fatal("join must be rejected while starting")
	}

	tb.tick(cfg.Ticks(cfg.Match.StartDelay))
	tb.round().CanAddAnother = false
	if m.AddCombatant(tb.ecs, tb.roster(), tb.round()) {
		t.Fatal("join must be rejected once used")
	}
	if tb.roster().Len() != 2 {
		t.Fatalf("roster changed: %d", tb.roster().Len())
	}
}
