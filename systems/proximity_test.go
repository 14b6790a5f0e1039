package systems

import (
	"testing"

	cfg "github.com/automoto/tanks-mp/config"
)

func TestProximity_FarApartKeepsSplitScreen(t *testing.T) {
	tb := newTestBattle(t)
	tb.startPlaying(t, 2)

	p := NewProximityPolicy()
	for i := 0; i < 2; i++ {
		if p.Apply(tb.ecs, tb.roster()) {
			t.Fatal("spawns are far apart, overview should stay off")
		}
		if ActiveCameraCount(tb.ecs, cfg.CameraOverview) != 0 || ActiveCameraCount(tb.ecs, cfg.CameraCombatant) != 2 {
			t.Fatalf("pass %d: wrong cameras active", i)
		}
	}
}

func TestProximity_CloseTogetherUsesOverview(t *testing.T) {
	tb := newTestBattle(t)
	tb.startPlaying(t, 3)

	p := NewProximityPolicy()
	if p.Apply(tb.ecs, tb.roster()) {
		t.Fatal("expected split screen before moving")
	}
	if ActiveCameraCount(tb.ecs, cfg.CameraMinimap) != 1 {
		t.Fatal("minimap should be on in split screen with 3 players")
	}

	for i, c := range tb.roster().Combatants {
		tb.moveTo(c, 40+float64(i)*5, 40)
	}
	if d := p.MaxDistance(tb.roster()); d != 10 {
		t.Fatalf("max distance should be 10, got %.2f", d)
	}

	for i := 0; i < 2; i++ {
		if !p.Apply(tb.ecs, tb.roster()) {
			t.Fatal("expected overview when tanks are close")
		}
		if ActiveCameraCount(tb.ecs, cfg.CameraOverview) != 1 {
			t.Fatal("overview should be on")
		}
		if ActiveCameraCount(tb.ecs, cfg.CameraCombatant) != 0 || ActiveCameraCount(tb.ecs, cfg.CameraMinimap) != 0 {
			t.Fatal("split cameras should be off under the overview")
		}
	}
}

func TestProximity_IgnoresDestroyedTanks(t *testing.T) {
	tb := newTestBattle(t)
	tb.startPlaying(t, 3)

	combatants := tb.roster().Combatants
	tb.moveTo(combatants[0], 20, 20)
	tb.moveTo(combatants[1], 30, 20)
	tb.kill(combatants[2])

	if d := NewProximityPolicy().MaxDistance(tb.roster()); d != 10 {
		t.Fatalf("destroyed tanks should not count, got %.2f", d)
	}
}
