package components

import (
	"errors"
	"image/color"
	"testing"
)

func testSlots(n int) []Transform {
	slots := make([]Transform, n)
	for i := range slots {
		slots[i] = Transform{X: float64(i * 10), Y: float64(i * 10)}
	}
	return slots
}

func TestRosterInsert_UntilFull(t *testing.T) {
	colors := []color.RGBA{{R: 1, A: 255}, {G: 1, A: 255}}
	r := NewRoster(testSlots(4), colors, 3)
	if r.Capacity != 3 {
		t.Fatalf("capacity should be capped by max players, got %d", r.Capacity)
	}

	for i := 1; i <= 3; i++ {
		c, err := r.Insert()
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if c.PlayerIndex != i || c.Spawn != r.SpawnSlots[i-1] {
			t.Fatalf("insert %d got %+v", i, c)
		}
	}
	if r.Combatants[2].Color != colors[0] {
		t.Fatal("colors should wrap around")
	}

	if _, err := r.Insert(); !errors.Is(err, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", err)
	}
	if r.Len() != 3 || !r.Full() {
		t.Fatalf("roster should stay at 3, got %d", r.Len())
	}
}

func TestRoster_NoTanksSpawned(t *testing.T) {
	r := NewRoster(testSlots(2), nil, 4)
	r.Insert()
	r.Insert()
	r.Combatants[0].Wins = 3

	if r.ActiveCount() != 0 || r.FirstActive() != nil {
		t.Fatal("combatants without tanks are not active")
	}
	if x, y := r.Combatants[1].Position(); x != 10 || y != 10 {
		t.Fatalf("position should fall back to the spawn, got %.0f,%.0f", x, y)
	}

	r.ResetWins()
	if r.Combatants[0].Wins != 0 {
		t.Fatal("wins should reset")
	}
}

func TestCombatantLabel(t *testing.T) {
	c := &CombatantData{PlayerIndex: 3, Color: color.RGBA{R: 60, G: 170, B: 60, A: 255}}
	if got := c.Label(); got != "<color=#3CAA3C>PLAYER 3</color>" {
		t.Fatalf("got %q", got)
	}
}
