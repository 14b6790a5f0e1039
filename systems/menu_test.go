package systems

import (
	"testing"

	"github.com/automoto/tanks-mp/components"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestMenu() (*ecs.ECS, *components.PlayerCountMenuData) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreatePlayerCountMenu(e, 2)
	return e, components.PlayerCountMenu.Get(entry)
}

func TestPlayerCountMenu_IgnoresKeysHeldOnOpen(t *testing.T) {
	for _, key := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyEnter} {
		e, menu := newTestMenu()

		PollInput(e, keys(key))
		UpdatePlayerCountMenu(e)
		PollInput(e, keys(key))
		UpdatePlayerCountMenu(e)
		if menu.Quit || menu.Started {
			t.Fatalf("%v held from the previous scene must not act, quit=%v started=%v", key, menu.Quit, menu.Started)
		}

		PollInput(e, keys())
		UpdatePlayerCountMenu(e)
		PollInput(e, keys(key))
		UpdatePlayerCountMenu(e)
		if !menu.Quit && !menu.Started {
			t.Fatalf("%v pressed again should act", key)
		}
	}
}

func TestPlayerCountMenu_AdjustsCount(t *testing.T) {
	e, menu := newTestMenu()
	PollInput(e, keys())

	for i := 0; i < 3; i++ {
		PollInput(e, keys(ebiten.KeyArrowRight))
		UpdatePlayerCountMenu(e)
		PollInput(e, keys())
		UpdatePlayerCountMenu(e)
	}
	if menu.Count != menu.Max {
		t.Fatalf("count should stop at %d, got %d", menu.Max, menu.Count)
	}

	PollInput(e, keys(ebiten.KeyMinus))
	UpdatePlayerCountMenu(e)
	if menu.Count != menu.Max-1 {
		t.Fatalf("count should drop to %d, got %d", menu.Max-1, menu.Count)
	}
}
