package systems

import (
	"testing"

	cfg "github.com/automoto/tanks-mp/config"
)

func TestViewportRect_TwoPlayers(t *testing.T) {
	top := ViewportRect(0, 2)
	bottom := ViewportRect(1, 2)
	if top != (cfg.Rect{X: 0, Y: 0.5, W: 1, H: 0.5}) {
		t.Fatalf("player 1 should take the top half, got %+v", top)
	}
	if bottom != (cfg.Rect{X: 0, Y: 0, W: 1, H: 0.5}) {
		t.Fatalf("player 2 should take the bottom half, got %+v", bottom)
	}
}

func TestViewportRect_FourPlayersTileScreen(t *testing.T) {
	rects := make([]cfg.Rect, 4)
	area := 0.0
	for i := range rects {
		rects[i] = ViewportRect(i, 4)
		area += rects[i].W * rects[i].H
	}
	if area != 1 {
		t.Fatalf("viewports should cover the screen, area %.2f", area)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if overlaps(rects[i], rects[j]) {
				t.Fatalf("viewports %d and %d overlap: %+v %+v", i, j, rects[i], rects[j])
			}
		}
	}
}

func TestViewportRect_ThreePlayersLeaveMinimapQuadrant(t *testing.T) {
	for i := 0; i < 3; i++ {
		if r := ViewportRect(i, 3); overlaps(r, cfg.Minimap.Viewport) {
			t.Fatalf("player %d viewport %+v overlaps the minimap", i+1, r)
		}
	}
}

func TestApplyViewportLayout_TogglesMinimap(t *testing.T) {
	tb := newTestBattle(t)
	tb.rounds.StartGame(tb.ecs, 3)
	if ActiveCameraCount(tb.ecs, cfg.CameraMinimap) != 1 {
		t.Fatal("minimap should be on for 3 players")
	}

	tb = newTestBattle(t)
	tb.rounds.StartGame(tb.ecs, 4)
	if ActiveCameraCount(tb.ecs, cfg.CameraMinimap) != 0 {
		t.Fatal("minimap should be off for 4 players")
	}
	if got := combatantCamera(tb.ecs, 4).Viewport; got != (cfg.Rect{X: 0.5, Y: 0, W: 0.5, H: 0.5}) {
		t.Fatalf("player 4 viewport %+v", got)
	}
}

func TestViewportPixels_FlipsOrigin(t *testing.T) {
	r := ViewportPixels(cfg.Rect{X: 0, Y: 0.5, W: 1, H: 0.5}, 640, 360)
	if r.Min.X != 0 || r.Min.Y != 0 || r.Max.X != 640 || r.Max.Y != 180 {
		t.Fatalf("top half should map to the first 180 rows, got %v", r)
	}
}

func overlaps(a, b cfg.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
