package systems

import (
	"testing"

	cfg "github.com/automoto/tanks-mp/config"
)

func TestZoomMinimap(t *testing.T) {
	start := cfg.Minimap.DefaultSize
	if got := ZoomMinimap(start, true, false, 1); got != start+cfg.Minimap.ZoomSpeed {
		t.Fatalf("zoom in: got %.2f", got)
	}
	if got := ZoomMinimap(start, false, true, 1); got != start-cfg.Minimap.ZoomSpeed {
		t.Fatalf("zoom out: got %.2f", got)
	}
	if got := ZoomMinimap(start, true, true, 1); got != start {
		t.Fatalf("both keys should cancel, got %.2f", got)
	}
}

func TestZoomMinimap_Clamped(t *testing.T) {
	if got := ZoomMinimap(cfg.Minimap.MaxSize, true, false, 10); got != cfg.Minimap.MaxSize {
		t.Fatalf("should stop at max, got %.2f", got)
	}
	if got := ZoomMinimap(cfg.Minimap.MinSize, false, true, 10); got != cfg.Minimap.MinSize {
		t.Fatalf("should stop at min, got %.2f", got)
	}
}

func TestMinimapSize_ReadsCamera(t *testing.T) {
	tb := newTestBattle(t)
	if got := MinimapSize(tb.ecs); got != cfg.Minimap.DefaultSize {
		t.Fatalf("expected default size, got %.2f", got)
	}
	cameraOfKind(tb.ecs, cfg.CameraMinimap).Size = 33
	if got := MinimapSize(tb.ecs); got != 33 {
		t.Fatalf("expected 33, got %.2f", got)
	}
}
