package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object inside each active viewport and prints round state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	bounds := screen.Bounds()
	for _, c := range activeCameras(e) {
		rect := ViewportPixels(c.cam.Viewport, bounds.Dx(), bounds.Dy()).Add(bounds.Min)
		if rect.Empty() {
			continue
		}
		sub := screen.SubImage(rect).(*ebiten.Image)
		v := newWorldView(c.cam, rect, 0, 0)
		for _, obj := range space.Objects() {
			x, y := v.point(obj.X, obj.Y)
			vector.StrokeRect(sub, x, y, v.length(obj.W), v.length(obj.H), 1, debugColor(obj), false)
		}
	}

	ebitenutil.DebugPrintAt(screen, debugStatus(e), bounds.Min.X+2, bounds.Min.Y+2)
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255}
	case obj.HasTags(tags.ResolvTank):
		return color.RGBA{0, 0, 255, 255}
	case obj.HasTags(tags.ResolvShell):
		return color.RGBA{0, 255, 0, 255}
	}
	return color.RGBA{0, 255, 255, 255}
}

func debugStatus(e *ecs.ECS) string {
	status := fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())
	rig, ok := components.Round.First(e.World)
	if !ok {
		return status
	}
	round := components.Round.Get(rig)
	roster := components.Roster.Get(rig)
	return fmt.Sprintf("%s\nphase %d round %d swap %d\nactive %d/%d spread %.1f\ncams %d overview %d",
		status, round.Phase, round.RoundNumber, round.SwapCounter,
		roster.ActiveCount(), roster.Len(), NewProximityPolicy().MaxDistance(roster),
		ActiveCameraCount(e, cfg.CameraCombatant), ActiveCameraCount(e, cfg.CameraOverview))
}
