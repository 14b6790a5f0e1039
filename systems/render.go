package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewportPixels converts a normalized bottom-left origin rectangle to screen pixels.
func ViewportPixels(r cfg.Rect, width, height int) image.Rectangle {
	x0 := int(math.Round(r.X * float64(width)))
	x1 := int(math.Round((r.X + r.W) * float64(width)))
	y0 := int(math.Round((1 - r.Y - r.H) * float64(height)))
	y1 := int(math.Round((1 - r.Y) * float64(height)))
	return image.Rect(x0, y0, x1, y1)
}

// worldView projects world coordinates into one camera's pixel rectangle.
type worldView struct {
	camX, camY float64
	scale      float64
	cx, cy     float64
}

func newWorldView(cam *components.CameraData, rect image.Rectangle, shakeX, shakeY float64) worldView {
	size := cam.Size
	if size <= 0 {
		size = 1
	}
	return worldView{
		camX:  cam.Position.X + shakeX,
		camY:  cam.Position.Y + shakeY,
		scale: float64(rect.Dy()) / (2 * size),
		cx:    float64(rect.Min.X) + float64(rect.Dx())/2,
		cy:    float64(rect.Min.Y) + float64(rect.Dy())/2,
	}
}

func (v worldView) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.scale + v.cx), float32((y-v.camY)*v.scale + v.cy)
}

func (v worldView) length(l float64) float32 {
	return float32(l * v.scale)
}

type activeCamera struct {
	entry *donburi.Entry
	cam   *components.CameraData
}

// activeCameras returns the enabled cameras in draw order, overview first and minimap last.
func activeCameras(e *ecs.ECS) []activeCamera {
	var cams []activeCamera
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		if cam := components.Camera.Get(entry); cam.Active {
			cams = append(cams, activeCamera{entry, cam})
		}
	})
	sort.SliceStable(cams, func(i, j int) bool {
		if cams[i].cam.Kind != cams[j].cam.Kind {
			return cams[i].cam.Kind < cams[j].cam.Kind
		}
		return cams[i].cam.Slot < cams[j].cam.Slot
	})
	return cams
}

// DrawWorld renders every active camera into its viewport.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)

	cams := activeCameras(e)
	colors := playerColors(e)
	bounds := screen.Bounds()
	for _, c := range cams {
		rect := ViewportPixels(c.cam.Viewport, bounds.Dx(), bounds.Dy()).Add(bounds.Min)
		if rect.Empty() {
			continue
		}
		sub := screen.SubImage(rect).(*ebiten.Image)
		sx, sy := ShakeOffset(c.entry)
		v := newWorldView(c.cam, rect, sx, sy)

		drawArena(e, sub, v)
		drawTanks(e, sub, v, colors)
		drawShells(e, sub, v)
		vector.StrokeRect(sub, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 1, cfg.Render.BorderColor, false)
	}
}

func playerColors(e *ecs.ECS) map[int]color.RGBA {
	colors := map[int]color.RGBA{}
	if entry, ok := components.Roster.First(e.World); ok {
		for _, c := range components.Roster.Get(entry).Combatants {
			colors[c.PlayerIndex] = c.Color
		}
	}
	return colors
}

func drawArena(e *ecs.ECS, screen *ebiten.Image, v worldView) {
	if entry, ok := components.Arena.First(e.World); ok {
		arena := components.Arena.Get(entry)
		x, y := v.point(0, 0)
		vector.FillRect(screen, x, y, v.length(arena.Width), v.length(arena.Height), cfg.Render.GroundColor, false)
	}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		x, y := v.point(o.X, o.Y)
		vector.FillRect(screen, x, y, v.length(o.W), v.length(o.H), cfg.Render.ObstacleColor, false)
	})
}

func drawTanks(e *ecs.ECS, screen *ebiten.Image, v worldView, colors map[int]color.RGBA) {
	tags.Tank.Each(e.World, func(entry *donburi.Entry) {
		tank := components.Tank.Get(entry)
		if !tank.Active {
			return
		}
		cx, cy := components.Object.Get(entry).Center()
		fx, fy := tank.Forward()
		body := colors[tank.PlayerIndex]

		x, y := v.point(cx, cy)
		vector.DrawFilledCircle(screen, x, y, v.length(cfg.Tank.CollisionSize), body, true)

		reach := cfg.Tank.CollisionSize + cfg.Tank.BarrelLength
		bx, by := v.point(cx+fx*reach, cy+fy*reach)
		vector.StrokeLine(screen, x, y, bx, by, v.length(0.8), cfg.Black, true)

		// Aim charge, drawn in front of the barrel.
		if charge := components.Shooting.Get(entry).ChargeFraction(); charge > 0 {
			ax, ay := v.point(cx+fx*(reach+charge*cfg.Tank.BarrelLength*2), cy+fy*(reach+charge*cfg.Tank.BarrelLength*2))
			vector.StrokeLine(screen, bx, by, ax, ay, v.length(0.5), cfg.Yellow, true)
		}

		hp := components.Health.Get(entry)
		hx, hy := v.point(cx-cfg.Render.HealthBarWidth/2, cy-cfg.Tank.CollisionSize-1.5)
		w, h := v.length(cfg.Render.HealthBarWidth), v.length(cfg.Render.HealthBarHeight)
		vector.FillRect(screen, hx, hy, w, h, cfg.Red, false)
		vector.FillRect(screen, hx, hy, w*float32(hp.Fraction()), h, cfg.BrightGreen, false)
	})
}

func drawShells(e *ecs.ECS, screen *ebiten.Image, v worldView) {
	tags.Shell.Each(e.World, func(entry *donburi.Entry) {
		x, y := v.point(components.Object.Get(entry).Center())
		vector.DrawFilledCircle(screen, x, y, v.length(cfg.Shell.Radius), cfg.Render.ShellColor, true)
	})

	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		progress := 1 - float64(ex.Frames)/float64(ex.Total)
		x, y := v.point(ex.X, ex.Y)
		vector.DrawFilledCircle(screen, x, y, v.length(ex.Radius*(0.4+0.6*progress)), fade(cfg.Render.ExplosionColor, 1-progress), true)
	})
}
