package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateAnnouncement fades a new message in.
func UpdateAnnouncement(e *ecs.ECS) {
	entry, ok := components.Announcement.First(e.World)
	if !ok {
		return
	}
	a := components.Announcement.Get(entry)
	if a.Text == "" {
		return
	}
	if a.Fade == nil {
		a.Fade = gween.New(0, 1, cfg.Announcement.FadeInSeconds, ease.OutQuad)
	}
	alpha, _ := a.Fade.Update(float32(cfg.DeltaTime()))
	a.Alpha = float64(alpha)
}

// DrawAnnouncement renders the message centered on screen, one line per newline.
func DrawAnnouncement(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Announcement.First(e.World)
	if !ok {
		return
	}
	a := components.Announcement.Get(entry)
	if a.Text == "" || a.Alpha <= 0 {
		return
	}

	face := fonts.Bold.Get()
	lines := strings.Split(strings.TrimRight(a.Text, "\n"), "\n")
	lineHeight := cfg.Announcement.LineHeight
	width := screen.Bounds().Dx()
	y := (screen.Bounds().Dy()-len(lines)*lineHeight)/2 + lineHeight

	for _, line := range lines {
		spans := ParseRichText(line, cfg.Announcement.TextColor)
		x := (width - font.MeasureString(face, PlainText(spans)).Round()) / 2
		for _, span := range spans {
			text.Draw(screen, span.Text, face, x+1, y+1, fade(cfg.Announcement.ShadowColor, a.Alpha))
			text.Draw(screen, span.Text, face, x, y, fade(span.Color, a.Alpha))
			x += font.MeasureString(face, span.Text).Round()
		}
		y += lineHeight
	}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
