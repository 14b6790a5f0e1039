package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// FullscreenToggle flips fullscreen on the toggle action and remembers the choice.
type FullscreenToggle struct {
	Fullscreen bool
	Apply      func(bool)
}

func NewFullscreenToggle(fullscreen bool) *FullscreenToggle {
	return &FullscreenToggle{Fullscreen: fullscreen, Apply: ebiten.SetFullscreen}
}

func (f *FullscreenToggle) Update(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok || !components.Input.Get(entry).JustPressed(cfg.ActionToggleFullscreen) {
		return
	}

	f.Fullscreen = !f.Fullscreen
	f.Apply(f.Fullscreen)
	fullscreen := f.Fullscreen
	UpdatePreferences(func(p *SavedPreferences) {
		p.Fullscreen = fullscreen
	})
	log.Debug("fullscreen toggled", "fullscreen", fullscreen)
}
