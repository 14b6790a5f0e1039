package systems

import (
	"fmt"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 4

// DrawHUD renders the round number and every player's wins along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(entry)
	roster := components.Roster.Get(entry)
	if round.RoundNumber == 0 {
		return
	}

	face := fonts.Small.Get()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(height-14), float32(screen.Bounds().Dx()), 14, cfg.BlackOverlay, false)

	x := hudMargin
	label := fmt.Sprintf("ROUND %d  FIRST TO %d", round.RoundNumber, round.RoundsToWin)
	text.Draw(screen, label, face, x, height-hudMargin, cfg.White)
	x += 120
	for _, c := range roster.Combatants {
		text.Draw(screen, fmt.Sprintf("P%d %d", c.PlayerIndex, c.Wins), face, x, height-hudMargin, c.Color)
		x += 48
	}
	if round.CanAddAnother && round.Phase == cfg.PhasePlaying {
		text.Draw(screen, "SHIFT+A: JOIN", face, x+8, height-hudMargin, cfg.Yellow)
	}
}
