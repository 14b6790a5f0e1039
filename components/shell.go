package components

import (
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
)

type ShellData struct {
	Owner    *donburi.Entry
	Gun      cfg.GunID
	VX, VY   float64 // units per second
	TimeLeft int     // ticks until the shell lands
}

var Shell = donburi.NewComponentType[ShellData]()

type ExplosionData struct {
	X, Y   float64
	Radius float64
	Frames int // remaining
	Total  int
}

var Explosion = donburi.NewComponentType[ExplosionData]()
