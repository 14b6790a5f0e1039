package components

import (
	"math"

	"github.com/yohamta/donburi"
)

type TankData struct {
	PlayerIndex    int
	Rotation       float64 // radians, 0 faces +X
	Active         bool    // false once destroyed this round
	ControlEnabled bool
}

// Forward returns the unit facing vector.
func (t *TankData) Forward() (float64, float64) {
	return math.Cos(t.Rotation), math.Sin(t.Rotation)
}

var Tank = donburi.NewComponentType[TankData]()
