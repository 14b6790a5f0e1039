package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the object's bounds.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space for the arena.
var Space = donburi.NewComponentType[resolv.Space]()

// ArenaData holds the playable bounds in world units.
type ArenaData struct {
	Width, Height float64
}

var Arena = donburi.NewComponentType[ArenaData]()
