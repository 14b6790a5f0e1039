package tags

import "github.com/yohamta/donburi"

var (
	Tank     = donburi.NewTag().SetName("Tank")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Shell    = donburi.NewTag().SetName("Shell")
)

// Resolv tags for collision
const (
	ResolvSolid = "solid"
	ResolvTank  = "Tank"
	ResolvShell = "Shell"
)
