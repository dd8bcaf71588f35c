package tags

import "github.com/yohamta/donburi"

var (
	Cube     = donburi.NewTag().SetName("Cube")
	BlueCube = donburi.NewTag().SetName("BlueCube")
	RedCube  = donburi.NewTag().SetName("RedCube")
)

// Resolv tags for collision checks
const (
	ResolvCube = "cube"
	ResolvBlue = "blue"
	ResolvRed  = "red"
)
