package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the cube body. Its X/Y is the top-left of the square.
type ObjectData struct {
	*resolv.Object
}

// MoveTo places the body and refreshes its space cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X, o.Y = x, y
	o.Update()
}

// Center returns the body center.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the arena-wide resolv space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
