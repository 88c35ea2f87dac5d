package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the ground-plane point (world X, Z) at the screen centre.
type CameraData struct {
	Position math.Vec2
	Offset   math.Vec2 // shake, added on top of Position when drawing
	Bounds   math.Vec2 // zone size; Position stays within [0, Bounds]
}

// View returns the point the renderer centres on.
func (c *CameraData) View() math.Vec2 {
	return math.Vec2{X: c.Position.X + c.Offset.X, Y: c.Position.Y + c.Offset.Y}
}

// ScreenShakeData is a decaying shake, in seconds.
type ScreenShakeData struct {
	Intensity float64
	Duration  float64
	Elapsed   float64
}

var (
	Camera      = donburi.NewComponentType[CameraData]()
	ScreenShake = donburi.NewComponentType[ScreenShakeData]()
)
