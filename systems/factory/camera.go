package factory

import (
	"github.com/automoto/hitsync/archetypes"
	"github.com/automoto/hitsync/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres a camera on a zone of the given size.
func CreateCamera(w donburi.World, width, depth float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: width / 2, Y: depth / 2},
		Bounds:   math.Vec2{X: width, Y: depth},
	})
	return camera
}
