package factory

import (
	"github.com/automoto/hitsync/archetypes"
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateObstruction places a solid box on the ground plane. x and z are the
// box's minimum corner, width and depth its extent along X and Z.
func CreateObstruction(w donburi.World, x, z, width, depth float64) *donburi.Entry {
	wall := archetypes.Obstruction.Spawn(w)

	obj := resolv.NewObject(x, z, width, depth, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
