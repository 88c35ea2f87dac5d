package components

import (
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position. Y is up.
type TransformData struct {
	Position gamemath.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
