package components

import "github.com/yohamta/donburi"

// DeathData marks a killed character. Timer counts down in seconds; at 0 the
// entity is removed from the world.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
