package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// ApplyDamage subtracts amount from Current without going below zero and
// reports whether the entity is now at zero.
func (h *HealthData) ApplyDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	if amount >= h.Current {
		h.Current = 0
	} else {
		h.Current -= amount
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()

// ModelHeightData is the height of the entity's model, used to place
// damage digits above its head.
type ModelHeightData struct {
	Height float64
}

var ModelHeight = donburi.NewComponentType[ModelHeightData]()
