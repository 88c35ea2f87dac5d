package factory

import (
	"github.com/automoto/hitsync/archetypes"
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateDigitPopup spawns a floating number anchored at anchor. With a zero
// motion duration the popup is shown for one frame only.
func CreateDigitPopup(w donburi.World, anchor gamemath.Vec3, damage components.Damage, atlas components.AtlasID) *donburi.Entry {
	e := archetypes.DigitPopup.Spawn(w)

	popup := components.DigitPopupData{
		Anchor: anchor,
		Damage: damage,
		Atlas:  atlas,
		Scale:  1,
	}

	if d := float32(config.DamageDigits.MotionDuration); d > 0 {
		popup.Rise = gween.New(0, float32(config.DamageDigits.RiseHeight), d, ease.OutCubic)
		pop := float32(config.DamageDigits.PopScale)
		if damage.IsCritical {
			pop *= 1.25
		}
		popup.Pop = gween.New(pop, 1, d*0.5, ease.OutQuad)
		popup.Scale = float64(pop)
	}

	components.DigitPopup.SetValue(e, popup)
	return e
}

// CreateDigitBatch creates the render buffer singleton if it doesn't exist.
func CreateDigitBatch(w donburi.World) *donburi.Entry {
	if e, ok := components.DigitBatch.First(w); ok {
		return e
	}
	e := archetypes.DigitBatch.Spawn(w)
	components.DigitBatch.Set(e, components.NewDigitBatch(config.DamageDigits.BufferCapacity))
	return e
}
