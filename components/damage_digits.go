package components

import (
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AtlasID selects the glyph texture a digit is drawn from.
type AtlasID int

const (
	AtlasDamage AtlasID = iota
	AtlasPlayer
	AtlasMiss
)

// DamageDigitRecord is one applied damage waiting to be turned into digits.
type DamageDigitRecord struct {
	Damage      Damage
	ModelHeight float64
	OnPlayer    bool
}

type DamageDigitsData struct {
	Records []DamageDigitRecord
}

var DamageDigits = donburi.NewComponentType[DamageDigitsData]()

// DigitPopupData is a floating number above a target.
type DigitPopupData struct {
	Anchor gamemath.Vec3
	Damage Damage
	Atlas  AtlasID

	Rise *gween.Tween
	Pop  *gween.Tween

	Height float64
	Scale  float64
}

var DigitPopup = donburi.NewComponentType[DigitPopupData]()
