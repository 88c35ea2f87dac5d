package systems

import (
	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/systems/factory"
	"github.com/yohamta/donburi"
)

// MissGlyphs is the number of cells in the MISS texture strip.
const MissGlyphs = 4

// UpdateDamageDigits rebuilds the digit batch for this frame. Finished popups
// are removed, new damage records become popups, and every live popup emits
// its glyphs into the cleared batch.
func UpdateDamageDigits(w donburi.World, f *Frame) {
	batch := components.DigitBatch.Get(factory.CreateDigitBatch(w))
	batch.Clear()

	advancePopups(w, float32(f.Delta))
	spawnPopups(w)

	components.DigitPopup.Each(w, func(e *donburi.Entry) {
		emitGlyphs(batch, components.DigitPopup.Get(e))
	})
}

func advancePopups(w donburi.World, dt float32) {
	var finished []donburi.Entity
	components.DigitPopup.Each(w, func(e *donburi.Entry) {
		popup := components.DigitPopup.Get(e)
		if popup.Rise == nil {
			// Zero-length motion: shown for the frame it spawned in.
			finished = append(finished, e.Entity())
			return
		}

		height, riseDone := popup.Rise.Update(dt)
		popup.Height = float64(height)
		if popup.Pop != nil {
			scale, _ := popup.Pop.Update(dt)
			popup.Scale = float64(scale)
		}
		if riseDone {
			finished = append(finished, e.Entity())
		}
	})

	for _, e := range finished {
		w.Remove(e)
	}
}

func spawnPopups(w donburi.World) {
	var consumed []*donburi.Entry
	type pending struct {
		anchor gamemath.Vec3
		record components.DamageDigitRecord
	}
	var popups []pending

	components.DamageDigits.Each(w, func(e *donburi.Entry) {
		var base gamemath.Vec3
		if e.HasComponent(components.Transform) {
			base = components.Transform.Get(e).Position
		}
		for _, r := range components.DamageDigits.Get(e).Records {
			anchor := base
			anchor.Y += r.ModelHeight
			popups = append(popups, pending{anchor: anchor, record: r})
		}
		consumed = append(consumed, e)
	})

	for _, e := range consumed {
		donburi.Remove[components.DamageDigitsData](e, components.DamageDigits)
	}
	for _, p := range popups {
		factory.CreateDigitPopup(w, p.anchor, p.record.Damage, atlasFor(p.record))
	}
}

func atlasFor(r components.DamageDigitRecord) components.AtlasID {
	switch {
	case r.Damage.IsMiss():
		return components.AtlasMiss
	case r.OnPlayer:
		return components.AtlasPlayer
	}
	return components.AtlasDamage
}

// emitGlyphs appends one glyph per decimal digit, left to right, centred on
// the popup's anchor. A miss emits the MISS strip instead.
func emitGlyphs(batch *components.DigitBatchData, popup *components.DigitPopupData) {
	anchor := popup.Anchor
	anchor.Y += popup.Height
	size := cfg.DamageDigits.GlyphScale * popup.Scale

	if popup.Atlas == components.AtlasMiss {
		for i := 0; i < MissGlyphs; i++ {
			batch.Push(anchor, glyphOffset(i, MissGlyphs, size), size, MissUV(i), components.AtlasMiss)
		}
		return
	}

	var buf [20]int
	digits := DecimalDigits(popup.Damage.Amount, buf[:0])
	for i, d := range digits {
		batch.Push(anchor, glyphOffset(i, len(digits), size), size, DigitUV(d), popup.Atlas)
	}
}

func glyphOffset(i, n int, size float64) float64 {
	return (float64(i) - float64(n-1)/2) * size
}

// DecimalDigits appends the decimal digits of n, most significant first.
// Non-positive values yield a single 0.
func DecimalDigits(n int, dst []int) []int {
	if n <= 0 {
		return append(dst, 0)
	}
	start := len(dst)
	for ; n > 0; n /= 10 {
		dst = append(dst, n%10)
	}
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

// DigitUV is the atlas cell of digit d in a ten-cell strip.
func DigitUV(d int) [4]float32 {
	return [4]float32{float32(d) / 10, 0, float32(d+1) / 10, 1}
}

// MissUV is cell i of the four-cell MISS strip.
func MissUV(i int) [4]float32 {
	return [4]float32{float32(i) / MissGlyphs, 0, float32(i+1) / MissGlyphs, 1}
}
