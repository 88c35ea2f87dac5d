package systems

import (
	"math"
	"testing"

	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "zero", n: 0, want: []int{0}},
		{name: "single", n: 7, want: []int{7}},
		{name: "reading order", n: 1203, want: []int{1, 2, 0, 3}},
		{name: "negative", n: -5, want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecimalDigits(tt.n, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("DecimalDigits(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("DecimalDigits(%d) = %v, want %v", tt.n, got, tt.want)
				}
			}
		})
	}
}

func TestDigitUV(t *testing.T) {
	uv := DigitUV(3)
	if uv != [4]float32{0.3, 0, 0.4, 1} {
		t.Errorf("Expected cell 3 of 10, got %v", uv)
	}
	miss := MissUV(1)
	if miss != [4]float32{0.25, 0, 0.5, 1} {
		t.Errorf("Expected cell 1 of 4, got %v", miss)
	}
}

func digitBatch(t *testing.T, w donburi.World) *components.DigitBatchData {
	t.Helper()
	e, ok := components.DigitBatch.First(w)
	if !ok {
		t.Fatal("Expected the digit batch to exist")
	}
	return components.DigitBatch.Get(e)
}

func releaseOn(w donburi.World, f *Frame, target *donburi.Entry, amount int) {
	EnqueueDamage(target, components.PendingDamage{
		Attacker:    1,
		Damage:      components.Damage{Amount: amount},
		IsImmediate: true,
	})
	tick(w, f, 0.016, UpdatePendingDamage, UpdateDamageDigits)
}

func TestReleasedDamageBecomesGlyphs(t *testing.T) {
	w, f := newTestWorld(t)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{X: 4, Y: 0.5, Z: -2}, 1000)

	releaseOn(w, f, target, 123)

	if target.HasComponent(components.DamageDigits) {
		t.Error("Expected the digit record to be consumed")
	}
	batch := digitBatch(t, w)
	if batch.Len() != 3 {
		t.Fatalf("Expected 3 glyphs, got %d", batch.Len())
	}

	size := cfg.DamageDigits.GlyphScale * cfg.DamageDigits.PopScale
	wantAnchorY := 0.5 + cfg.DamageDigits.DefaultModelHeight
	for i, d := range []int{1, 2, 3} {
		pos := batch.Positions[i]
		if pos[0] != 4 || pos[2] != -2 {
			t.Errorf("glyph %d: expected anchor over the target, got %v", i, pos)
		}
		if math.Abs(float64(pos[1])-wantAnchorY) > 1e-5 {
			t.Errorf("glyph %d: expected anchor height %v, got %v", i, wantAnchorY, pos[1])
		}
		wantOffset := float64(i-1) * size
		if math.Abs(float64(pos[3])-wantOffset) > 1e-5 {
			t.Errorf("glyph %d: expected offset %v, got %v", i, wantOffset, pos[3])
		}
		if batch.UVs[i] != DigitUV(d) {
			t.Errorf("glyph %d: expected uv of digit %d, got %v", i, d, batch.UVs[i])
		}
		if batch.Atlases[i] != components.AtlasDamage {
			t.Errorf("glyph %d: expected damage atlas, got %v", i, batch.Atlases[i])
		}
		if math.Abs(float64(batch.Sizes[i][0])-size) > 1e-5 {
			t.Errorf("glyph %d: expected size %v, got %v", i, size, batch.Sizes[i][0])
		}
	}
}

func TestMissAndPlayerAtlases(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		w, f := newTestWorld(t)
		target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 10)
		releaseOn(w, f, target, 0)

		batch := digitBatch(t, w)
		if batch.Len() != MissGlyphs {
			t.Fatalf("Expected %d glyphs, got %d", MissGlyphs, batch.Len())
		}
		for i := 0; i < MissGlyphs; i++ {
			if batch.Atlases[i] != components.AtlasMiss || batch.UVs[i] != MissUV(i) {
				t.Errorf("glyph %d: expected miss cell, got atlas %v uv %v", i, batch.Atlases[i], batch.UVs[i])
			}
		}
	})

	t.Run("player", func(t *testing.T) {
		w, f := newTestWorld(t)
		target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 10)
		f.Directory.SetPlayer(2)
		releaseOn(w, f, target, 4)

		batch := digitBatch(t, w)
		if batch.Len() != 1 || batch.Atlases[0] != components.AtlasPlayer {
			t.Errorf("Expected one player glyph, got %v", batch.Atlases)
		}
	})
}

func TestPopupLivesForItsMotion(t *testing.T) {
	w, f := newTestWorld(t)
	cfg.DamageDigits.MotionDuration = 0.5
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	releaseOn(w, f, target, 42)
	first := digitBatch(t, w).Positions[0][1]

	tick(w, f, 0.25, UpdatePendingDamage, UpdateDamageDigits)
	batch := digitBatch(t, w)
	if batch.Len() != 2 {
		t.Fatalf("Expected the buffer to be rebuilt with 2 glyphs, got %d", batch.Len())
	}
	if batch.Positions[0][1] <= first {
		t.Errorf("Expected the popup to rise, %v -> %v", first, batch.Positions[0][1])
	}

	tick(w, f, 0.3, UpdatePendingDamage, UpdateDamageDigits)
	if n := digitBatch(t, w).Len(); n != 0 {
		t.Errorf("Expected the popup to be gone after its motion, got %d glyphs", n)
	}
}

func TestZeroMotionIsSingleFrame(t *testing.T) {
	w, f := newTestWorld(t)
	cfg.DamageDigits.MotionDuration = 0
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	releaseOn(w, f, target, 9)
	if n := digitBatch(t, w).Len(); n != 1 {
		t.Fatalf("Expected 1 glyph on the release frame, got %d", n)
	}

	tick(w, f, 0.016, UpdatePendingDamage, UpdateDamageDigits)
	if n := digitBatch(t, w).Len(); n != 0 {
		t.Errorf("Expected the buffer to be empty next frame, got %d", n)
	}
}

func TestFrameStepRunsWholePipeline(t *testing.T) {
	w, f := newTestWorld(t)
	attacker := spawnCharacter(w, f, 1, gamemath.Vec3{Y: 1}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{X: 10}, 100)
	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 25}})

	f.SpawnRequests.Push(ProjectileSpawnRequest{
		Source: 1, Target: 2, HasTarget: true, MoveType: components.MoveImmediate,
		ApplyDamage: true, Damage: components.Damage{Amount: 5},
	})
	f.Keyframes.Push(KeyframeEvent{Entity: attacker.Entity(), Flags: KeyframeAttackHit})
	f.Delta = 0.016
	f.Step(w)

	if hp(target) != 70 {
		t.Errorf("Expected both hits to land this frame, health %d", hp(target))
	}
	if f.Arrivals.Len() != 1 || f.Released.Len() != 2 {
		t.Errorf("Expected 1 arrival and 2 releases, got %d and %d", f.Arrivals.Len(), f.Released.Len())
	}
	if n := digitBatch(t, w).Len(); n != 3 {
		t.Errorf("Expected glyphs for 25 and 5, got %d", n)
	}

	f.EndTick()
	if f.Arrivals.Len() != 0 || f.Released.Len() != 0 || f.Keyframes.Len() != 0 || f.SpawnRequests.Len() != 0 {
		t.Error("Expected EndTick to clear every queue")
	}
}
