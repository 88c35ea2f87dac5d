package systems

import (
	"testing"

	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/tags"
	"github.com/yohamta/donburi"
)

func TestUnmatchedEntryReleasesAfterFallbackTimeout(t *testing.T) {
	w, f := newTestWorld(t)
	spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{X: 2}, 100)

	EnqueueDamage(target, components.PendingDamage{
		Attacker: 1,
		Damage:   components.Damage{Amount: 50},
	})

	for i := 0; i < 4; i++ {
		tick(w, f, 1.0, UpdateKeyframes, UpdatePendingDamage)
	}
	if pendingLen(target) != 1 {
		t.Fatalf("Expected entry to wait below the timeout, got %d entries", pendingLen(target))
	}
	if hp(target) != 100 {
		t.Fatalf("Expected health unchanged, got %d", hp(target))
	}

	tick(w, f, 1.5, UpdateKeyframes, UpdatePendingDamage)
	if pendingLen(target) != 0 {
		t.Fatalf("Expected entry to be released, got %d entries", pendingLen(target))
	}
	if hp(target) != 50 {
		t.Errorf("Expected health 50, got %d", hp(target))
	}
	if !target.HasComponent(components.DamageDigits) {
		t.Fatal("Expected a damage digits record")
	}
	records := components.DamageDigits.Get(target).Records
	if len(records) != 1 || records[0].Damage.Amount != 50 {
		t.Errorf("Expected one record of 50, got %+v", records)
	}
	if got := f.Released.Items()[0].Reason; got != ReleaseFallback {
		t.Errorf("Expected fallback release, got %v", got)
	}

	f.EndTick()
	for i := 0; i < 10; i++ {
		tick(w, f, 1.0, UpdateKeyframes, UpdatePendingDamage)
	}
	if hp(target) != 50 || f.Released.Len() != 0 {
		t.Errorf("Expected damage to apply exactly once, health %d, releases %d", hp(target), f.Released.Len())
	}
}

func TestFallbackUsesConfiguredTimeout(t *testing.T) {
	w, f := newTestWorld(t)
	cfg.PendingDamage.FallbackTimeout = 0.5
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 10)

	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 3}})

	tick(w, f, 0.5, UpdatePendingDamage)
	if pendingLen(target) != 1 {
		t.Fatal("Expected release only once the age exceeds the timeout")
	}
	tick(w, f, 0.01, UpdatePendingDamage)
	if pendingLen(target) != 0 {
		t.Fatal("Expected release after the timeout")
	}
}

func TestImmediateEntryReleasesOnNextStep(t *testing.T) {
	w, f := newTestWorld(t)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	EnqueueDamage(target, components.PendingDamage{
		Attacker:    99,
		Damage:      components.Damage{Amount: 12},
		IsImmediate: true,
	})

	tick(w, f, 0, UpdateKeyframes, UpdatePendingDamage)
	if pendingLen(target) != 0 {
		t.Fatalf("Expected immediate entry to release, got %d entries", pendingLen(target))
	}
	if hp(target) != 88 {
		t.Errorf("Expected health 88, got %d", hp(target))
	}
	if got := f.Released.Items()[0].Reason; got != ReleaseImmediate {
		t.Errorf("Expected immediate release, got %v", got)
	}
}

func TestKeyframeReleasesEveryTargetOfAttacker(t *testing.T) {
	w, f := newTestWorld(t)
	attackerA := spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	spawnCharacter(w, f, 7, gamemath.Vec3{}, 100)

	var targets []*donburi.Entry
	for i := 0; i < 3; i++ {
		target := spawnCharacter(w, f, components.ClientEntityID(10+i), gamemath.Vec3{X: float64(i)}, 100)
		targets = append(targets, target)
		EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 10}})
		EnqueueDamage(target, components.PendingDamage{Attacker: 7, Damage: components.Damage{Amount: 5}})
		EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 20}})
	}

	f.Keyframes.Push(KeyframeEvent{Entity: attackerA.Entity(), Flags: KeyframeAttackHit})
	tick(w, f, 0.016, UpdateKeyframes, UpdatePendingDamage)

	if f.Released.Len() != 6 {
		t.Fatalf("Expected 6 releases, got %d", f.Released.Len())
	}
	for _, target := range targets {
		got := releasedFor(f, target.Entity())
		if len(got) != 2 {
			t.Fatalf("Expected 2 releases for target, got %d", len(got))
		}
		if got[0].Damage.Amount != 10 || got[1].Damage.Amount != 20 {
			t.Errorf("Expected FIFO order 10 then 20, got %d then %d", got[0].Damage.Amount, got[1].Damage.Amount)
		}
		if got[0].Reason != ReleaseKeyframe {
			t.Errorf("Expected keyframe release, got %v", got[0].Reason)
		}
		if pendingLen(target) != 1 {
			t.Errorf("Expected the other attacker's entry to stay, got %d entries", pendingLen(target))
		}
		if hp(target) != 70 {
			t.Errorf("Expected health 70, got %d", hp(target))
		}
		digits := components.DamageDigits.Get(target).Records
		if len(digits) != 2 || digits[0].Damage.Amount != 10 || digits[1].Damage.Amount != 20 {
			t.Errorf("Expected digit records in hit order, got %+v", digits)
		}
	}
}

func TestKeyframeMatching(t *testing.T) {
	fireball := components.SkillID(4)
	tests := []struct {
		name      string
		flags     KeyframeFlags
		skill     components.SkillID
		fromSkill *components.SkillAttribution
		want      bool
	}{
		{name: "attack hit matches plain entry", flags: KeyframeAttackHit, want: true},
		{name: "skill hit matches same skill", flags: KeyframeSkillHit, skill: fireball, fromSkill: &components.SkillAttribution{Skill: fireball}, want: true},
		{name: "skill hit matches other skill", flags: KeyframeSkillHit, skill: fireball, fromSkill: &components.SkillAttribution{Skill: 9}, want: true},
		{name: "skill hit matches unattributed entry", flags: KeyframeSkillHit, skill: fireball, want: true},
		{name: "attack hit matches skill entry", flags: KeyframeAttackHit, fromSkill: &components.SkillAttribution{Skill: fireball}, want: true},
		{name: "footstep is not a hit", flags: KeyframeFootstep, want: false},
		{name: "attack start is not a hit", flags: KeyframeAttackStart, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, f := newTestWorld(t)
			attacker := spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
			target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)
			EnqueueDamage(target, components.PendingDamage{
				Attacker:  1,
				Damage:    components.Damage{Amount: 1},
				FromSkill: tt.fromSkill,
			})

			f.Keyframes.Push(KeyframeEvent{Entity: attacker.Entity(), Flags: tt.flags, Skill: tt.skill})
			tick(w, f, 0.016, UpdateKeyframes, UpdatePendingDamage)

			released := pendingLen(target) == 0
			if released != tt.want {
				t.Errorf("Expected released=%v, got %v", tt.want, released)
			}
		})
	}
}

func TestSkillKeyframeReleasesEveryEntryOfAttacker(t *testing.T) {
	w, f := newTestWorld(t)
	attacker := spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 5}})
	EnqueueDamage(target, components.PendingDamage{
		Attacker:  1,
		Damage:    components.Damage{Amount: 7},
		FromSkill: &components.SkillAttribution{Skill: 7, Value: 7},
	})

	f.Keyframes.Push(KeyframeEvent{Entity: attacker.Entity(), Flags: KeyframeSkillHit, Skill: 4})
	tick(w, f, 0.016, UpdateKeyframes, UpdatePendingDamage)

	if pendingLen(target) != 0 {
		t.Fatalf("Expected both entries released, %d left", pendingLen(target))
	}
	if hp(target) != 88 {
		t.Errorf("Expected health 88, got %d", hp(target))
	}
	for _, r := range f.Released.Items() {
		if r.Reason != ReleaseKeyframe {
			t.Errorf("Expected keyframe releases, got %v", r.Reason)
		}
	}
}

func TestKeyframeFromOtherEntityIsIgnored(t *testing.T) {
	w, f := newTestWorld(t)
	spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	bystander := spawnCharacter(w, f, 3, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)
	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 1}})

	f.Keyframes.Push(KeyframeEvent{Entity: bystander.Entity(), Flags: KeyframeAttackHit})
	f.Keyframes.Push(KeyframeEvent{Entity: target.Entity(), Flags: KeyframeAttackHit})
	tick(w, f, 0.016, UpdateKeyframes, UpdatePendingDamage)

	if pendingLen(target) != 1 {
		t.Errorf("Expected entry to keep waiting, got %d entries", pendingLen(target))
	}
}

func TestGoneAttackerFallsBackToTimeout(t *testing.T) {
	w, f := newTestWorld(t)
	attacker := spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)
	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 8}})

	stale := attacker.Entity()
	w.Remove(stale)

	f.Keyframes.Push(KeyframeEvent{Entity: stale, Flags: KeyframeAttackHit})
	tick(w, f, 0.016, UpdateKeyframes, UpdatePendingDamage)
	if pendingLen(target) != 1 {
		t.Fatal("Expected no release while the attacker is gone")
	}
	f.EndTick()

	tick(w, f, cfg.PendingDamage.FallbackTimeout, UpdateKeyframes, UpdatePendingDamage)
	if pendingLen(target) != 0 || hp(target) != 92 {
		t.Errorf("Expected fallback release, %d entries left, health %d", pendingLen(target), hp(target))
	}
}

func TestDestroyedTargetDiscardsPendingEntries(t *testing.T) {
	w, f := newTestWorld(t)
	attacker := spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)
	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 5}})
	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 5}, IsImmediate: true})

	w.Remove(target.Entity())

	f.Keyframes.Push(KeyframeEvent{Entity: attacker.Entity(), Flags: KeyframeAttackHit})
	tick(w, f, 10, UpdateKeyframes, UpdatePendingDamage, UpdateDamageDigits)

	if f.Released.Len() != 0 {
		t.Errorf("Expected no releases, got %d", f.Released.Len())
	}
	batch, ok := components.DigitBatch.First(w)
	if !ok {
		t.Fatal("Expected the digit batch to exist")
	}
	if n := components.DigitBatch.Get(batch).Len(); n != 0 {
		t.Errorf("Expected no digits, got %d", n)
	}
	if EnqueueDamage(target, components.PendingDamage{Attacker: 1}) {
		t.Error("Expected enqueue on a removed target to be refused")
	}
}

func TestKillMarksTargetDead(t *testing.T) {
	w, f := newTestWorld(t)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 30)

	EnqueueDamage(target, components.PendingDamage{
		Attacker:    1,
		Damage:      components.Damage{Amount: 45},
		IsKill:      true,
		IsImmediate: true,
	})
	tick(w, f, 0.016, UpdatePendingDamage)

	if hp(target) != 0 {
		t.Errorf("Expected health to saturate at 0, got %d", hp(target))
	}
	if !target.HasComponent(tags.Dead) {
		t.Error("Expected target to be marked dead")
	}
	if _, ok := f.Directory.Get(2); ok {
		t.Error("Expected target to leave the directory")
	}
	if !f.Released.Items()[0].Killed {
		t.Error("Expected the release to report the kill")
	}
}

func TestLargeListWarnsOnce(t *testing.T) {
	w, f := newTestWorld(t)
	cfg.PendingDamage.WarnListLength = 2
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	for i := 0; i < 4; i++ {
		if !EnqueueDamage(target, components.PendingDamage{Attacker: 1}) {
			t.Fatal("Expected enqueue to succeed past the warning threshold")
		}
	}
	list := components.PendingDamageList.Get(target)
	if !list.Warned || list.Len() != 4 {
		t.Fatalf("Expected warned list of 4, got warned=%v len=%d", list.Warned, list.Len())
	}

	tick(w, f, cfg.PendingDamage.FallbackTimeout+1, UpdatePendingDamage)
	if components.PendingDamageList.Get(target).Warned {
		t.Error("Expected the warning to reset once the list drains")
	}
}

func TestAgeCountsTheFrameEntryWasQueuedIn(t *testing.T) {
	w, f := newTestWorld(t)
	spawnCharacter(w, f, 1, gamemath.Vec3{}, 100)
	target := spawnCharacter(w, f, 2, gamemath.Vec3{}, 100)

	EnqueueDamage(target, components.PendingDamage{Attacker: 1, Damage: components.Damage{Amount: 3}})
	tick(w, f, cfg.PendingDamage.FallbackTimeout+0.01, UpdateKeyframes, UpdatePendingDamage)

	if pendingLen(target) != 0 {
		t.Fatalf("Expected release on the first frame longer than the timeout, %d left", pendingLen(target))
	}
	if got := f.Released.Items()[0].Reason; got != ReleaseFallback {
		t.Errorf("Expected fallback release, got %v", got)
	}
}
