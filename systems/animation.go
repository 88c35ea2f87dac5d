package systems

import (
	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/yohamta/donburi"
)

// StartAttack begins an attack swing on attacker. A swing that has not landed
// yet is left alone so several hits resolved together share one hit keyframe;
// a swing past its hit frame starts over.
func StartAttack(attacker *donburi.Entry, skill components.SkillID) {
	if attacker == nil || !attacker.Valid() {
		return
	}
	if attacker.HasComponent(components.AttackAnimation) {
		anim := components.AttackAnimation.Get(attacker)
		if !anim.HitSent {
			return
		}
		*anim = components.AttackAnimationData{
			HitAt:    cfg.AttackAnimation.HitFrame,
			Duration: cfg.AttackAnimation.Duration,
			Skill:    skill,
		}
		return
	}
	donburi.Add(attacker, components.AttackAnimation, &components.AttackAnimationData{
		HitAt:    cfg.AttackAnimation.HitFrame,
		Duration: cfg.AttackAnimation.Duration,
		Skill:    skill,
	})
}

// UpdateAttackAnimations plays attack swings and emits their hit keyframes.
// It stands in for the skeletal animation system.
func UpdateAttackAnimations(w donburi.World, f *Frame) {
	var finished []*donburi.Entry

	components.AttackAnimation.Each(w, func(e *donburi.Entry) {
		anim := components.AttackAnimation.Get(e)
		if anim.Elapsed == 0 {
			f.Keyframes.Push(KeyframeEvent{Entity: e.Entity(), Flags: KeyframeAttackStart})
		}
		anim.Elapsed += f.Delta

		if !anim.HitSent && anim.Elapsed >= anim.HitAt {
			anim.HitSent = true
			flags := KeyframeAttackHit
			if anim.Skill != 0 {
				flags = KeyframeSkillHit
			}
			f.Keyframes.Push(KeyframeEvent{Entity: e.Entity(), Flags: flags, Skill: anim.Skill})
		}
		if anim.Elapsed >= anim.Duration {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		donburi.Remove[components.AttackAnimationData](e, components.AttackAnimation)
	}
}
