package components

import "github.com/yohamta/donburi"

// AttackAnimationData is the timing of an attack swing currently playing.
type AttackAnimationData struct {
	Elapsed  float64
	HitAt    float64 // seconds into the swing when the blow lands
	Duration float64
	Skill    SkillID
	HitSent  bool
}

var AttackAnimation = donburi.NewComponentType[AttackAnimationData]()
