package components

// Damage is an authoritative damage outcome as delivered by the server.
type Damage struct {
	Amount       int
	IsCritical   bool
	ApplyHitStun bool
}

// IsMiss reports whether the hit landed for nothing.
func (d Damage) IsMiss() bool {
	return d.Amount <= 0
}

type SkillID uint32

// SkillAttribution ties a damage outcome to the skill that caused it.
type SkillAttribution struct {
	Skill SkillID
	Value int
}
