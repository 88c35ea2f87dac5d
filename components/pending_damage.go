package components

import "github.com/yohamta/donburi"

// PendingDamage is a damage outcome that has been decided but not yet shown.
type PendingDamage struct {
	Age         float64 // seconds since enqueued
	Attacker    ClientEntityID
	Damage      Damage
	IsKill      bool
	IsImmediate bool
	FromSkill   *SkillAttribution

	// Matched is set when the attacker's hit keyframe arrives this tick.
	Matched bool
}

// PendingDamageListData holds a target's pending entries in insertion order.
type PendingDamageListData struct {
	Entries []PendingDamage
	Warned  bool
}

func NewPendingDamageList(capacity int) *PendingDamageListData {
	return &PendingDamageListData{
		Entries: make([]PendingDamage, 0, capacity),
	}
}

func (l *PendingDamageListData) Push(d PendingDamage) {
	l.Entries = append(l.Entries, d)
}

func (l *PendingDamageListData) Len() int {
	return len(l.Entries)
}

var PendingDamageList = donburi.NewComponentType[PendingDamageListData]()
