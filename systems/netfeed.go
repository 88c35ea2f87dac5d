package systems

import (
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/shared/messages"
	"github.com/automoto/hitsync/systems/factory"
	"github.com/yohamta/donburi"
)

// Feed is the source of server messages, normally *network.Client.
type Feed interface {
	DrainSpawns() []messages.SpawnCharacter
	DrainDespawns() []messages.DespawnEntity
	DrainDamage() []messages.DamageEntity
	DrainProjectiles() []messages.FireProjectile
}

// UpdateNetFeed applies this frame's server messages: directory changes
// first, then damage and projectile launches. Deferred damage starts the
// attacker's swing so its hit keyframe can release it.
func UpdateNetFeed(w donburi.World, f *Frame, feed Feed) {
	for _, msg := range feed.DrainSpawns() {
		id := components.ClientEntityID(msg.NetworkID)
		if old, ok := findCharacter(w, f, id); ok {
			removeCharacter(w, f, old)
		}
		factory.CreateCharacter(w, f.Directory, factory.CharacterSpec{
			ID:          id,
			Position:    gamemath.Vec3{X: msg.X, Y: msg.Y, Z: msg.Z},
			HP:          msg.HP,
			MaxHP:       msg.MaxHP,
			ModelHeight: msg.ModelHeight,
			IsPlayer:    msg.IsLocal,
		})
	}

	for _, msg := range feed.DrainDespawns() {
		id := components.ClientEntityID(msg.NetworkID)
		if e, ok := findCharacter(w, f, id); ok {
			removeCharacter(w, f, e)
		}
		f.Directory.Remove(id)
	}

	for _, msg := range feed.DrainDamage() {
		target, ok := f.Directory.Resolve(w, components.ClientEntityID(msg.TargetID))
		if !ok {
			continue
		}
		d := PendingFromMessage(msg)
		if !EnqueueDamage(target, d) || d.IsImmediate {
			continue
		}
		if attacker, ok := f.Directory.Resolve(w, d.Attacker); ok {
			skill := components.SkillID(0)
			if d.FromSkill != nil {
				skill = d.FromSkill.Skill
			}
			StartAttack(attacker, skill)
		}
	}

	for _, msg := range feed.DrainProjectiles() {
		f.SpawnRequests.Push(SpawnRequestFromMessage(msg))
	}
}

// PendingFromMessage converts a server damage message into a queue entry.
func PendingFromMessage(msg messages.DamageEntity) components.PendingDamage {
	d := components.PendingDamage{
		Attacker: components.ClientEntityID(msg.AttackerID),
		Damage: components.Damage{
			Amount:       msg.Damage,
			IsCritical:   msg.IsCritical,
			ApplyHitStun: msg.ApplyHitStun,
		},
		IsKill:      msg.IsKill,
		IsImmediate: msg.Immediate,
	}
	if msg.SkillID != 0 {
		d.FromSkill = &components.SkillAttribution{
			Skill: components.SkillID(msg.SkillID),
			Value: msg.SkillValue,
		}
	}
	return d
}

func SpawnRequestFromMessage(msg messages.FireProjectile) ProjectileSpawnRequest {
	moveType := components.MoveLinear
	switch msg.MoveType {
	case messages.MoveParabolic:
		moveType = components.MoveParabolic
	case messages.MoveImmediate:
		moveType = components.MoveImmediate
	}

	return ProjectileSpawnRequest{
		Source:         components.ClientEntityID(msg.SourceID),
		Target:         components.ClientEntityID(msg.TargetID),
		HasTarget:      msg.TargetID != 0,
		TargetPosition: gamemath.Vec3{X: msg.X, Y: msg.Y, Z: msg.Z},
		MoveType:       moveType,
		Speed:          msg.Speed,
		EffectID:       components.EffectID(msg.EffectID),
		Skill:          components.SkillID(msg.SkillID),
		ApplyDamage:    msg.ApplyDamage,
		Damage: components.Damage{
			Amount:     msg.Damage,
			IsCritical: msg.IsCritical,
		},
		IsKill: msg.IsKill,
	}
}
