package factory

import (
	"github.com/automoto/hitsync/archetypes"
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ProjectileSpec struct {
	Source   components.ClientEntityID
	Origin   gamemath.Vec3
	MoveType components.MoveType
	Speed    float64 // 0 uses the configured default
	EffectID components.EffectID
	Skill    components.SkillID

	// Target is nil for a flight to TargetPosition.
	Target         *donburi.Entry
	TargetPosition gamemath.Vec3

	ApplyDamage bool
	Damage      components.Damage
	IsKill      bool
}

// AimPoint is where a projectile aimed at target should land.
func AimPoint(target *donburi.Entry) gamemath.Vec3 {
	p := components.Transform.Get(target).Position
	p.Y += config.Projectile.TargetHeightOffset
	return p
}

// CreateProjectile spawns a projectile at spec.Origin. Flight time is fixed
// here from the distance to the end point at spawn.
func CreateProjectile(w donburi.World, spec ProjectileSpec) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)

	data := components.ProjectileData{
		Source:         spec.Source,
		EffectID:       spec.EffectID,
		Skill:          spec.Skill,
		MoveType:       spec.MoveType,
		TargetPosition: spec.TargetPosition,
		ApplyDamage:    spec.ApplyDamage,
		Damage:         spec.Damage,
		IsKill:         spec.IsKill,
		Start:          spec.Origin,
	}

	end := spec.TargetPosition
	if spec.Target != nil && spec.Target.Valid() && spec.Target.HasComponent(components.Transform) {
		data.Target = spec.Target.Entity()
		data.HasTarget = true
		end = AimPoint(spec.Target)
	}
	data.MoveVec = end.Sub(spec.Origin)

	speed := spec.Speed
	if speed <= 0 {
		speed = config.Projectile.DefaultSpeed
	}

	switch spec.MoveType {
	case components.MoveImmediate:
		data.TotalTime = 0
	case components.MoveParabolic:
		horizontal := data.MoveVec.Horizontal().Length()
		data.TotalTime = gamemath.FlightTime(horizontal, speed)
		data.Parabola = &components.ParabolaData{
			StartY:    spec.Origin.Y,
			EndY:      end.Y,
			VelocityY: gamemath.ArcVelocity(horizontal, config.Projectile.ParabolaArcFactor),
		}
	default:
		data.TotalTime = gamemath.FlightTime(data.MoveVec.Length(), speed)
	}

	components.Projectile.SetValue(p, data)
	components.Transform.SetValue(p, components.TransformData{Position: spec.Origin})

	size := config.Projectile.ObstructionSize
	obj := resolv.NewObject(spec.Origin.X-size/2, spec.Origin.Z-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return p
}

// DestroyProjectile removes a projectile and its collision box.
func DestroyProjectile(w donburi.World, p *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(w); ok {
		obj := components.Object.Get(p)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	w.Remove(p.Entity())
}
