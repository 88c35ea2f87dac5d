package systems

import (
	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/systems/factory"
	"github.com/automoto/hitsync/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateProjectileSpawns turns this frame's spawn requests into projectiles.
// A request whose source is gone still delivers its damage to a live target.
func UpdateProjectileSpawns(w donburi.World, f *Frame) {
	for _, req := range f.SpawnRequests.Items() {
		var target *donburi.Entry
		if req.HasTarget {
			if e, ok := f.Directory.Resolve(w, req.Target); ok && !e.HasComponent(tags.Dead) {
				target = e
			}
		}

		source, ok := f.Directory.Resolve(w, req.Source)
		if !ok || !source.HasComponent(components.Transform) {
			if req.ApplyDamage && target != nil {
				EnqueueDamage(target, pendingFromProjectile(req.Source, req.Skill, req.Damage, req.IsKill))
			}
			continue
		}

		if req.HasTarget && target == nil {
			// Target already gone: fly to where the request said it was.
			req.ApplyDamage = false
		}

		factory.CreateProjectile(w, factory.ProjectileSpec{
			Source:         req.Source,
			Origin:         components.Transform.Get(source).Position,
			MoveType:       req.MoveType,
			Speed:          req.Speed,
			EffectID:       req.EffectID,
			Skill:          req.Skill,
			Target:         target,
			TargetPosition: req.TargetPosition,
			ApplyDamage:    req.ApplyDamage,
			Damage:         req.Damage,
			IsKill:         req.IsKill,
		})
	}
}

type resolvedProjectile struct {
	entry   *donburi.Entry
	target  *donburi.Entry
	outcome ArrivalOutcome
}

// UpdateProjectiles advances every projectile along its flight and resolves
// the ones that arrived, reached their target or hit an obstruction.
func UpdateProjectiles(w donburi.World, f *Frame) {
	var resolved []resolvedProjectile

	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)

		var target *donburi.Entry
		if p.HasTarget && w.Valid(p.Target) {
			if t := w.Entry(p.Target); t.HasComponent(components.Transform) {
				target = t
				end := factory.AimPoint(t)
				p.MoveVec = end.Sub(p.Start)
				if p.Parabola != nil {
					p.Parabola.EndY = end.Y
				}
			}
		}

		p.CurrentTime += f.Delta
		t := gamemath.FlightFraction(p.CurrentTime, p.TotalTime)
		pos := projectilePosition(p, t)

		// A live target has already been hit on the server; only cosmetic
		// flights can be stopped by walls.
		obstructed := false
		if target == nil && p.MoveType == components.MoveLinear && t < 1 {
			obstructed = isObstructed(e, pos)
		}

		components.Transform.Get(e).Position = pos
		moveObject(e, pos)

		var outcome ArrivalOutcome
		switch {
		case obstructed:
			outcome = ArrivalMissed
		case target != nil && (t >= 1 || pos.Distance(p.Start.Add(p.MoveVec)) <= cfg.Projectile.CollisionRadius):
			outcome = ArrivalHitTarget
		case t < 1:
			return
		case p.HasTarget:
			outcome = ArrivalMissed
		default:
			outcome = ArrivalExpired
		}
		resolved = append(resolved, resolvedProjectile{entry: e, target: target, outcome: outcome})
	})

	for _, r := range resolved {
		p := components.Projectile.Get(r.entry)
		if r.target != nil && p.ApplyDamage {
			EnqueueDamage(r.target, pendingFromProjectile(p.Source, p.Skill, p.Damage, p.IsKill))
		}
		f.Arrivals.Push(Arrival{
			Outcome:  r.outcome,
			Source:   p.Source,
			EffectID: p.EffectID,
			Skill:    p.Skill,
			Position: components.Transform.Get(r.entry).Position,
		})
		factory.DestroyProjectile(w, r.entry)
	}
}

func projectilePosition(p *components.ProjectileData, t float64) gamemath.Vec3 {
	if p.Parabola != nil {
		return gamemath.ArcPosition(p.Start, p.MoveVec, p.Parabola.StartY, p.Parabola.EndY, p.Parabola.VelocityY, t)
	}
	return gamemath.LinearPosition(p.Start, p.MoveVec, t)
}

func pendingFromProjectile(source components.ClientEntityID, skill components.SkillID, dmg components.Damage, isKill bool) components.PendingDamage {
	d := components.PendingDamage{
		Attacker:    source,
		Damage:      dmg,
		IsKill:      isKill,
		IsImmediate: true,
	}
	if skill != 0 {
		d.FromSkill = &components.SkillAttribution{Skill: skill, Value: dmg.Amount}
	}
	return d
}

// isObstructed reports whether moving the projectile's box to pos would
// overlap a solid object.
func isObstructed(e *donburi.Entry, pos gamemath.Vec3) bool {
	if !e.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return false
	}

	nx, ny := pos.X-obj.W/2, pos.Z-obj.H/2
	check := obj.Check(nx-obj.X, ny-obj.Y, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(nx, ny, obj.W, obj.H, solid) {
			return true
		}
	}
	return false
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}

func moveObject(e *donburi.Entry, pos gamemath.Vec3) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Z - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}
