package components

import (
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

type MoveType int

const (
	MoveLinear MoveType = iota
	MoveParabolic
	MoveImmediate
)

func (m MoveType) String() string {
	switch m {
	case MoveLinear:
		return "linear"
	case MoveParabolic:
		return "parabolic"
	case MoveImmediate:
		return "immediate"
	}
	return "unknown"
}

type EffectID uint32

// ParabolaData is the vertical profile of an arcing flight.
type ParabolaData struct {
	StartY    float64
	EndY      float64
	VelocityY float64
}

type ProjectileData struct {
	Source   ClientEntityID
	EffectID EffectID
	Skill    SkillID
	MoveType MoveType

	// Target is only meaningful when HasTarget is set; otherwise the flight
	// ends at TargetPosition.
	Target         donburi.Entity
	HasTarget      bool
	TargetPosition gamemath.Vec3

	ApplyDamage bool
	Damage      Damage
	IsKill      bool

	Start       gamemath.Vec3
	MoveVec     gamemath.Vec3
	CurrentTime float64
	TotalTime   float64
	Parabola    *ParabolaData
}

var Projectile = donburi.NewComponentType[ProjectileData]()
