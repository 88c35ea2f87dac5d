package systems

import (
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Queue is a FIFO of one frame's messages. Consumers read it with Items and
// Frame.EndTick clears it.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

func (q *Queue[T]) Items() []T {
	return q.items
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// KeyframeFlags describe what an animation frame represents.
type KeyframeFlags uint8

const (
	KeyframeAttackStart KeyframeFlags = 1 << iota
	KeyframeAttackHit
	KeyframeSkillHit
	KeyframeFootstep
)

// IsHit reports whether the frame is the moment a blow lands.
func (f KeyframeFlags) IsHit() bool {
	return f&(KeyframeAttackHit|KeyframeSkillHit) != 0
}

// KeyframeEvent is emitted by the animation system when Entity reaches a
// tagged frame. Skill names the skill being played, zero for none; it picks
// the effect and never narrows which pending entries the frame releases.
type KeyframeEvent struct {
	Entity donburi.Entity
	Flags  KeyframeFlags
	Skill  components.SkillID
}

// ProjectileSpawnRequest asks for a projectile from Source. Without a target
// entity the flight ends at TargetPosition.
type ProjectileSpawnRequest struct {
	Source         components.ClientEntityID
	Target         components.ClientEntityID
	HasTarget      bool
	TargetPosition gamemath.Vec3
	MoveType       components.MoveType
	Speed          float64
	EffectID       components.EffectID
	Skill          components.SkillID
	ApplyDamage    bool
	Damage         components.Damage
	IsKill         bool
}

type ArrivalOutcome int

const (
	ArrivalHitTarget ArrivalOutcome = iota
	ArrivalMissed
	ArrivalExpired
)

func (o ArrivalOutcome) String() string {
	switch o {
	case ArrivalHitTarget:
		return "hit"
	case ArrivalMissed:
		return "missed"
	case ArrivalExpired:
		return "expired"
	}
	return "unknown"
}

// Arrival is published when a projectile resolves.
type Arrival struct {
	Outcome  ArrivalOutcome
	Source   components.ClientEntityID
	EffectID components.EffectID
	Skill    components.SkillID
	Position gamemath.Vec3
}

type ReleaseReason int

const (
	ReleaseImmediate ReleaseReason = iota
	ReleaseKeyframe
	ReleaseFallback
)

// ReleasedDamage is published for every pending entry applied to a target.
type ReleasedDamage struct {
	Target   donburi.Entity
	TargetID components.ClientEntityID
	Attacker components.ClientEntityID
	Damage   components.Damage
	Killed   bool
	Reason   ReleaseReason
}

// Frame is the context handed to every step. Inputs are filled before the
// steps run and outputs are read after; EndTick empties all queues.
type Frame struct {
	Delta     float64 // seconds
	Directory *components.ClientEntityList

	Keyframes     Queue[KeyframeEvent]
	SpawnRequests Queue[ProjectileSpawnRequest]

	Arrivals Queue[Arrival]
	Released Queue[ReleasedDamage]
}

func NewFrame(dir *components.ClientEntityList) *Frame {
	if dir == nil {
		dir = components.NewClientEntityList()
	}
	return &Frame{Directory: dir}
}

// Step runs one frame of the combat pipeline in order.
func (f *Frame) Step(w donburi.World) {
	UpdateProjectileSpawns(w, f)
	UpdateProjectiles(w, f)
	UpdateKeyframes(w, f)
	UpdatePendingDamage(w, f)
	UpdateDamageDigits(w, f)
}

func (f *Frame) EndTick() {
	f.Keyframes.Clear()
	f.SpawnRequests.Clear()
	f.Arrivals.Clear()
	f.Released.Clear()
}
