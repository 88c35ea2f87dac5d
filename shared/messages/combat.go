package messages

// DamageEntity is the server's authoritative outcome of an attack.
type DamageEntity struct {
	AttackerID   uint // NetworkId of attacker
	TargetID     uint // NetworkId of target
	Damage       int
	IsCritical   bool
	ApplyHitStun bool
	IsKill       bool
	SkillID      uint32 // 0 for a basic attack
	SkillValue   int
	Immediate    bool // apply without waiting for the attacker's animation
}

// MoveType values for FireProjectile
const (
	MoveLinear    uint8 = 0
	MoveParabolic uint8 = 1
	MoveImmediate uint8 = 2
)

// FireProjectile is broadcast when a ranged attack is launched. When
// ApplyDamage is set, the damage lands on arrival instead of via DamageEntity.
type FireProjectile struct {
	SourceID    uint
	TargetID    uint // 0 for a position target
	X, Y, Z     float64
	MoveType    uint8
	Speed       float64
	EffectID    uint32
	SkillID     uint32
	ApplyDamage bool
	Damage      int
	IsCritical  bool
	IsKill      bool
}

// SpawnCharacter is broadcast when a character enters view
type SpawnCharacter struct {
	NetworkID   uint
	X, Y, Z     float64
	HP          int
	MaxHP       int
	ModelHeight float64
	IsLocal     bool // the receiving client's own character
}

// DespawnEntity is broadcast when an entity leaves view
type DespawnEntity struct {
	NetworkID uint
}
