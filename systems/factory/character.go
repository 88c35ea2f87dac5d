package factory

import (
	"github.com/automoto/hitsync/archetypes"
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CharacterSpec struct {
	ID          components.ClientEntityID
	Position    gamemath.Vec3
	HP          int
	MaxHP       int
	ModelHeight float64 // 0 uses the configured default
	IsPlayer    bool
}

// CreateCharacter spawns a damageable character and registers it in dir.
// An existing registration for the same id is replaced.
func CreateCharacter(w donburi.World, dir *components.ClientEntityList, spec CharacterSpec) *donburi.Entry {
	c := archetypes.Character.Spawn(w)

	components.ClientEntity.SetValue(c, components.ClientEntityData{ID: spec.ID})
	components.Transform.SetValue(c, components.TransformData{Position: spec.Position})

	maxHP := spec.MaxHP
	if maxHP < spec.HP {
		maxHP = spec.HP
	}
	components.Health.SetValue(c, components.HealthData{Current: spec.HP, Max: maxHP})

	height := spec.ModelHeight
	if height <= 0 {
		height = config.DamageDigits.DefaultModelHeight
	}
	components.ModelHeight.SetValue(c, components.ModelHeightData{Height: height})

	components.PendingDamageList.Set(c, components.NewPendingDamageList(config.PendingDamage.ListCapacity))

	dir.Insert(spec.ID, c.Entity())
	if spec.IsPlayer {
		dir.SetPlayer(spec.ID)
	}

	return c
}
