package archetypes

import (
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.ClientEntity,
		components.Transform,
		components.Health,
		components.ModelHeight,
		components.PendingDamageList,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
	)
	Obstruction = newArchetype(
		tags.Obstruction,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	DigitPopup = newArchetype(
		tags.DigitPopup,
		components.DigitPopup,
	)
	DigitBatch = newArchetype(
		components.DigitBatch,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
