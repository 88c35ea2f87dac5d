package systems

import (
	"testing"

	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/systems/factory"
	"github.com/yohamta/donburi"
)

func newTestWorld(t *testing.T) (donburi.World, *Frame) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.Zone.Width, cfg.Zone.Height, cfg.Zone.CellWidth, cfg.Zone.CellHeight)
	return w, NewFrame(components.NewClientEntityList())
}

func spawnCharacter(w donburi.World, f *Frame, id components.ClientEntityID, pos gamemath.Vec3, hp int) *donburi.Entry {
	return factory.CreateCharacter(w, f.Directory, factory.CharacterSpec{
		ID:       id,
		Position: pos,
		HP:       hp,
		MaxHP:    hp,
	})
}

func pendingLen(e *donburi.Entry) int {
	return components.PendingDamageList.Get(e).Len()
}

func hp(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func tick(w donburi.World, f *Frame, dt float64, steps ...func(donburi.World, *Frame)) {
	f.Delta = dt
	for _, step := range steps {
		step(w, f)
	}
}

func releasedFor(f *Frame, target donburi.Entity) []ReleasedDamage {
	var out []ReleasedDamage
	for _, r := range f.Released.Items() {
		if r.Target == target {
			out = append(out, r)
		}
	}
	return out
}
