package scenes

import (
	"github.com/automoto/hitsync/assets"
	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/render"
	"github.com/automoto/hitsync/shared/leveldata"
	"github.com/automoto/hitsync/systems"
	"github.com/automoto/hitsync/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// combatWorld is the ECS plus the frame context shared by both scenes.
type combatWorld struct {
	ecs   *ecs.ECS
	frame *systems.Frame
}

// newCombatWorld builds the world for a zone and registers the combat steps.
// feed supplies server messages; before runs ahead of the feed each frame.
func newCombatWorld(zoneData *leveldata.ZoneData, feed systems.Feed, before ecs.System, atlases *assets.DigitAtlases) *combatWorld {
	cw := &combatWorld{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		frame: systems.NewFrame(components.NewClientEntityList()),
	}
	w := cw.ecs.World

	factory.CreateSpace(w, cfg.Zone.Width, cfg.Zone.Height, cfg.Zone.CellWidth, cfg.Zone.CellHeight)
	factory.CreateDigitBatch(w)

	for _, r := range zoneData.Obstructions {
		factory.CreateObstruction(w, r.X, r.Z, r.W, r.D)
	}
	factory.CreateCamera(w, zoneData.Width, zoneData.Depth)

	cw.ecs.AddSystem(func(*ecs.ECS) {
		cw.frame.Delta = 1 / float64(ebiten.TPS())
	})
	if before != nil {
		cw.ecs.AddSystem(before)
	}
	cw.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateNetFeed(e.World, cw.frame, feed)
	})
	cw.ecs.AddSystem(cw.step(systems.UpdateAttackAnimations))
	cw.ecs.AddSystem(cw.step(systems.UpdateProjectileSpawns))
	cw.ecs.AddSystem(cw.step(systems.UpdateProjectiles))
	cw.ecs.AddSystem(cw.step(systems.UpdateKeyframes))
	cw.ecs.AddSystem(cw.step(systems.UpdatePendingDamage))
	cw.ecs.AddSystem(cw.step(systems.UpdateDamageDigits))
	cw.ecs.AddSystem(cw.step(systems.UpdateDeaths))
	cw.ecs.AddSystem(cw.step(systems.UpdateCamera))
	cw.ecs.AddSystem(func(*ecs.ECS) {
		cw.frame.EndTick()
	})

	r := &render.Renderer{Atlases: atlases}
	cw.ecs.AddRenderer(layerWorld, r.DrawObstructions)
	cw.ecs.AddRenderer(layerWorld, r.DrawCharacters)
	cw.ecs.AddRenderer(layerWorld, r.DrawProjectiles)
	cw.ecs.AddRenderer(layerOverlay, r.DrawDigits)
	cw.ecs.AddRenderer(layerOverlay, r.DrawStats)

	return cw
}

func (cw *combatWorld) step(fn func(donburi.World, *systems.Frame)) ecs.System {
	return func(e *ecs.ECS) {
		fn(e.World, cw.frame)
	}
}
