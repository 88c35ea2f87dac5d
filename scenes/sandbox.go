package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/hitsync/assets"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/sandbox"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs the combat pipeline offline against a scripted feed.
type SandboxScene struct {
	world  *combatWorld
	feed   *sandbox.LocalFeed
	script *sandbox.Script
	store  config.ItemStore
}

// NewSandboxScene loads zone and queues its spawns. store may be nil, which
// disables calibration hotkeys.
func NewSandboxScene(zone string, atlases *assets.DigitAtlases, store config.ItemStore) (*SandboxScene, error) {
	zoneData, err := assets.LoadZone(zone)
	if err != nil {
		return nil, err
	}

	s := &SandboxScene{
		feed:   &sandbox.LocalFeed{},
		script: sandbox.NewScript(sandbox.DefaultCommands(zoneData.Spawns), 1.25, 1),
		store:  store,
	}
	for _, m := range sandbox.SpawnMessages(zoneData.Spawns, "hero") {
		s.feed.PushSpawn(m)
	}
	s.world = newCombatWorld(zoneData, s.feed, s.runScript, atlases)
	return s, nil
}

func (s *SandboxScene) runScript(*ecs.ECS) {
	s.script.Update(s.world.frame.Delta, s.feed)
}

func (s *SandboxScene) Update() {
	s.handleCalibrationKeys()
	s.world.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.world.ecs.Draw(screen)
}

func (s *SandboxScene) handleCalibrationKeys() {
	if s.store == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := config.SaveCalibration(s.store); err != nil {
			log.Printf("[sandbox] %v", err)
			return
		}
		log.Println("[sandbox] calibration saved")
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		loaded, err := config.LoadCalibration(s.store)
		if err != nil {
			log.Printf("[sandbox] %v", err)
			return
		}
		log.Printf("[sandbox] calibration reloaded: %v", loaded)
	}
}
