package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/hitsync/assets"
	"github.com/automoto/hitsync/network"
	"github.com/hajimehoshi/ebiten/v2"
)

// NetworkedScene feeds the combat pipeline from a zone server.
type NetworkedScene struct {
	world        *combatWorld
	sceneChanger SceneChanger
	netClient    *network.Client
	atlases      *assets.DigitAtlases
	fallback     func() interface{}
	once         sync.Once
}

// NewNetworkedScene waits for client to join a zone. When the connection ends
// the scene changes to whatever fallback returns.
func NewNetworkedScene(sc SceneChanger, client *network.Client, atlases *assets.DigitAtlases, fallback func() interface{}) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		atlases:      atlases,
		fallback:     fallback,
	}
}

func (ns *NetworkedScene) Update() {
	switch state := ns.netClient.State(); state {
	case network.StateDisconnected, network.StateError:
		log.Printf("[networked] %s: %v", state, ns.netClient.LastError())
		ns.leave()
		return
	case network.StateJoinedZone:
		ns.once.Do(ns.configure)
	default:
		return
	}

	if ns.world != nil {
		ns.world.ecs.Update()
	}
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.world == nil {
		return
	}

	ns.world.ecs.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	zoneData, err := assets.LoadZone(ns.netClient.Zone())
	if err != nil {
		log.Printf("[networked] failed to load zone %q: %v", ns.netClient.Zone(), err)
		ns.leave()
		return
	}
	ns.world = newCombatWorld(zoneData, ns.netClient, nil, ns.atlases)
}

func (ns *NetworkedScene) leave() {
	ns.netClient.Disconnect()
	ns.sceneChanger.ChangeScene(ns.fallback())
}
