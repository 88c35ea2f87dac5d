package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/hitsync/assets"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/fonts"
	"github.com/automoto/hitsync/network"
	"github.com/automoto/hitsync/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	appName = "hitsync"
	version = "0.1.0"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", "", "zone server host:port/path, e.g. localhost:7373/ws; runs the offline sandbox when empty")
	zone := flag.String("zone", "arena", "zone to join or load")
	name := flag.String("name", "player", "player name sent on join")
	tuning := flag.String("tuning", "", "optional YAML file overlaid onto the default tunables")
	flag.Parse()

	// Saved calibration first, so an explicit tuning file wins
	var store config.ItemStore
	if s, err := config.OpenCalibrationStore(appName); err != nil {
		log.Printf("Warning: Could not open calibration store: %v", err)
	} else {
		store = s
		if _, err := config.LoadCalibration(store); err != nil {
			log.Printf("Warning: Could not load calibration: %v", err)
		}
	}
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(float64(config.Render.GlyphCellSize) * 0.75); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	atlases, err := assets.LoadDigitAtlases()
	if err != nil {
		log.Fatalf("Failed to build digit atlases: %v", err)
	}

	g := &Game{}
	newSandbox := func() interface{} {
		s, err := scenes.NewSandboxScene(*zone, atlases, store)
		if err != nil {
			log.Fatalf("Failed to start sandbox: %v", err)
		}
		return s
	}

	if *server != "" {
		client := network.NewClient()
		client.Connect(*server, version, *name, *zone)
		g.scene = scenes.NewNetworkedScene(g, client, atlases, newSandbox)
	} else {
		g.ChangeScene(newSandbox())
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(appName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
