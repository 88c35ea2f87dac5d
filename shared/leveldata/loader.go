package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	obstructionGroup = "Obstruction"
	spawnGroup       = "Spawn"
)

// LoadZone parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadZone(fsys fs.FS, tmxPath string) (*ZoneData, error) {
	zoneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if zoneMap.TileWidth <= 0 || zoneMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	tileW := float64(zoneMap.TileWidth)
	tileH := float64(zoneMap.TileHeight)
	data := &ZoneData{
		Width: float64(zoneMap.Width),
		Depth: float64(zoneMap.Height),
	}

	for _, og := range zoneMap.ObjectGroups {
		switch og.Name {
		case obstructionGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Obstructions = append(data.Obstructions, Rect{
					X: o.X / tileW,
					Z: o.Y / tileH,
					W: o.Width / tileW,
					D: o.Height / tileH,
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					Name:     o.Name,
					X:        o.X / tileW,
					Z:        o.Y / tileH,
					ClientID: uint(o.Properties.GetInt("clientId")),
					HP:       o.Properties.GetInt("hp"),
				})
			}
		}
	}

	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].ClientID < data.Spawns[j].ClientID
	})

	return data, nil
}
