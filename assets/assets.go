package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/fonts"
	"github.com/automoto/hitsync/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:zones
	zoneFS embed.FS
)

// LoadZone loads an embedded zone map by name, e.g. "arena".
func LoadZone(name string) (*leveldata.ZoneData, error) {
	return leveldata.LoadZone(zoneFS, "zones/"+name+".tmx")
}

var (
	digitGlyphs = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	missGlyphs  = []string{"M", "I", "S", "S"}
)

// DigitAtlases holds one glyph strip texture per atlas id.
type DigitAtlases struct {
	images map[components.AtlasID]*ebiten.Image
}

// LoadDigitAtlases rasterises the digit and MISS strips. fonts must already
// be loaded.
func LoadDigitAtlases() (*DigitAtlases, error) {
	cell := config.Render.GlyphCellSize
	if cell <= 0 {
		return nil, fmt.Errorf("glyph cell size must be positive, got %d", cell)
	}
	face := fonts.Digits.Get()

	strips := []struct {
		id     components.AtlasID
		glyphs []string
		color  color.Color
	}{
		{components.AtlasDamage, digitGlyphs, config.White},
		{components.AtlasPlayer, digitGlyphs, config.Red},
		{components.AtlasMiss, missGlyphs, config.Yellow},
	}

	a := &DigitAtlases{images: make(map[components.AtlasID]*ebiten.Image, len(strips))}
	for _, s := range strips {
		a.images[s.id] = ebiten.NewImageFromImage(fonts.RenderStrip(face, s.glyphs, cell, s.color))
	}
	return a, nil
}

func (a *DigitAtlases) Image(id components.AtlasID) *ebiten.Image {
	return a.images[id]
}
