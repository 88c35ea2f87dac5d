package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/hitsync/assets"
	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/fonts"
	"github.com/automoto/hitsync/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	obstructionColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	deadColor        = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	healthBackColor  = color.RGBA{R: 60, G: 0, B: 0, A: 255}
)

const characterWidth = 0.6

// Renderer draws the zone with a fixed oblique projection: X runs across the
// screen, Z recedes upward at half scale and Y lifts straight up.
type Renderer struct {
	Atlases *assets.DigitAtlases
}

type view struct {
	camera math.Vec2
	ppu    float64
	cx, cy float64
}

func newView(w donburi.World, screen *ebiten.Image) view {
	v := view{
		ppu: cfg.Render.PixelsPerUnit,
		cx:  float64(screen.Bounds().Dx()) / 2,
		cy:  float64(screen.Bounds().Dy()) / 2,
	}
	if e, ok := components.Camera.First(w); ok {
		v.camera = components.Camera.Get(e).View()
	}
	return v
}

func (v view) project(x, y, z float64) (float64, float64) {
	sx := (x-v.camera.X)*v.ppu + v.cx
	sy := (z-v.camera.Y)*v.ppu*0.5 - y*v.ppu + v.cy
	return sx, sy
}

// DrawObstructions draws the footprint of every solid box.
func (r *Renderer) DrawObstructions(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen)
	tags.Obstruction.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		x0, y0 := v.project(o.X, 0, o.Y)
		x1, y1 := v.project(o.X+o.W, 0, o.Y+o.H)
		vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), obstructionColor, false)
	})
}

// DrawCharacters draws each character as a column with a health bar on top.
func (r *Renderer) DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen)
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		height := components.ModelHeight.Get(entry).Height
		hp := components.Health.Get(entry)

		x, feet := v.project(pos.X-characterWidth/2, pos.Y, pos.Z)
		_, head := v.project(pos.X, pos.Y+height, pos.Z)
		w := characterWidth * v.ppu

		c := color.Color(cfg.Render.CharacterTint)
		if entry.HasComponent(tags.Dead) {
			c = deadColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(head), float32(w), float32(feet-head), c, false)

		if hp.Max > 0 {
			ratio := float64(hp.Current) / float64(hp.Max)
			vector.DrawFilledRect(screen, float32(x), float32(head-6), float32(w), 3, healthBackColor, false)
			vector.DrawFilledRect(screen, float32(x), float32(head-6), float32(w*ratio), 3, cfg.Red, false)
		}
	})
}

// DrawProjectiles draws each projectile as a small square at its position.
func (r *Renderer) DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen)
	size := cfg.Render.ProjectileSize
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		x, y := v.project(pos.X, pos.Y, pos.Z)
		vector.DrawFilledRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), cfg.Render.ProjectileTint, false)
	})
}

// DrawDigits draws this frame's digit batch. The batch is only read here.
func (r *Renderer) DrawDigits(e *ecs.ECS, screen *ebiten.Image) {
	if r.Atlases == nil {
		return
	}
	batchEntry, ok := components.DigitBatch.First(e.World)
	if !ok {
		return
	}
	batch := components.DigitBatch.Get(batchEntry)
	v := newView(e.World, screen)

	for i := range batch.Positions {
		atlas := r.Atlases.Image(batch.Atlases[i])
		if atlas == nil {
			continue
		}
		src := glyphRect(atlas.Bounds(), batch.UVs[i])
		if src.Empty() {
			continue
		}

		p := batch.Positions[i]
		x, y := v.project(float64(p[0]+p[3]), float64(p[1]), float64(p[2]))
		sizePx := float64(batch.Sizes[i][0]) * v.ppu
		scale := sizePx / float64(src.Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(x-float64(src.Dx())*scale/2, y-sizePx/2)
		screen.DrawImage(atlas.SubImage(src).(*ebiten.Image), drawOp)
	}
}

// DrawStats prints queue sizes in the corner.
func (r *Renderer) DrawStats(e *ecs.ECS, screen *ebiten.Image) {
	pending, popups := 0, 0
	components.PendingDamageList.Each(e.World, func(entry *donburi.Entry) {
		pending += components.PendingDamageList.Get(entry).Len()
	})
	components.DigitPopup.Each(e.World, func(*donburi.Entry) {
		popups++
	})
	line := fmt.Sprintf("pending %d  popups %d  tps %.0f", pending, popups, ebiten.ActualTPS())
	text.Draw(screen, line, fonts.Label.Get(), 8, 16, cfg.White)
}

func glyphRect(bounds image.Rectangle, uv [4]float32) image.Rectangle {
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	return image.Rect(
		bounds.Min.X+int(uv[0]*w+0.5),
		bounds.Min.Y+int(uv[1]*h+0.5),
		bounds.Min.X+int(uv[2]*w+0.5),
		bounds.Min.Y+int(uv[3]*h+0.5),
	)
}
