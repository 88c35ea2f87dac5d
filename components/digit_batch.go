package components

import (
	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DigitBatchData is the per-frame glyph buffer handed to the renderer. All
// slices have the same length; index i describes one glyph.
type DigitBatchData struct {
	Positions [][4]float32 // anchor x, y, z and horizontal offset
	Sizes     [][2]float32
	UVs       [][4]float32 // u0, v0, u1, v1 within the atlas
	Atlases   []AtlasID
}

func NewDigitBatch(capacity int) *DigitBatchData {
	return &DigitBatchData{
		Positions: make([][4]float32, 0, capacity),
		Sizes:     make([][2]float32, 0, capacity),
		UVs:       make([][4]float32, 0, capacity),
		Atlases:   make([]AtlasID, 0, capacity),
	}
}

// Clear empties the buffer and keeps its capacity.
func (b *DigitBatchData) Clear() {
	b.Positions = b.Positions[:0]
	b.Sizes = b.Sizes[:0]
	b.UVs = b.UVs[:0]
	b.Atlases = b.Atlases[:0]
}

func (b *DigitBatchData) Push(anchor gamemath.Vec3, offset, size float64, uv [4]float32, atlas AtlasID) {
	b.Positions = append(b.Positions, [4]float32{float32(anchor.X), float32(anchor.Y), float32(anchor.Z), float32(offset)})
	b.Sizes = append(b.Sizes, [2]float32{float32(size), float32(size)})
	b.UVs = append(b.UVs, uv)
	b.Atlases = append(b.Atlases, atlas)
}

func (b *DigitBatchData) Len() int {
	return len(b.Positions)
}

var DigitBatch = donburi.NewComponentType[DigitBatchData]()
