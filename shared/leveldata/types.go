// Package leveldata parses zone maps into plain data. It has no dependencies
// on ebitengine, donburi, or resolv.
package leveldata

// ZoneData holds the parts of a TMX zone map the combat simulation needs.
// Coordinates are world units on the ground plane (one tile = one unit).
type ZoneData struct {
	Width        float64
	Depth        float64
	Obstructions []Rect
	Spawns       []SpawnPoint
}

// Rect is an axis-aligned box on the ground plane.
type Rect struct {
	X, Z float64
	W, D float64
}

// SpawnPoint places a scripted character.
type SpawnPoint struct {
	Name     string
	X, Z     float64
	ClientID uint
	HP       int
}
