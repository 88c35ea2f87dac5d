package systems

import (
	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/tags"
	"github.com/yohamta/donburi"
)

// UpdateDeaths counts down killed characters and removes them once their
// death timer runs out.
func UpdateDeaths(w donburi.World, f *Frame) {
	var expired []donburi.Entity
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= f.Delta
		if death.Timer <= 0 {
			expired = append(expired, e.Entity())
		}
	})

	for _, e := range expired {
		removeCharacter(w, f, w.Entry(e))
	}
}

// removeCharacter drops a character from the world and, if the directory
// still points at it, from the directory.
func removeCharacter(w donburi.World, f *Frame, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.ClientEntity) {
		id := components.ClientEntity.Get(e).ID
		if known, ok := f.Directory.Get(id); ok && known == e.Entity() {
			f.Directory.Remove(id)
		}
	}
	w.Remove(e.Entity())
}

// findCharacter resolves id through the directory, then falls back to killed
// characters, which have already left it.
func findCharacter(w donburi.World, f *Frame, id components.ClientEntityID) (*donburi.Entry, bool) {
	if e, ok := f.Directory.Resolve(w, id); ok {
		return e, true
	}
	var found *donburi.Entry
	tags.Dead.Each(w, func(e *donburi.Entry) {
		if found == nil && e.HasComponent(components.ClientEntity) && components.ClientEntity.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
