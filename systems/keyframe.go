package systems

import (
	"github.com/automoto/hitsync/components"
	"github.com/yohamta/donburi"
)

// UpdateKeyframes marks every pending entry whose attacker reached a hit
// frame this tick. Matching is by attacker alone: one hit keyframe releases
// all of that attacker's waiting entries, whatever skill they came from.
// Attackers that no longer resolve are never matched and wait for the
// fallback timeout instead.
func UpdateKeyframes(w donburi.World, f *Frame) {
	hits := make(map[donburi.Entity]struct{})
	for _, k := range f.Keyframes.Items() {
		if k.Flags.IsHit() {
			hits[k.Entity] = struct{}{}
		}
	}
	if len(hits) == 0 {
		return
	}

	attackers := make(map[components.ClientEntityID]donburi.Entity)
	resolve := func(id components.ClientEntityID) (e donburi.Entity, ok bool) {
		if e, ok = attackers[id]; ok {
			return e, true
		}
		entry, ok := f.Directory.Resolve(w, id)
		if !ok {
			return e, false
		}
		attackers[id] = entry.Entity()
		return entry.Entity(), true
	}

	components.PendingDamageList.Each(w, func(e *donburi.Entry) {
		list := components.PendingDamageList.Get(e)
		for i := range list.Entries {
			entry := &list.Entries[i]
			if entry.IsImmediate || entry.Matched {
				continue
			}
			attacker, ok := resolve(entry.Attacker)
			if !ok {
				continue
			}
			if _, ok := hits[attacker]; ok {
				entry.Matched = true
			}
		}
	})
}
