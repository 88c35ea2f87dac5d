package systems

import (
	"log"

	"github.com/automoto/hitsync/components"
	cfg "github.com/automoto/hitsync/config"
	"github.com/automoto/hitsync/tags"
	"github.com/yohamta/donburi"
)

// EnqueueDamage appends d to target's pending list. It reports false when the
// target no longer exists or cannot take damage.
func EnqueueDamage(target *donburi.Entry, d components.PendingDamage) bool {
	if target == nil || !target.Valid() {
		return false
	}
	if !target.HasComponent(components.PendingDamageList) {
		return false
	}

	list := components.PendingDamageList.Get(target)
	list.Push(d)

	limit := cfg.PendingDamage.WarnListLength
	if limit > 0 && list.Len() > limit && !list.Warned {
		list.Warned = true
		id := components.ClientEntityID(0)
		if target.HasComponent(components.ClientEntity) {
			id = components.ClientEntity.Get(target).ID
		}
		log.Printf("[combat] pending damage list for entity %d grew to %d entries", id, list.Len())
	}
	return true
}

type pendingRelease struct {
	target  *donburi.Entry
	entries []components.PendingDamage
	reasons []ReleaseReason
}

// UpdatePendingDamage ages every pending entry and applies the ones that are
// due: immediate entries, entries matched by a hit keyframe this frame, and
// entries older than the fallback timeout. A target's entries apply in the
// order they were queued.
func UpdatePendingDamage(w donburi.World, f *Frame) {
	timeout := cfg.PendingDamage.FallbackTimeout
	var due []pendingRelease

	components.PendingDamageList.Each(w, func(e *donburi.Entry) {
		list := components.PendingDamageList.Get(e)
		if list.Len() == 0 {
			return
		}

		var release pendingRelease
		kept := list.Entries[:0]
		for _, entry := range list.Entries {
			// Age includes the frame the entry was queued in.
			entry.Age += f.Delta

			reason, ok := releaseReason(entry, timeout)
			if !ok {
				kept = append(kept, entry)
				continue
			}
			release.entries = append(release.entries, entry)
			release.reasons = append(release.reasons, reason)
		}
		clear(list.Entries[len(kept):])
		list.Entries = kept

		if list.Warned && list.Len() <= cfg.PendingDamage.WarnListLength {
			list.Warned = false
		}

		if len(release.entries) > 0 {
			release.target = e
			due = append(due, release)
		}
	})

	for _, r := range due {
		for i, entry := range r.entries {
			applyDamage(w, f, r.target, entry, r.reasons[i])
		}
	}
}

func releaseReason(entry components.PendingDamage, timeout float64) (ReleaseReason, bool) {
	switch {
	case entry.IsImmediate:
		return ReleaseImmediate, true
	case entry.Matched:
		return ReleaseKeyframe, true
	case entry.Age > timeout:
		return ReleaseFallback, true
	}
	return 0, false
}

// applyDamage mutates the target's health, marks kills and leaves a digit
// record for the batcher.
func applyDamage(w donburi.World, f *Frame, target *donburi.Entry, entry components.PendingDamage, reason ReleaseReason) {
	if !target.Valid() {
		return
	}

	if target.HasComponent(components.Health) {
		components.Health.Get(target).ApplyDamage(entry.Damage.Amount)
	}

	var id components.ClientEntityID
	if target.HasComponent(components.ClientEntity) {
		id = components.ClientEntity.Get(target).ID
	}

	killed := false
	if entry.IsKill && !target.HasComponent(tags.Dead) {
		target.AddComponent(tags.Dead)
		donburi.Add(target, components.Death, &components.DeathData{Timer: cfg.Death.RemoveAfter})
		killed = true
		if e, ok := f.Directory.Get(id); ok && e == target.Entity() {
			f.Directory.Remove(id)
		}
	}

	height := cfg.DamageDigits.DefaultModelHeight
	if target.HasComponent(components.ModelHeight) {
		height = components.ModelHeight.Get(target).Height
	}
	record := components.DamageDigitRecord{
		Damage:      entry.Damage,
		ModelHeight: height,
		OnPlayer:    f.Directory.IsPlayer(id),
	}
	if target.HasComponent(components.DamageDigits) {
		digits := components.DamageDigits.Get(target)
		digits.Records = append(digits.Records, record)
	} else {
		donburi.Add(target, components.DamageDigits, &components.DamageDigitsData{
			Records: []components.DamageDigitRecord{record},
		})
	}

	f.Released.Push(ReleasedDamage{
		Target:   target.Entity(),
		TargetID: id,
		Attacker: entry.Attacker,
		Damage:   entry.Damage,
		Killed:   killed,
		Reason:   reason,
	})
}
