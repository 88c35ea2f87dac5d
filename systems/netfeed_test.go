package systems

import (
	"testing"

	"github.com/automoto/hitsync/components"
	"github.com/automoto/hitsync/shared/messages"
)

type fakeFeed struct {
	spawns      []messages.SpawnCharacter
	despawns    []messages.DespawnEntity
	damage      []messages.DamageEntity
	projectiles []messages.FireProjectile
}

func (f *fakeFeed) DrainSpawns() []messages.SpawnCharacter {
	out := f.spawns
	f.spawns = nil
	return out
}

func (f *fakeFeed) DrainDespawns() []messages.DespawnEntity {
	out := f.despawns
	f.despawns = nil
	return out
}

func (f *fakeFeed) DrainDamage() []messages.DamageEntity {
	out := f.damage
	f.damage = nil
	return out
}

func (f *fakeFeed) DrainProjectiles() []messages.FireProjectile {
	out := f.projectiles
	f.projectiles = nil
	return out
}

func TestNetFeedAppliesServerMessages(t *testing.T) {
	w, f := newTestWorld(t)
	feed := &fakeFeed{
		spawns: []messages.SpawnCharacter{
			{NetworkID: 1, HP: 100, MaxHP: 100, IsLocal: true},
			{NetworkID: 2, X: 5, HP: 80, MaxHP: 100, ModelHeight: 2.5},
		},
		damage: []messages.DamageEntity{
			{AttackerID: 1, TargetID: 2, Damage: 15, SkillID: 3, SkillValue: 15},
			{AttackerID: 1, TargetID: 42, Damage: 99},
		},
		projectiles: []messages.FireProjectile{
			{SourceID: 1, TargetID: 2, MoveType: messages.MoveParabolic, ApplyDamage: true, Damage: 4},
		},
	}

	UpdateNetFeed(w, f, feed)

	if f.Directory.Len() != 2 {
		t.Fatalf("Expected 2 characters, got %d", f.Directory.Len())
	}
	if !f.Directory.IsPlayer(1) {
		t.Error("Expected the local character to be the player")
	}
	target, ok := f.Directory.Resolve(w, 2)
	if !ok {
		t.Fatal("Expected character 2 to resolve")
	}
	if h := components.ModelHeight.Get(target).Height; h != 2.5 {
		t.Errorf("Expected model height 2.5, got %v", h)
	}

	entries := components.PendingDamageList.Get(target).Entries
	if len(entries) != 1 {
		t.Fatalf("Expected 1 pending entry, got %d", len(entries))
	}
	if entries[0].IsImmediate || entries[0].FromSkill == nil || entries[0].FromSkill.Skill != 3 {
		t.Errorf("Unexpected entry %+v", entries[0])
	}

	if f.SpawnRequests.Len() != 1 {
		t.Fatalf("Expected 1 spawn request, got %d", f.SpawnRequests.Len())
	}
	req := f.SpawnRequests.Items()[0]
	if req.MoveType != components.MoveParabolic || !req.HasTarget || req.Damage.Amount != 4 {
		t.Errorf("Unexpected spawn request %+v", req)
	}
}

func TestNetFeedDespawnAndRespawn(t *testing.T) {
	w, f := newTestWorld(t)
	feed := &fakeFeed{spawns: []messages.SpawnCharacter{{NetworkID: 7, HP: 10}}}
	UpdateNetFeed(w, f, feed)
	first, _ := f.Directory.Resolve(w, 7)

	feed.spawns = []messages.SpawnCharacter{{NetworkID: 7, HP: 20}}
	UpdateNetFeed(w, f, feed)
	if w.Valid(first.Entity()) {
		t.Error("Expected a respawn to replace the old entity")
	}
	second, ok := f.Directory.Resolve(w, 7)
	if !ok || components.Health.Get(second).Current != 20 {
		t.Fatal("Expected the new entity to be registered")
	}

	feed.despawns = []messages.DespawnEntity{{NetworkID: 7}}
	UpdateNetFeed(w, f, feed)
	if w.Valid(second.Entity()) || f.Directory.Len() != 0 {
		t.Error("Expected despawn to remove the entity and its mapping")
	}
}
