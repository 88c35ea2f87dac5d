// Package sandbox plays the server's part for the offline scene: it issues
// spawns, damage and projectile launches on a fixed script.
package sandbox

import "github.com/automoto/hitsync/shared/messages"

// LocalFeed buffers scripted messages until the frame drains them.
type LocalFeed struct {
	spawns      []messages.SpawnCharacter
	despawns    []messages.DespawnEntity
	damage      []messages.DamageEntity
	projectiles []messages.FireProjectile
}

func (f *LocalFeed) PushSpawn(m messages.SpawnCharacter)  { f.spawns = append(f.spawns, m) }
func (f *LocalFeed) PushDespawn(m messages.DespawnEntity) { f.despawns = append(f.despawns, m) }
func (f *LocalFeed) PushDamage(m messages.DamageEntity)   { f.damage = append(f.damage, m) }
func (f *LocalFeed) PushProjectile(m messages.FireProjectile) {
	f.projectiles = append(f.projectiles, m)
}

func (f *LocalFeed) DrainSpawns() []messages.SpawnCharacter {
	out := f.spawns
	f.spawns = nil
	return out
}

func (f *LocalFeed) DrainDespawns() []messages.DespawnEntity {
	out := f.despawns
	f.despawns = nil
	return out
}

func (f *LocalFeed) DrainDamage() []messages.DamageEntity {
	out := f.damage
	f.damage = nil
	return out
}

func (f *LocalFeed) DrainProjectiles() []messages.FireProjectile {
	out := f.projectiles
	f.projectiles = nil
	return out
}
