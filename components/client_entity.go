package components

import "github.com/yohamta/donburi"

// ClientEntityID is the stable identifier the server uses for an entity.
type ClientEntityID uint

type ClientEntityData struct {
	ID ClientEntityID
}

var ClientEntity = donburi.NewComponentType[ClientEntityData]()

// ClientEntityList maps server identifiers to live entity handles. Handles are
// generational, so a handle of a removed entity never resolves to a newer one.
type ClientEntityList struct {
	entities  map[ClientEntityID]donburi.Entity
	player    ClientEntityID
	hasPlayer bool
}

func NewClientEntityList() *ClientEntityList {
	return &ClientEntityList{
		entities: make(map[ClientEntityID]donburi.Entity),
	}
}

func (l *ClientEntityList) Insert(id ClientEntityID, e donburi.Entity) {
	l.entities[id] = e
}

func (l *ClientEntityList) Remove(id ClientEntityID) {
	delete(l.entities, id)
	if l.hasPlayer && l.player == id {
		l.hasPlayer = false
	}
}

func (l *ClientEntityList) Get(id ClientEntityID) (donburi.Entity, bool) {
	e, ok := l.entities[id]
	return e, ok
}

// Resolve returns the live entry for id, or false when the id is unknown or
// its entity no longer exists.
func (l *ClientEntityList) Resolve(w donburi.World, id ClientEntityID) (*donburi.Entry, bool) {
	e, ok := l.entities[id]
	if !ok || !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

func (l *ClientEntityList) SetPlayer(id ClientEntityID) {
	l.player = id
	l.hasPlayer = true
}

func (l *ClientEntityList) Player() (ClientEntityID, bool) {
	return l.player, l.hasPlayer
}

func (l *ClientEntityList) IsPlayer(id ClientEntityID) bool {
	return l.hasPlayer && l.player == id
}

func (l *ClientEntityList) Len() int {
	return len(l.entities)
}
