package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/hitsync/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedZone
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedZone:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// backlogWarnSize is the inbox length at which a backlog is logged. Inboxes
// grow past it; server messages are never dropped.
const backlogWarnSize = 256

// Client manages a WebSocket connection to the zone server and buffers combat
// messages until the frame drains them. Connection fields are protected by mu
// and each inbox has its own lock (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      uint
	reconnectToken string
	serverName     string
	zone           string
	tickRate       int
	conn           *websocket.Conn

	damage      inbox[messages.DamageEntity]
	projectiles inbox[messages.FireProjectile]
	spawns      inbox[messages.SpawnCharacter]
	despawns    inbox[messages.DespawnEntity]
}

func NewClient() *Client {
	c := &Client{state: StateDisconnected}
	c.damage.kind = "damage"
	c.projectiles.kind = "projectile"
	c.spawns.kind = "spawn"
	c.despawns.kind = "despawn"
	return c
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName, zone string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
			Zone:       zone,
		}); err != nil {
			log.Printf("[client] failed to send join request: %v", err)
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: networkID=%d server=%s zone=%s tickRate=%d",
			msg.NetworkID, msg.ServerName, msg.Zone, msg.TickRate)
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.reconnectToken = msg.ReconnectToken
		c.serverName = msg.ServerName
		c.zone = msg.Zone
		c.tickRate = msg.TickRate
		c.state = StateJoinedZone
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.DamageEntity) {
		c.damage.push(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.FireProjectile) {
		c.projectiles.push(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.SpawnCharacter) {
		c.spawns.push(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.DespawnEntity) {
		c.despawns.push(msg)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() uint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) Zone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zone
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainDamage returns all pending damage messages, non-blocking.
func (c *Client) DrainDamage() []messages.DamageEntity {
	return c.damage.drain()
}

// DrainProjectiles returns all pending projectile launches, non-blocking.
func (c *Client) DrainProjectiles() []messages.FireProjectile {
	return c.projectiles.drain()
}

// DrainSpawns returns all pending character spawns, non-blocking.
func (c *Client) DrainSpawns() []messages.SpawnCharacter {
	return c.spawns.drain()
}

// DrainDespawns returns all pending despawns, non-blocking.
func (c *Client) DrainDespawns() []messages.DespawnEntity {
	return c.despawns.drain()
}

// inbox is an unbounded FIFO filled by router goroutines and emptied by the
// frame.
type inbox[T any] struct {
	mu     sync.Mutex
	items  []T
	kind   string
	warned bool
}

func (b *inbox[T]) push(v T) {
	b.mu.Lock()
	b.items = append(b.items, v)
	n := len(b.items)
	warn := n > backlogWarnSize && !b.warned
	if warn {
		b.warned = true
	}
	b.mu.Unlock()

	if warn {
		log.Printf("[client] %s backlog at %d messages", b.kind, n)
	}
}

// drain returns everything queued so far in arrival order and empties the
// inbox.
func (b *inbox[T]) drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	b.warned = false
	return out
}
