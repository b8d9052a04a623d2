package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// ErrNotConnected is returned by SendMessage before the transport is up or
// after it went away.
var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateLoggedIn
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateLoggedIn:
		return "logged in"
	case StateError:
		return "error"
	}
	return "disconnected"
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
// Callbacks never touch game state; they only hand messages to the game loop
// through the snapshot and event channels.
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	serverName string
	tickRate   int
	account    string
	characters []messages.CharacterSummary
	conn       *websocket.Conn

	snapshotCh chan messages.SnapshotUpdate
	eventCh    chan messages.Inbound
	dropped    int
}

// NewClient creates a client with the given channel capacities.
func NewClient(snapshotBuffer, eventBuffer int) *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan messages.SnapshotUpdate, max(snapshotBuffer, 1)),
		eventCh:    make(chan messages.Inbound, max(eventBuffer, 1)),
	}
}

// Connect dials the server in a background goroutine and logs in once the
// transport is up.
func (c *Client) Connect(address, version, account string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.account = account
	c.characters = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.LoginRequest{Version: version, Account: account}); err != nil {
			c.setError(fmt.Errorf("failed to send login request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.Welcome) {
		log.Printf("[client] welcome: server=%s tickRate=%d version=%s", msg.ServerName, msg.TickRate, msg.Version)
		c.mu.Lock()
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.CharacterList) {
		log.Printf("[client] logged in as %s (%d characters)", msg.Account, len(msg.Characters))
		c.mu.Lock()
		c.account = msg.Account
		c.characters = msg.Characters
		c.state = StateLoggedIn
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.LoginRejected) {
		log.Printf("[client] login rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("login rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.SnapshotUpdate) {
		c.pushSnapshot(msg)
	})
	router.On(func(_ *router.NetworkClient, evt messages.FloatingTextEvent) {
		c.pushEvent(evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.VisualEffectEvent) {
		c.pushEvent(evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.ShopOpenEvent) {
		c.pushEvent(evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.ChatNotifyEvent) {
		c.pushEvent(evt)
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

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

func (c *Client) Account() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account
}

// Characters returns a copy of the character list from the last login.
func (c *Client) Characters() []messages.CharacterSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]messages.CharacterSummary, len(c.characters))
	copy(out, c.characters)
	return out
}

// Dropped is the number of cosmetic events discarded because the game loop
// fell behind.
func (c *Client) Dropped() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropped
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// DrainSnapshots returns all pending snapshot updates in arrival order,
// non-blocking.
func (c *Client) DrainSnapshots() []messages.SnapshotUpdate {
	return drainChan(c.snapshotCh)
}

// DrainEvents returns all pending events in arrival order, non-blocking.
func (c *Client) DrainEvents() []messages.Inbound {
	return drainChan(c.eventCh)
}

// pushSnapshot queues an update. Updates are partial, so a full queue is
// collapsed into a single update instead of dropping one.
func (c *Client) pushSnapshot(u messages.SnapshotUpdate) {
	select {
	case c.snapshotCh <- u:
		return
	default:
	}
	var acc messages.SnapshotUpdate
	for _, queued := range drainChan(c.snapshotCh) {
		acc = acc.Then(queued)
	}
	c.snapshotCh <- acc.Then(u)
}

// pushEvent queues an event, dropping it if the game loop is behind.
func (c *Client) pushEvent(evt messages.Inbound) {
	select {
	case c.eventCh <- evt:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
