package core

import (
	"log"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	chatHistory   = 50
	maxNameRunes  = 16
	exploreRadius = 6
)

// peer is the sending half of a connected client.
type peer interface {
	SendMessage(msg any) error
}

type outgoing struct {
	to  peer
	msg any
}

// session is one logged-in connection.
type session struct {
	peer    peer
	account string
	char    *character
	server  *Server

	inWorld bool
	entity  donburi.Entity

	moveX, moveY float64
	blocking     bool

	explored     []bool
	sentStatic   bool
	charDirty    bool
	exploreDirty bool
	chatSent     uint64
	nearMerchant bool

	attackCD, skillCD, dashCD int
}

func (sess *session) body() *BodyData {
	return Body.Get(sess.server.world.Entry(sess.entity))
}

// Server is the development game server. All state is guarded by mu; router
// callbacks and the game loop both go through locked.
type Server struct {
	world     donburi.World
	area      *Area
	loop      *GameLoop
	transport *transports.WsServerTransport
	rng       *rand.Rand

	name      string
	version   string
	moveSpeed float64

	mu          sync.Mutex
	sessions    map[peer]*session
	accounts    map[string][]*character
	objects     map[donburi.Entity]*resolv.Object
	ground      []messages.GroundItem
	projectiles []*projectile
	chat        []messages.ChatLine
	chatRev     uint64
	outbox      []outgoing

	tick           uint64
	nextEntity     messages.EntityID
	nextCharacter  uint32
	nextProjectile uint32
}

// NewServer creates a server with its zone populated. Router callbacks are
// registered by Start.
func NewServer(tickRate int, name, version string, moveSpeed float64) *Server {
	s := &Server{
		world:     donburi.NewWorld(),
		area:      NewArea("Ashen Vale"),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x656d626572)),
		name:      name,
		version:   version,
		moveSpeed: moveSpeed,
		sessions:  make(map[peer]*session),
		accounts:  make(map[string][]*character),
		objects:   make(map[donburi.Entity]*resolv.Object),
	}
	s.loop = NewGameLoop(s, tickRate)
	s.spawnMobs()
	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("Client %s disconnected", client.Id())
		}
		s.locked(func() { s.leave(client) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})

	router.On(func(client *router.NetworkClient, msg messages.LoginRequest) {
		s.locked(func() { s.login(client, msg) })
	})
	router.On(func(client *router.NetworkClient, msg messages.SelectCharacter) {
		s.locked(func() { s.selectCharacter(client, msg.CharacterID) })
	})
	router.On(func(client *router.NetworkClient, msg messages.CreateCharacter) {
		s.locked(func() { s.createCharacter(client, msg.Name, msg.Class) })
	})
	router.On(func(client *router.NetworkClient, msg messages.MoveIntent) {
		s.inWorld(client, func(sess *session) {
			sess.moveX, sess.moveY = msg.DX, msg.DY
			sess.blocking = msg.Blocking
		})
	})
	router.On(func(client *router.NetworkClient, msg messages.AttackAction) {
		s.inWorld(client, func(sess *session) { s.attack(sess, msg.Angle) })
	})
	router.On(func(client *router.NetworkClient, msg messages.SkillAction) {
		s.inWorld(client, func(sess *session) { s.skill(sess, msg.Index, msg.Angle) })
	})
	router.On(func(client *router.NetworkClient, msg messages.DashAction) {
		s.inWorld(client, func(sess *session) { s.dash(sess, msg.Angle) })
	})
	router.On(func(client *router.NetworkClient, _ messages.PotionAction) {
		s.inWorld(client, s.potion)
	})
	router.On(func(client *router.NetworkClient, msg messages.EquipItem) {
		s.inWorld(client, func(sess *session) { s.sheetOp(sess, "equip", sess.char.equip(msg.Index)) })
	})
	router.On(func(client *router.NetworkClient, msg messages.UnequipItem) {
		s.inWorld(client, func(sess *session) { s.sheetOp(sess, "unequip", sess.char.unequip(msg.Slot)) })
	})
	router.On(func(client *router.NetworkClient, msg messages.DropItem) {
		s.inWorld(client, func(sess *session) { s.dropItem(sess, msg.Index) })
	})
	router.On(func(client *router.NetworkClient, msg messages.UseItem) {
		s.inWorld(client, func(sess *session) { s.useItem(sess, msg.Index) })
	})
	router.On(func(client *router.NetworkClient, msg messages.AllocateStat) {
		s.inWorld(client, func(sess *session) { s.sheetOp(sess, "allocate", sess.char.allocate(msg.Stat)) })
	})
	router.On(func(client *router.NetworkClient, msg messages.CraftItem) {
		s.inWorld(client, func(sess *session) {
			_, err := sess.char.craft(msg.RecipeID)
			s.sheetOp(sess, "craft", err)
		})
	})
	router.On(func(client *router.NetworkClient, msg messages.SocketGem) {
		s.inWorld(client, func(sess *session) {
			s.sheetOp(sess, "socket", sess.char.socket(msg.ItemIndex, msg.GemIndex))
		})
	})
	router.On(func(client *router.NetworkClient, msg messages.ShopBuy) {
		s.inWorld(client, func(sess *session) { s.shopBuy(sess, msg.ItemID) })
	})
	router.On(func(client *router.NetworkClient, msg messages.ChatSend) {
		s.inWorld(client, func(sess *session) { s.say(sess, msg.Text) })
	})
}

// locked runs fn under the state lock and delivers whatever it queued once
// the lock is released.
func (s *Server) locked(fn func()) {
	s.mu.Lock()
	fn()
	out := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	for _, o := range out {
		if err := o.to.SendMessage(o.msg); err != nil {
			log.Printf("Send %T failed: %v", o.msg, err)
		}
	}
}

// inWorld runs fn for the client's session if it has entered the world.
func (s *Server) inWorld(p peer, fn func(sess *session)) {
	s.locked(func() {
		sess, ok := s.sessions[p]
		if !ok || !sess.inWorld {
			return
		}
		fn(sess)
	})
}

func (s *Server) send(p peer, msg any) {
	s.outbox = append(s.outbox, outgoing{to: p, msg: msg})
}

// broadcast queues msg for every session in the world.
func (s *Server) broadcast(msg any) {
	for p, sess := range s.sessions {
		if sess.inWorld {
			s.send(p, msg)
		}
	}
}

func (s *Server) login(p peer, req messages.LoginRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("Rejected login: version %q, want %q", req.Version, s.version)
		s.send(p, messages.LoginRejected{Reason: "version mismatch: server requires " + s.version})
		return
	}
	account := strings.TrimSpace(req.Account)
	if account == "" {
		s.send(p, messages.LoginRejected{Reason: "account name required"})
		return
	}
	for _, other := range s.sessions {
		if other.account == account {
			s.send(p, messages.LoginRejected{Reason: "account already online"})
			return
		}
	}

	s.sessions[p] = &session{peer: p, account: account, server: s}
	log.Printf("Account %s logged in (%d online)", account, len(s.sessions))

	list := make([]messages.CharacterSummary, 0, len(s.accounts[account]))
	for _, c := range s.accounts[account] {
		list = append(list, c.summary())
	}
	s.send(p, messages.Welcome{ServerName: s.name, TickRate: s.loop.tickRate, Version: s.version})
	s.send(p, messages.CharacterList{Account: account, Characters: list})
}

func (s *Server) selectCharacter(p peer, id uint32) {
	sess, ok := s.sessions[p]
	if !ok || sess.inWorld {
		return
	}
	i := slices.IndexFunc(s.accounts[sess.account], func(c *character) bool { return c.id == id })
	if i < 0 {
		log.Printf("Account %s selected unknown character %d", sess.account, id)
		return
	}
	s.enterWorld(sess, s.accounts[sess.account][i])
}

func (s *Server) createCharacter(p peer, name, class string) {
	sess, ok := s.sessions[p]
	if !ok || sess.inWorld {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = sess.account
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		name = string([]rune(name)[:maxNameRunes])
	}
	if !slices.Contains(netconfig.Classes, class) {
		class = netconfig.Classes[0]
	}

	s.nextCharacter++
	c := newCharacter(s.nextCharacter, name, class)
	s.accounts[sess.account] = append(s.accounts[sess.account], c)
	log.Printf("Account %s created %s the %s", sess.account, name, class)
	s.enterWorld(sess, c)
}

func (s *Server) enterWorld(sess *session, c *character) {
	sess.char = c
	sess.entity = s.spawnBody(netconfig.EntityPlayer, c.sheet.Name, s.area.SpawnX, s.area.SpawnY, c.sheet.MaxHP)
	c.sheet.EntityID = sess.body().ID
	c.sheet.Zone = s.area.Name
	sess.inWorld = true
	sess.sentStatic = false
	sess.charDirty = true
	sess.explored = make([]bool, s.area.Tiles.Width*s.area.Tiles.Height)
	s.area.Explore(sess.explored, s.area.SpawnX, s.area.SpawnY, exploreRadius)
	s.system(c.sheet.Name + " entered " + s.area.Name)
}

func (s *Server) leave(p peer) {
	sess, ok := s.sessions[p]
	if !ok {
		return
	}
	delete(s.sessions, p)
	if sess.inWorld {
		s.removeBody(sess.entity)
		s.system(sess.char.sheet.Name + " left")
	}
	log.Printf("Account %s logged out", sess.account)
}

// sheetOp logs a rejected character operation or marks the sheet for resend.
func (s *Server) sheetOp(sess *session, op string, err error) {
	if err != nil {
		log.Printf("%s: %s rejected: %v", sess.char.sheet.Name, op, err)
		return
	}
	sess.charDirty = true
}

func (s *Server) dropItem(sess *session, index int) {
	it, err := sess.char.drop(index)
	s.sheetOp(sess, "drop", err)
	if err != nil {
		return
	}
	b := sess.body()
	s.ground = append(s.ground, messages.GroundItem{Item: it, X: b.X, Y: b.Y + 2*bodySize})
}

func (s *Server) useItem(sess *session, index int) {
	healed, err := sess.char.use(index)
	s.sheetOp(sess, "use", err)
	if err == nil && healed > 0 {
		b := sess.body()
		s.floatingText(netconfig.TextHeal, "+"+strconv.Itoa(healed), b.X, b.Y)
	}
}

func (s *Server) shopBuy(sess *session, itemID string) {
	b := sess.body()
	if !s.area.NearMerchant(b.X, b.Y) {
		log.Printf("%s: buy %s rejected: not near the merchant", sess.char.sheet.Name, itemID)
		return
	}
	it, err := sess.char.buy(itemID)
	s.sheetOp(sess, "buy", err)
	if err == nil {
		s.floatingText(netconfig.TextGold, "-"+strconv.Itoa(shopStock[itemID].price)+"g", b.X, b.Y)
		log.Printf("%s bought %s", sess.char.sheet.Name, it.Name)
	}
}

func (s *Server) say(sess *session, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if utf8.RuneCountInString(text) > netconfig.ChatMaxRunes {
		text = string([]rune(text)[:netconfig.ChatMaxRunes])
	}
	from := sess.char.sheet.Name
	s.appendChat(messages.ChatLine{From: from, Text: text})
	for p, other := range s.sessions {
		if other != sess && other.inWorld {
			s.send(p, messages.ChatNotifyEvent{From: from})
		}
	}
}

// system posts a chat line without a sender.
func (s *Server) system(text string) {
	s.appendChat(messages.ChatLine{Text: text})
}

func (s *Server) appendChat(line messages.ChatLine) {
	s.chat = append(s.chat, line)
	if len(s.chat) > chatHistory {
		s.chat = slices.Clone(s.chat[len(s.chat)-chatHistory:])
	}
	s.chatRev++
}

// PlayerCount returns the number of players in the world
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sess := range s.sessions {
		if sess.inWorld {
			n++
		}
	}
	return n
}
