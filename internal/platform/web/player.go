package web

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/vovakirdan/yuzu-spa/internal/core"
	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
	"github.com/vovakirdan/yuzu-spa/internal/wisdom"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 4096
	wisdomTimeout  = 30 * time.Second
)

// Client message types.
const (
	msgStart   = "start"
	msgKeyDown = "keydown"
	msgKeyUp   = "keyup"
	msgPointer = "pointer"
	msgBlur    = "blur"
)

// stateMessage is the only message the server sends.
type stateMessage struct {
	Type  string           `json:"type"`
	State capyspa.Snapshot `json:"state"`
}

// player is one websocket connection and its session.
type player struct {
	id     string
	conn   *websocket.Conn
	logger *log.Logger
	wisdom wisdom.Fetcher
	driver *core.Driver

	ctx    context.Context
	cancel context.CancelFunc

	// mu guards session. Never hold it while stopping the driver: the
	// frame callback takes it too.
	mu      sync.Mutex
	session *capyspa.Session

	writeMu sync.Mutex
}

func newPlayer(conn *websocket.Conn, cfg Config) *player {
	id := uuid.NewString()
	logger := cfg.Logger.With("player", id)
	ctx, cancel := context.WithCancel(context.Background())
	opts := capyspa.Options{
		Board:  cfg.Board,
		Runs:   cfg.Runs,
		Logger: logger,
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	session := capyspa.NewSession(cfg.Game, opts)

	return &player{
		id:      id,
		conn:    conn,
		logger:  logger,
		wisdom:  cfg.Wisdom,
		driver:  core.NewDriver(cfg.TickRate),
		ctx:     ctx,
		cancel:  cancel,
		session: session,
	}
}

// serve runs the read loop until the connection drops.
func (p *player) serve() {
	defer p.close()

	p.conn.SetReadLimit(maxMessageSize)
	_ = p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go p.pingLoop()

	p.sendState()

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.logger.Warn("read failed", "error", err)
			}
			return
		}
		p.handleMessage(data)
	}
}

func (p *player) close() {
	p.cancel()
	p.driver.Stop()
	p.conn.Close()
}

func (p *player) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := p.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// handleMessage applies one client message. Unknown messages are ignored.
func (p *player) handleMessage(data []byte) {
	if !gjson.ValidBytes(data) {
		p.logger.Debug("ignoring malformed message")
		return
	}
	msg := gjson.ParseBytes(data)

	switch msg.Get("type").String() {
	case msgStart:
		p.start()
	case msgKeyDown:
		p.mu.Lock()
		p.session.KeyDown(msg.Get("key").String())
		p.mu.Unlock()
	case msgKeyUp:
		p.mu.Lock()
		p.session.KeyUp(msg.Get("key").String())
		p.mu.Unlock()
	case msgBlur:
		p.mu.Lock()
		p.session.ReleaseKeys()
		p.mu.Unlock()
	case msgPointer:
		p.mu.Lock()
		p.session.PointerMove(msg.Get("x").Float(), msg.Get("width").Float())
		p.mu.Unlock()
	}
}

// start begins a run and its frame loop.
func (p *player) start() {
	p.mu.Lock()
	started := p.session.Start(time.Now())
	p.mu.Unlock()
	if !started {
		return
	}
	p.sendState()
	p.driver.Start(p.ctx, p.frame)
}

// frame is the driver callback. It returns false once the run is over.
func (p *player) frame(now time.Time) bool {
	p.mu.Lock()
	res := p.session.Tick(now)
	snap := p.session.Snapshot()
	p.mu.Unlock()

	p.send(snap)

	if res.Ended != nil {
		go p.fetchWisdom(res.Ended.Generation, res.Ended.Score)
		return false
	}
	return snap.Playing
}

func (p *player) fetchWisdom(generation uint64, score int) {
	ctx, cancel := context.WithTimeout(p.ctx, wisdomTimeout)
	defer cancel()
	text := p.wisdom.Fetch(ctx, score)

	p.mu.Lock()
	applied := p.session.ApplyWisdom(generation, text)
	snap := p.session.Snapshot()
	p.mu.Unlock()

	if applied {
		p.send(snap)
	}
}

func (p *player) sendState() {
	p.mu.Lock()
	snap := p.session.Snapshot()
	p.mu.Unlock()
	p.send(snap)
}

func (p *player) send(snap capyspa.Snapshot) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := p.conn.WriteJSON(stateMessage{Type: "state", State: snap}); err != nil {
		p.logger.Debug("write failed", "error", err)
	}
}

func (p *player) write(messageType int, data []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteMessage(messageType, data)
}
