// Package web serves Yuzu Spa to browsers over a websocket.
//
// Each connection owns one session ticked by a core.Driver on the server.
// The page sends key and pointer events and draws the snapshots it gets back.
package web

import (
	"context"
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/yuzu-spa/internal/config"
	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
	"github.com/vovakirdan/yuzu-spa/internal/leaderboard"
	"github.com/vovakirdan/yuzu-spa/internal/storage"
	"github.com/vovakirdan/yuzu-spa/internal/wisdom"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	Address  string
	TickRate int
	Seed     int64 // seeds every connection's generator; 0 uses the clock
	Game     config.GameConfig
	Board    capyspa.Board
	Runs     capyspa.RunRecorder
	Wisdom   wisdom.Fetcher
	Logger   *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
		Game:     config.Default(),
	}
}

// Server is the HTTP and websocket front end.
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer creates a server. A nil board gets a process-local one.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Wisdom == nil {
		cfg.Wisdom = wisdom.New(wisdom.Options{Logger: cfg.Logger})
	}
	if cfg.Board == nil {
		cfg.Board = leaderboard.NewManager(storage.NewMemory(nil), cfg.Game.Leaderboard.Capacity, cfg.Logger)
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The page may be served from another origin during development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded at build time
	}
	s.mux.Handle("/", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := leaderboard.Encode(s.cfg.Board.Entries())
	if err != nil {
		s.logger.Error("could not encode leaderboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	p := newPlayer(conn, s.cfg)
	p.logger.Info("player connected", "remote", r.RemoteAddr)
	p.serve()
	p.logger.Info("player disconnected", "remote", r.RemoteAddr)
}
