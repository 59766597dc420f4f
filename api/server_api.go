package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
	mc "github.com/AlexanderZaramenskikh/morskoi-boi/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort     int           = 9191
	maxTimeGame     time.Duration = time.Minute * 30
	shutdownTimeout time.Duration = time.Second * 10
)

type Server struct {
	port           int
	stage          string
	upgrader       websocket.Upgrader
	logger         *zap.SugaredLogger
	analytics      Analytics
	gameManager    mb.GameManager
	sessionManager mc.SessionManager
}

type Option func(*Server) error

func NewServer(gameManager mb.GameManager, sessionManager mc.SessionManager, optFuncs ...Option) *Server {
	server := Server{
		port:           defaultPort,
		stage:          StageDev,
		logger:         zap.NewNop().Sugar(),
		gameManager:    gameManager,
		sessionManager: sessionManager,
		upgrader: websocket.Upgrader{
			// good average time since this is not a high-latency operation such as video streaming
			HandshakeTimeout: time.Second * 5,
			ReadBufferSize:   2048,
			WriteBufferSize:  2048,
		},
	}

	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	// A nil CheckOrigin makes gorilla reject cross-origin requests.
	if server.stage == StageDev {
		server.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithAnalytics enables the per-server match counters.
func WithAnalytics(analytics Analytics) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func (s *Server) Port() int {
	return s.port
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /battleship", s.HandleWs)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "ok\tgames: %d\tsessions: %d\n", s.gameManager.ActiveGames(), s.sessionManager.ActiveSessions())
}

// Run serves until ctx is done, then shuts the listener down. Games in
// progress are cut off by the session cleanup or their own time limit.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Second * 5,
	}

	go s.sessionManager.CleanupPeriodically(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("listening", "port", s.port, "stage", s.stage)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
