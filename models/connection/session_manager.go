package connection

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ActiveSessions() int
	CleanupPeriodically(ctx context.Context)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	maxLifetime     time.Duration
	sessions        map[string]*Session
	logger          *zap.SugaredLogger
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func NewBattleshipSessionManager(logger *zap.SugaredLogger) *BattleshipSessionManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &BattleshipSessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: time.Minute * 5,
		maxLifetime:     time.Minute * 30,
		logger:          logger,
	}
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn, bsm.logger)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) ActiveSessions() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// CleanupPeriodically closes connections that outlived maxLifetime. Closing
// the connection makes the game goroutine of that session return.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.cleanupStale(time.Now())
		}
	}
}

func (bsm *BattleshipSessionManager) cleanupStale(now time.Time) int {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	removed := 0
	for id, session := range bsm.sessions {
		if now.Sub(session.createdAt) <= bsm.maxLifetime {
			continue
		}
		_ = session.Close()
		delete(bsm.sessions, id)
		removed++
		bsm.logger.Infow("stale session removed", "session", id)
	}
	return removed
}
