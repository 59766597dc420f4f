package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}) error
	onConnErr(err error) uint8
}

// Session is one websocket client. Writes are serialized; reads happen
// only on the goroutine running the session's game.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
	logger    *zap.SugaredLogger
	mu        sync.Mutex
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		logger:    logger.With("session", id),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		s.logger.Warnw("timeout error", "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		s.logger.Warnw("high server load/traffic error", "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		s.logger.Infow("close error", "err", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		s.logger.Warnw("critical error", "err", err)
		return ConnLoopBreak
	}

	// Clients outside the application (binary frames, bad utf-8) end up
	// here. Breaking keeps them from flooding the server.
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		s.logger.Infow("non-critical error", "err", err)
		return ConnLoopBreak
	}

	s.logger.Warnw("unexpected error", "err", err)
	return ConnLoopBreak
}

// WriteJSON writes msg to the session connection, retrying with a linear
// back-off on temporary failures.
func (s *Session) WriteJSON(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeToConnWithRetry(msg)
}

func (s *Session) writeToConnWithRetry(msg interface{}) error {
	var retries uint8

	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				s.logger.Infow("writing json failed; retrying", "retry", retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue
			}
			s.logger.Warnw("max retries reached for writing to ws", "err", err)
			return NewConnErr(ConnLoopBreak).AddDesc(err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
		}
	}
}

// ReadMessage returns the next text or binary frame.
func (s *Session) ReadMessage() ([]byte, error) {
	var retries uint8

	for {
		_, payload, err := s.conn.ReadMessage()
		if err == nil {
			return payload, nil
		}

		switch s.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue
		default:
			return nil, NewConnErr(ConnLoopBreak).AddDesc(err.Error())
		}
	}
}

func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries < maxWriteWsRetries {
			s.logger.Infow("failed to read from ws conn; retrying", "retry", retries+1)
			time.Sleep(time.Duration((retries+1)*backOffFactor) * time.Second)
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		s.logger.Infow("break ws conn loop", "err", err)
		return ConnLoopBreak
	}
}
