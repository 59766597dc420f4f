package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/require"

	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
	mc "github.com/AlexanderZaramenskikh/morskoi-boi/models/connection"
)

type fakeAnalytics struct {
	mu     sync.Mutex
	counts map[string]int
	ips    []pqtype.Inet
}

func (fa *fakeAnalytics) inc(counter string, serverIpNet pqtype.Inet) error {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	if fa.counts == nil {
		fa.counts = make(map[string]int)
	}
	fa.counts[counter]++
	fa.ips = append(fa.ips, serverIpNet)
	return nil
}

func (fa *fakeAnalytics) count(counter string) int {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	return fa.counts[counter]
}

func (fa *fakeAnalytics) IncrementGamesCreatedCount(_ context.Context, serverIpNet pqtype.Inet) error {
	return fa.inc("games_created", serverIpNet)
}

func (fa *fakeAnalytics) IncrementPlayerWinsCount(_ context.Context, serverIpNet pqtype.Inet) error {
	return fa.inc("player_wins", serverIpNet)
}

func (fa *fakeAnalytics) IncrementComputerWinsCount(_ context.Context, serverIpNet pqtype.Inet) error {
	return fa.inc("computer_wins", serverIpNet)
}

type testEnv struct {
	gameManager    *mb.BattleshipGameManager
	sessionManager *mc.BattleshipSessionManager
	analytics      *fakeAnalytics
	server         *httptest.Server
	wsUrl          string
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		gameManager:    mb.NewBattleshipGameManager(42, nil),
		sessionManager: mc.NewBattleshipSessionManager(nil),
		analytics:      &fakeAnalytics{},
	}

	s := NewServer(env.gameManager, env.sessionManager, WithStage(StageDev), WithAnalytics(env.analytics))
	env.server = httptest.NewServer(s.Handler())
	t.Cleanup(env.server.Close)

	env.wsUrl = "ws" + strings.TrimPrefix(env.server.URL, "http") + "/battleship"
	return env
}

func (env *testEnv) dial(t *testing.T) *websocket.Conn {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(env.wsUrl, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	return conn
}

func readMessage[T any](t *testing.T, conn *websocket.Conn, expectedCode uint8) mc.Message[T] {
	var msg mc.Message[T]
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, expectedCode, msg.Code)
	return msg
}

func TestServerOptions(t *testing.T) {
	require.Panics(t, func() { NewServer(nil, nil, WithStage("staging")) })
	require.Panics(t, func() { NewServer(nil, nil, WithPort(0)) })
	require.Panics(t, func() { NewServer(nil, nil, WithLogger(nil)) })

	s := NewServer(nil, nil, WithPort(7171), WithStage(StageProd))
	require.Equal(t, 7171, s.Port())
	require.Nil(t, s.upgrader.CheckOrigin)

	s = NewServer(nil, nil)
	require.Equal(t, defaultPort, s.Port())
	require.NotNil(t, s.upgrader.CheckOrigin)
}

func TestGetServerIpNet(t *testing.T) {
	inet, err := getServerIpNet(&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 9191})
	require.NoError(t, err)
	require.True(t, inet.Valid)
	require.Equal(t, "127.0.0.1/32", inet.IPNet.String())

	inet, err = getServerIpNet(&net.TCPAddr{IP: net.ParseIP("::1"), Port: 9191})
	require.NoError(t, err)
	require.Equal(t, "::1/128", inet.IPNet.String())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWsGameWonByPlayer(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t)

	sessionMsg := readMessage[mc.RespSessionId](t, conn, mc.CodeSessionID)
	require.NotEmpty(t, sessionMsg.Payload.SessionID)
	require.Len(t, sessionMsg.Payload.GameUuid, 6)

	game, err := env.gameManager.GetGame(sessionMsg.Payload.GameUuid)
	require.NoError(t, err)
	_, err = env.sessionManager.FindSession(sessionMsg.Payload.SessionID)
	require.NoError(t, err)

	var targets []mb.Coordinates
	for _, sh := range game.Computer().Board().Ships() {
		targets = append(targets, sh.OccupiedCells()...)
	}

	boards := readMessage[mc.RespBoards](t, conn, mc.CodeBoards)
	require.True(t, boards.Payload.IsTurn)
	for _, row := range boards.Payload.ComputerGrid {
		for _, cell := range row {
			require.NotEqual(t, int(mb.PositionStateShip), cell)
		}
	}

	t.Run("invalid signal", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(mc.NewMessage[mc.NoPayload](200)))
		readMessage[mc.NoPayload](t, conn, mc.CodeInvalidSignal)

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"x":1}`)))
		readMessage[mc.NoPayload](t, conn, mc.CodeSignalAbsent)

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"code":2}`)))
		msg := readMessage[mc.NoPayload](t, conn, mc.CodeInvalidSignal)
		require.NotNil(t, msg.Error)
	})

	t.Run("shot off the board", func(t *testing.T) {
		req := mc.Message[mc.ReqAttack]{Code: mc.CodeAttack, Payload: mc.ReqAttack{X: 7, Y: 1}}
		require.NoError(t, conn.WriteJSON(req))

		msg := readMessage[mc.RespShotResult](t, conn, mc.CodeShotRejected)
		require.NotNil(t, msg.Error)
		require.Equal(t, "shot off the board", msg.Error.Message)
	})

	for i, target := range targets {
		req := mc.Message[mc.ReqAttack]{Code: mc.CodeAttack, Payload: mc.ReqAttack{X: target.X + 1, Y: target.Y + 1}}
		require.NoError(t, conn.WriteJSON(req))

		result := readMessage[mc.RespShotResult](t, conn, mc.CodeShotResult)
		require.Equal(t, "user", result.Payload.Side)
		require.Equal(t, target.X+1, result.Payload.X)
		require.NotEqual(t, "miss", result.Payload.Outcome)

		if i < len(targets)-1 {
			boards := readMessage[mc.RespBoards](t, conn, mc.CodeBoards)
			require.True(t, boards.Payload.IsTurn)
		}
	}

	end := readMessage[mc.RespEndGame](t, conn, mc.CodeEndGame)
	require.Equal(t, mb.GameStatePlayerWon.String(), end.Payload.GameState)
	require.Equal(t, len(mb.Fleet), end.Payload.Boards.ComputerSunk)

	require.Eventually(t, func() bool {
		return env.gameManager.ActiveGames() == 0 && env.sessionManager.ActiveSessions() == 0
	}, 5*time.Second, 20*time.Millisecond)
	require.Equal(t, 1, env.analytics.count("games_created"))
	require.Equal(t, 1, env.analytics.count("player_wins"))
	require.Equal(t, 0, env.analytics.count("computer_wins"))
}

func TestWsClientLeavesMidGame(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t)

	readMessage[mc.RespSessionId](t, conn, mc.CodeSessionID)
	readMessage[mc.RespBoards](t, conn, mc.CodeBoards)
	require.Equal(t, 1, env.gameManager.ActiveGames())

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))

	require.Eventually(t, func() bool {
		return env.gameManager.ActiveGames() == 0 && env.sessionManager.ActiveSessions() == 0
	}, 5*time.Second, 20*time.Millisecond)
	require.Equal(t, 1, env.analytics.count("games_created"))
	require.Equal(t, 0, env.analytics.count("player_wins"))
}
