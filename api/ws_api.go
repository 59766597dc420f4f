package api

import (
	"context"
	"net/http"

	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
	mc "github.com/AlexanderZaramenskikh/morskoi-boi/models/connection"
)

// HandleWs upgrades the request and plays one game against the computer
// over the connection. The handler returns when the game is over or the
// client is gone.
func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	// Upgrade replies to the client itself on failure
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("could not open websocket connection", "err", err, "remote", r.RemoteAddr)
		return
	}

	session := s.sessionManager.GenerateNewSession(conn)
	s.logger.Infow("a new connection established", "session", session.Id(), "remote", conn.RemoteAddr().String())
	s.playSession(session)
}

func (s *Server) playSession(session *mc.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), maxTimeGame)
	defer cancel()

	// a blocked read only returns once the connection is closed
	stop := context.AfterFunc(ctx, func() { _ = session.Close() })
	defer stop()

	serverIpNet, err := getServerIpNet(session.Conn().LocalAddr())
	if err != nil {
		s.logger.Warnw("failed to extract server ip", "err", err)
	}

	gameIO := newWsGameIO(session, s.logger)
	game := s.gameManager.CreateGame(gameIO, gameIO)

	defer func() {
		s.gameManager.TerminateGame(game.Uuid())
		s.sessionManager.TerminateSession(session.Id())
		_ = session.Close()
		s.logger.Infow("connection closed", "session", session.Id(), "game", game.Uuid())
	}()

	s.recordAnalytics("games_created", gamesCreated, serverIpNet)

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id(), GameUuid: game.Uuid()})
	if err := session.WriteJSON(resp); err != nil {
		s.logger.Warnw("failed to send session id", "err", err)
		return
	}

	state, err := game.Run(ctx)
	if err != nil {
		s.logger.Infow("game ended early", "game", game.Uuid(), "err", err)
		return
	}

	switch state {
	case mb.GameStatePlayerWon:
		s.recordAnalytics("player_wins", playerWins, serverIpNet)
	case mb.GameStateComputerWon:
		s.recordAnalytics("computer_wins", computerWins, serverIpNet)
	}
}
