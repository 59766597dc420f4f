package api

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
	mc "github.com/AlexanderZaramenskikh/morskoi-boi/models/connection"
)

// wsGameIO is both sides of a websocket game: it reads the human's attacks
// and pushes every game event back to the client.
type wsGameIO struct {
	session *mc.Session
	logger  *zap.SugaredLogger
}

var (
	_ mb.CoordinateSource = (*wsGameIO)(nil)
	_ mb.Observer         = (*wsGameIO)(nil)
)

func newWsGameIO(session *mc.Session, logger *zap.SugaredLogger) *wsGameIO {
	return &wsGameIO{session: session, logger: logger}
}

func (w *wsGameIO) send(msg interface{}) {
	if err := w.session.WriteJSON(msg); err != nil {
		w.logger.Warnw("failed to write to ws", "session", w.session.Id(), "err", err)
	}
}

// ReadCoordinates waits for the next CodeAttack message. Anything else is
// answered and skipped. Coordinates on the wire count from 1.
func (w *wsGameIO) ReadCoordinates(ctx context.Context) (mb.Coordinates, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mb.Coordinates{}, err
		}

		payload, err := w.session.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return mb.Coordinates{}, ctxErr
			}
			return mb.Coordinates{}, err
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
			w.send(mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent))
			continue
		}

		if *signal.Code != mc.CodeAttack {
			w.send(mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal))
			continue
		}

		var req mc.Message[*mc.ReqAttack]
		if err := json.Unmarshal(payload, &req); err != nil || req.Payload == nil {
			resp := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			resp.AddError(cerr.ErrNilPayload().Error(), "attack needs x and y")
			w.send(resp)
			continue
		}

		return mb.NewCoordinates(req.Payload.X-1, req.Payload.Y-1), nil
	}
}

func (w *wsGameIO) TurnStarted(g *mb.Game, side mb.Side) {
	resp := mc.NewMessage[mc.RespBoards](mc.CodeBoards)
	resp.AddPayload(mc.NewRespBoards(g, side))
	w.send(resp)
}

func (w *wsGameIO) TargetChosen(mb.Side, mb.Coordinates) {}

// ShotRejected only concerns the client for its own shots; the computer
// just picks again.
func (w *wsGameIO) ShotRejected(side mb.Side, target mb.Coordinates, err error) {
	if side != mb.SideHuman {
		return
	}

	message := err.Error()
	var boardErr cerr.BoardErr
	if errors.As(err, &boardErr) {
		message = boardErr.Message()
	}

	resp := mc.NewMessage[mc.RespShotResult](mc.CodeShotRejected)
	resp.AddPayload(mc.RespShotResult{Side: side.String(), X: target.X + 1, Y: target.Y + 1})
	resp.AddError(err.Error(), message)
	w.send(resp)
}

func (w *wsGameIO) ShotResolved(side mb.Side, target mb.Coordinates, outcome mb.ShotOutcome) {
	resp := mc.NewMessage[mc.RespShotResult](mc.CodeShotResult)
	resp.AddPayload(mc.RespShotResult{
		Side:    side.String(),
		X:       target.X + 1,
		Y:       target.Y + 1,
		Outcome: outcome.String(),
	})
	w.send(resp)
}

func (w *wsGameIO) GameOver(g *mb.Game) {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	resp.AddPayload(mc.RespEndGame{
		GameState: g.State().String(),
		Boards:    mc.NewRespBoards(g, g.Turn()),
	})
	w.send(resp)
}
