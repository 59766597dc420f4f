package battleship

import "go.uber.org/zap"

// Observer is told about everything a display needs to show. The game calls
// it synchronously from the goroutine running the game.
type Observer interface {
	TurnStarted(g *Game, side Side)
	TargetChosen(side Side, target Coordinates)
	ShotRejected(side Side, target Coordinates, err error)
	ShotResolved(side Side, target Coordinates, outcome ShotOutcome)
	GameOver(g *Game)
}

type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) TurnStarted(*Game, Side) {}
func (NopObserver) TargetChosen(Side, Coordinates) {}
func (NopObserver) ShotRejected(Side, Coordinates, error) {}
func (NopObserver) ShotResolved(Side, Coordinates, ShotOutcome) {}
func (NopObserver) GameOver(*Game) {}

// loggingObserver writes shot events to the game logger before passing
// them on.
type loggingObserver struct {
	next   Observer
	logger *zap.SugaredLogger
	game   string
}

func (lo loggingObserver) TurnStarted(g *Game, side Side) {
	lo.next.TurnStarted(g, side)
}

func (lo loggingObserver) TargetChosen(side Side, target Coordinates) {
	lo.next.TargetChosen(side, target)
}

func (lo loggingObserver) ShotRejected(side Side, target Coordinates, err error) {
	lo.logger.Debugw("shot rejected", "game", lo.game, "side", side.String(), "target", target.String(), "err", err)
	lo.next.ShotRejected(side, target, err)
}

func (lo loggingObserver) ShotResolved(side Side, target Coordinates, outcome ShotOutcome) {
	lo.logger.Debugw("shot resolved", "game", lo.game, "side", side.String(), "target", target.String(), "outcome", outcome.String())
	lo.next.ShotResolved(side, target, outcome)
}

func (lo loggingObserver) GameOver(g *Game) {
	lo.next.GameOver(g)
}
