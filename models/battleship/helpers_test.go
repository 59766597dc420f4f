package battleship

import (
	"context"
	"errors"
)

// scriptedRand replays values in order, wrapping around, and counts calls.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

var errScriptDone = errors.New("script exhausted")

type scriptedSource struct {
	targets []Coordinates
	next    int
}

func (s *scriptedSource) ReadCoordinates(ctx context.Context) (Coordinates, error) {
	if s.next >= len(s.targets) {
		return Coordinates{}, errScriptDone
	}
	c := s.targets[s.next]
	s.next++
	return c, nil
}

type recordingObserver struct {
	NopObserver
	rejected []error
	resolved []ShotOutcome
	turns    []Side
	gameOver int
}

func (r *recordingObserver) TurnStarted(_ *Game, side Side) {
	r.turns = append(r.turns, side)
}

func (r *recordingObserver) ShotRejected(_ Side, _ Coordinates, err error) {
	r.rejected = append(r.rejected, err)
}

func (r *recordingObserver) ShotResolved(_ Side, _ Coordinates, outcome ShotOutcome) {
	r.resolved = append(r.resolved, outcome)
}

func (r *recordingObserver) GameOver(*Game) {
	r.gameOver++
}

func boardWith(ships ...*Ship) *Board {
	b := NewBoard(GridSize)
	for _, sh := range ships {
		if err := b.PlaceShip(sh); err != nil {
			panic(err)
		}
	}
	b.ResetShotHistory()
	return b
}
