package battleship

import (
	"context"
	"errors"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

type Side uint8

const (
	SideHuman Side = iota
	SideComputer
)

func (s Side) String() string {
	if s == SideComputer {
		return "computer"
	}
	return "user"
}

func (s Side) Other() Side {
	if s == SideComputer {
		return SideHuman
	}
	return SideComputer
}

// TargetStrategy picks the next cell to shoot at.
type TargetStrategy interface {
	Ask(ctx context.Context) (Coordinates, error)
}

// CoordinateSource is whatever reads a finished coordinate pair from the
// human: a terminal prompt, a websocket, a test script.
type CoordinateSource interface {
	ReadCoordinates(ctx context.Context) (Coordinates, error)
}

// RandomStrategy keeps no memory of past shots. Repeats are refused by the
// board and Player.Move simply asks again.
type RandomStrategy struct {
	rng  Randomizer
	size int
}

var _ TargetStrategy = (*RandomStrategy)(nil)

func NewRandomStrategy(rng Randomizer, size int) *RandomStrategy {
	return &RandomStrategy{rng: rng, size: size}
}

func (rs *RandomStrategy) Ask(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return NewCoordinates(rs.rng.Intn(rs.size), rs.rng.Intn(rs.size)), nil
}

type ExternalInputStrategy struct {
	source CoordinateSource
}

var _ TargetStrategy = (*ExternalInputStrategy)(nil)

func NewExternalInputStrategy(source CoordinateSource) *ExternalInputStrategy {
	return &ExternalInputStrategy{source: source}
}

func (es *ExternalInputStrategy) Ask(ctx context.Context) (Coordinates, error) {
	return es.source.ReadCoordinates(ctx)
}

// Player defends its own board and shoots at the enemy board. The enemy
// board belongs to the other player.
type Player struct {
	side     Side
	board    *Board
	enemy    *Board
	strategy TargetStrategy
}

func NewPlayer(side Side, board, enemy *Board, strategy TargetStrategy) *Player {
	return &Player{
		side:     side,
		board:    board,
		enemy:    enemy,
		strategy: strategy,
	}
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) Enemy() *Board {
	return p.enemy
}

// Move asks the strategy for targets until the enemy board accepts one.
// Rejected shots are reported and do not end the turn. The returned bool
// is true when the shot hit something, which earns another move.
// Only errors that are not board errors are returned.
func (p *Player) Move(ctx context.Context, obs Observer) (bool, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	for {
		target, err := p.strategy.Ask(ctx)
		if err != nil {
			return false, err
		}
		obs.TargetChosen(p.side, target)

		outcome, err := p.enemy.Shoot(target)
		if err != nil {
			var boardErr cerr.BoardErr
			if errors.As(err, &boardErr) {
				obs.ShotRejected(p.side, target, boardErr)
				continue
			}
			return false, err
		}

		obs.ShotResolved(p.side, target, outcome)
		return outcome.IsHit(), nil
	}
}
