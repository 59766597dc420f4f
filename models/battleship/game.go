package battleship

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

type GameState uint8

const (
	GameStateOngoing GameState = iota
	GameStatePlayerWon
	GameStateComputerWon
)

func (s GameState) String() string {
	switch s {
	case GameStatePlayerWon:
		return "player won"
	case GameStateComputerWon:
		return "computer won"
	default:
		return "ongoing"
	}
}

// Game alternates moves between the human and the computer. The human
// moves first; whoever hits moves again, a miss passes the turn.
type Game struct {
	uuid      string
	human     *Player
	computer  *Player
	fleetSize int
	state     GameState
	turn      Side
	moves     int
	observer  Observer
	logger    *zap.SugaredLogger
}

type GameOption func(*Game)

func WithObserver(obs Observer) GameOption {
	return func(g *Game) {
		if obs != nil {
			g.observer = obs
		}
	}
}

func WithGameLogger(logger *zap.SugaredLogger) GameOption {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithFleetSize sets how many sunk ships end the game.
func WithFleetSize(n int) GameOption {
	return func(g *Game) {
		g.fleetSize = n
	}
}

func NewGame(human, computer *Player, optFuncs ...GameOption) *Game {
	g := &Game{
		uuid:      uuid.NewString()[:6],
		human:     human,
		computer:  computer,
		fleetSize: len(Fleet),
		state:     GameStateOngoing,
		turn:      SideHuman,
		observer:  NopObserver{},
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range optFuncs {
		opt(g)
	}
	g.observer = loggingObserver{next: g.observer, logger: g.logger, game: g.uuid}
	return g
}

// NewComputerGame generates both boards and seats the human (fed by input)
// against the random computer. The computer's board is hidden.
func NewComputerGame(gen *BoardGenerator, rng Randomizer, input CoordinateSource, optFuncs ...GameOption) *Game {
	userBoard := gen.GenerateValid()
	computerBoard := gen.GenerateValid()
	computerBoard.SetHidden(true)

	human := NewPlayer(SideHuman, userBoard, computerBoard, NewExternalInputStrategy(input))
	computer := NewPlayer(SideComputer, computerBoard, userBoard, NewRandomStrategy(rng, computerBoard.Size()))

	optFuncs = append([]GameOption{WithFleetSize(len(gen.fleet))}, optFuncs...)
	return NewGame(human, computer, optFuncs...)
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Computer() *Player {
	return g.computer
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) IsFinished() bool {
	return g.state != GameStateOngoing
}

func (g *Game) player(side Side) *Player {
	if side == SideComputer {
		return g.computer
	}
	return g.human
}

// Step plays one accepted shot of the side whose turn it is.
func (g *Game) Step(ctx context.Context) error {
	if g.IsFinished() {
		return cerr.ErrGameFinished(g.uuid)
	}

	g.observer.TurnStarted(g, g.turn)
	extraTurn, err := g.player(g.turn).Move(ctx, g.observer)
	if err != nil {
		return err
	}
	g.moves++

	switch {
	case g.computer.Board().SunkShips() == g.fleetSize:
		g.state = GameStatePlayerWon
	case g.human.Board().SunkShips() == g.fleetSize:
		g.state = GameStateComputerWon
	}

	if g.IsFinished() {
		g.logger.Infow("game over", "game", g.uuid, "state", g.state.String(), "moves", g.moves)
		g.observer.GameOver(g)
		return nil
	}

	if !extraTurn {
		g.turn = g.turn.Other()
	}
	return nil
}

// Run steps until one side has lost its whole fleet or a strategy fails.
func (g *Game) Run(ctx context.Context) (GameState, error) {
	g.logger.Infow("game started", "game", g.uuid)
	for !g.IsFinished() {
		if err := g.Step(ctx); err != nil {
			g.logger.Warnw("game aborted", "game", g.uuid, "err", err)
			return g.state, err
		}
	}
	return g.state, nil
}
