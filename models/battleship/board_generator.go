package battleship

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

const DefaultMaxAttemptsPerBoard = 2000

// Randomizer returns a uniform integer in [0, n). *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer seeds from the clock when seed is zero.
func NewRandomizer(seed int64) Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type BoardGenerator struct {
	rng         Randomizer
	fleet       []int
	size        int
	maxAttempts int
	logger      *zap.SugaredLogger
}

type GeneratorOption func(*BoardGenerator)

func WithFleet(fleet []int) GeneratorOption {
	return func(bg *BoardGenerator) {
		bg.fleet = append([]int(nil), fleet...)
	}
}

func WithBoardSize(size int) GeneratorOption {
	return func(bg *BoardGenerator) {
		bg.size = size
	}
}

func WithMaxAttempts(maxAttempts int) GeneratorOption {
	return func(bg *BoardGenerator) {
		bg.maxAttempts = maxAttempts
	}
}

func WithGeneratorLogger(logger *zap.SugaredLogger) GeneratorOption {
	return func(bg *BoardGenerator) {
		if logger != nil {
			bg.logger = logger
		}
	}
}

func NewBoardGenerator(rng Randomizer, optFuncs ...GeneratorOption) *BoardGenerator {
	bg := &BoardGenerator{
		rng:         rng,
		fleet:       Fleet,
		size:        GridSize,
		maxAttempts: DefaultMaxAttemptsPerBoard,
		logger:      zap.NewNop().Sugar(),
	}
	for _, opt := range optFuncs {
		opt(bg)
	}
	return bg
}

// Generate tries to lay out the whole fleet by random sampling. The attempt
// counter is shared by all ships of the board; once it passes maxAttempts
// the board is abandoned.
func (bg *BoardGenerator) Generate() (*Board, error) {
	board := NewBoard(bg.size)
	attempts := 0

	for _, length := range bg.fleet {
		for {
			attempts++
			if attempts > bg.maxAttempts {
				return nil, cerr.ErrAttemptsExceeded(bg.maxAttempts)
			}

			origin := NewCoordinates(bg.rng.Intn(bg.size), bg.rng.Intn(bg.size))
			ship := NewShip(origin, length, Orientation(bg.rng.Intn(2)))

			err := board.PlaceShip(ship)
			if err == nil {
				break
			}
			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				return nil, err
			}
		}
	}

	board.ResetShotHistory()
	bg.logger.Debugw("board generated", "attempts", attempts)
	return board, nil
}

// GenerateValid retries Generate until a board comes out. There is no
// upper bound: the fixed fleet fits a 6x6 grid with high probability.
func (bg *BoardGenerator) GenerateValid() *Board {
	for retries := 0; ; retries++ {
		board, err := bg.Generate()
		if err == nil {
			return board
		}
		bg.logger.Debugw("board generation restarted", "retries", retries+1, "reason", err)
	}
}
