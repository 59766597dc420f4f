package battleship

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

type GameManager interface {
	CreateGame(input CoordinateSource, obs Observer) *Game
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	ActiveGames() int
}

// BattleshipGameManager keeps the games of every open connection. Each game
// gets its own Randomizer since *rand.Rand is not safe to share.
type BattleshipGameManager struct {
	games  map[string]*Game
	seeds  *rand.Rand
	logger *zap.SugaredLogger
	mu     sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

// NewBattleshipGameManager derives every game's seed from seed, or from the
// clock when seed is zero.
func NewBattleshipGameManager(seed int64, logger *zap.SugaredLogger) *BattleshipGameManager {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &BattleshipGameManager{
		games:  make(map[string]*Game, 10),
		seeds:  rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

func (bgm *BattleshipGameManager) CreateGame(input CoordinateSource, obs Observer) *Game {
	bgm.mu.Lock()
	rng := NewRandomizer(bgm.seeds.Int63() + 1)
	bgm.mu.Unlock()

	gen := NewBoardGenerator(rng, WithGeneratorLogger(bgm.logger))
	game := NewComputerGame(gen, rng, input, WithObserver(obs), WithGameLogger(bgm.logger))

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) ActiveGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
