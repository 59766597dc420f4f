package battleship

import (
	"testing"
)

func TestGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager(42, nil)

	game := bgm.CreateGame(&scriptedSource{}, nil)
	if game == nil {
		t.Fatal("expected a game")
	}
	if len(game.Uuid()) != 6 {
		t.Fatalf("expected uuid of length 6\tgot: %s", game.Uuid())
	}
	if bgm.ActiveGames() != 1 {
		t.Fatalf("expected active games: %d\tgot: %d", 1, bgm.ActiveGames())
	}

	found, err := bgm.GetGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != game {
		t.Fatal("fetched game is not the created one")
	}
	if found.Human().Board().SunkShips() != 0 || len(found.Human().Board().Ships()) != len(Fleet) {
		t.Fatal("human board is not a fresh full fleet")
	}

	bgm.TerminateGame(game.Uuid())
	if _, err := bgm.GetGame(game.Uuid()); err == nil {
		t.Fatal("expected an error for a terminated game")
	}
	if bgm.ActiveGames() != 0 {
		t.Fatalf("expected active games: %d\tgot: %d", 0, bgm.ActiveGames())
	}
}
