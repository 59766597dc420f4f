package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

var testServerIp = pqtype.Inet{
	IPNet: net.IPNet{IP: net.ParseIP("10.0.0.7").To4(), Mask: net.CIDRMask(32, 32)},
	Valid: true,
}

func newTestDbManager(t *testing.T) (DbManager, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db)), mock
}

func TestIncrementCounters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		inc   func(*AnalyticsManager) func(context.Context, pqtype.Inet) error
	}{
		{
			name:  "games created",
			query: incrementGamesCreatedCount,
			inc:   func(a *AnalyticsManager) func(context.Context, pqtype.Inet) error { return a.IncrementGamesCreatedCount },
		},
		{
			name:  "player wins",
			query: incrementPlayerWinsCount,
			inc:   func(a *AnalyticsManager) func(context.Context, pqtype.Inet) error { return a.IncrementPlayerWinsCount },
		},
		{
			name:  "computer wins",
			query: incrementComputerWinsCount,
			inc:   func(a *AnalyticsManager) func(context.Context, pqtype.Inet) error { return a.IncrementComputerWinsCount },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dbm, mock := newTestDbManager(t)
			mock.ExpectExec(regexp.QuoteMeta(test.query)).
				WithArgs(testServerIp).
				WillReturnResult(sqlmock.NewResult(0, 1))

			ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
			defer cancel()
			if err := test.inc(dbm.Analytics)(ctx, testServerIp); err != nil {
				t.Fatalf("failed to increment: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations were not met: %v", err)
			}
		})
	}
}

func TestGetCounters(t *testing.T) {
	dbm, mock := newTestDbManager(t)

	mock.ExpectQuery(`SELECT games_created FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(testServerIp).
		WillReturnRows(sqlmock.NewRows([]string{"games_created"}).AddRow(3))
	mock.ExpectQuery(`SELECT player_wins FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(testServerIp).
		WillReturnRows(sqlmock.NewRows([]string{"player_wins"}).AddRow(2))
	mock.ExpectQuery(`SELECT computer_wins FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(testServerIp).
		WillReturnRows(sqlmock.NewRows([]string{"computer_wins"}).AddRow(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	gamesCreated, err := dbm.Analytics.GetGamesCreatedCount(ctx, testServerIp)
	if err != nil {
		t.Fatalf("failed to fetch created games: %v", err)
	}
	playerWins, err := dbm.Analytics.GetPlayerWinsCount(ctx, testServerIp)
	if err != nil {
		t.Fatalf("failed to fetch player wins: %v", err)
	}
	computerWins, err := dbm.Analytics.GetComputerWinsCount(ctx, testServerIp)
	if err != nil {
		t.Fatalf("failed to fetch computer wins: %v", err)
	}

	if gamesCreated != 3 || playerWins != 2 || computerWins != 1 {
		t.Fatalf("expected counters 3/2/1\tgot: %d/%d/%d", gamesCreated, playerWins, computerWins)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestGetCounterUnknownServer(t *testing.T) {
	dbm, mock := newTestDbManager(t)

	mock.ExpectQuery(`SELECT games_created FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(testServerIp).
		WillReturnRows(sqlmock.NewRows([]string{"games_created"}))

	_, err := dbm.Analytics.GetGamesCreatedCount(context.Background(), testServerIp)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows\tgot: %v", err)
	}
}
