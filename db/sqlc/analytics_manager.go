package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps match counters per server ip.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementPlayerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementPlayerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementComputerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlayerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetPlayerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetComputerWinsCount(ctx, serverIpNet)
}
