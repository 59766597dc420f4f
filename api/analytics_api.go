package api

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"

	"github.com/AlexanderZaramenskikh/morskoi-boi/db/sqlc"
)

// Analytics counts matches per server ip. *sqlc.AnalyticsManager is the
// postgres implementation.
type Analytics interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementPlayerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error
}

var _ Analytics = (*sqlc.AnalyticsManager)(nil)

func getServerIpNet(localAddr net.Addr) (pqtype.Inet, error) {
	host, _, err := net.SplitHostPort(localAddr.String())
	if err != nil {
		return pqtype.Inet{}, err
	}

	ip := net.ParseIP(host)
	mask := net.CIDRMask(128, 128)
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
		mask = net.CIDRMask(32, 32)
	}

	return pqtype.Inet{
		IPNet: net.IPNet{IP: ip, Mask: mask},
		Valid: ip != nil,
	}, nil
}

type analyticsFunc func(ctx context.Context, serverIpNet pqtype.Inet) error

// recordAnalytics never fails the game; a broken database only costs
// counters.
func (s *Server) recordAnalytics(counter string, inc func(Analytics) analyticsFunc, serverIpNet pqtype.Inet) {
	if s.analytics == nil || !serverIpNet.Valid {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := inc(s.analytics)(ctx, serverIpNet); err != nil {
		s.logger.Warnw("failed to increment analytics counter", "counter", counter, "err", err)
	}
}

func gamesCreated(a Analytics) analyticsFunc { return a.IncrementGamesCreatedCount }
func playerWins(a Analytics) analyticsFunc { return a.IncrementPlayerWinsCount }
func computerWins(a Analytics) analyticsFunc { return a.IncrementComputerWinsCount }
