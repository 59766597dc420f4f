package sqlc

import "time"

// QuerierCtxTimeout bounds every analytics query issued by the server.
const QuerierCtxTimeout = time.Second * 10

type DbManager struct {
	Queries   Querier
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Queries:   queries,
		Analytics: NewAnalyticsManager(queries),
	}
}
