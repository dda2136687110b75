package standing

import "context"

type Repository interface {
	// ListBySeason returns rows ordered by group then rank.
	ListBySeason(ctx context.Context, leagueID int64, season int) ([]Row, error)
	UpsertMany(ctx context.Context, items []Row) error
}
