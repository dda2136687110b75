package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	GetByIDs(ctx context.Context, leagueIDs []int64) ([]League, error)
	Upsert(ctx context.Context, item League) error
}

type SeasonRepository interface {
	ListByLeague(ctx context.Context, leagueID int64) ([]Season, error)
	UpsertMany(ctx context.Context, items []Season) error
}
