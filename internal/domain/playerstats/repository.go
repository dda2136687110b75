package playerstats

import "context"

type Repository interface {
	ListByPlayerSeason(ctx context.Context, playerID int64, season int) ([]Stat, error)
	UpsertMany(ctx context.Context, items []Stat) error
}
