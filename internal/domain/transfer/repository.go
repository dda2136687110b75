package transfer

import "context"

type Repository interface {
	// ListByPlayer returns transfers newest first.
	ListByPlayer(ctx context.Context, playerID int64) ([]Transfer, error)
	UpsertMany(ctx context.Context, items []Transfer) error
}
