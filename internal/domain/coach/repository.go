package coach

import "context"

type Repository interface {
	// ListByTeam returns coaches surfaced by a lookup for teamID.
	ListByTeam(ctx context.Context, teamID int64) ([]Coach, error)
	UpsertForTeam(ctx context.Context, teamID int64, items []Coach) error
}
