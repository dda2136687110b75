package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]Team, error)
	ListBySeason(ctx context.Context, leagueID int64, season int) ([]Team, error)
	UpsertMany(ctx context.Context, items []Team) error
	AttachToSeason(ctx context.Context, memberships []Membership) error
}
