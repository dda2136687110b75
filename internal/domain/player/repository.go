package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	ListSquad(ctx context.Context, leagueID, teamID int64, season int) ([]SquadMember, error)
	UpsertMany(ctx context.Context, items []Player) error
	AttachToTeam(ctx context.Context, memberships []Membership) error
}
