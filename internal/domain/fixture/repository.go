package fixture

import (
	"context"
	"time"
)

// Repository exposes fixture persistence.
type Repository interface {
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	ListBySeason(ctx context.Context, leagueID int64, season int) ([]Fixture, error)
	// ListBySeasonRound matches fixtures whose round label starts with prefix.
	ListBySeasonRound(ctx context.Context, leagueID int64, season int, prefix string) ([]Fixture, error)
	// ListByDate returns fixtures kicking off within [from, to) in the given leagues.
	ListByDate(ctx context.Context, from, to time.Time, leagueIDs []int64) ([]Fixture, error)
	// ListHeadToHead returns finished fixtures between the two teams in either order.
	ListHeadToHead(ctx context.Context, teamA, teamB int64) ([]Fixture, error)
	MaxRegularRound(ctx context.Context, leagueID int64, season int) (int, error)
	UpsertMany(ctx context.Context, items []Fixture) error
	// Synced reports whether the list named by scope was stored in full. Single
	// fixtures share the table, so row presence alone does not answer it.
	Synced(ctx context.Context, scope string) (bool, error)
	MarkSynced(ctx context.Context, scope string) error
}
