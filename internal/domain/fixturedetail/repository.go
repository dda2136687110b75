package fixturedetail

import "context"

// Each repository replaces a fixture's rows wholesale, since the provider
// always returns the complete sub-resource.

type StatRepository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]TeamStat, error)
	ReplaceForFixture(ctx context.Context, fixtureID int64, items []TeamStat) error
}

type EventRepository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
	ReplaceForFixture(ctx context.Context, fixtureID int64, items []Event) error
}

type LineupRepository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Lineup, error)
	ReplaceForFixture(ctx context.Context, fixtureID int64, items []Lineup) error
}

type PerformanceRepository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]PlayerPerformance, error)
	ReplaceForFixture(ctx context.Context, fixtureID int64, items []PlayerPerformance) error
}
