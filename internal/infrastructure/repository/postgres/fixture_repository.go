package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select(qb.Columns(fixtureTableModel{})...).From("fixtures").
		Where(qb.Eq("id", fixtureID)).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, leagueID int64, season int) ([]fixture.Fixture, error) {
	return r.list(ctx, "select fixtures by season",
		qb.Eq("league_id", leagueID),
		qb.Eq("season", season),
	)
}

func (r *FixtureRepository) ListBySeasonRound(ctx context.Context, leagueID int64, season int, prefix string) ([]fixture.Fixture, error) {
	return r.list(ctx, "select fixtures by round",
		qb.Eq("league_id", leagueID),
		qb.Eq("season", season),
		qb.HasPrefix("round_label", prefix),
	)
}

func (r *FixtureRepository) ListByDate(ctx context.Context, from, to time.Time, leagueIDs []int64) ([]fixture.Fixture, error) {
	return r.list(ctx, "select fixtures by date",
		qb.Gte("kickoff", from.UTC()),
		qb.Lt("kickoff", to.UTC()),
		qb.In("league_id", uniqueIDs(leagueIDs)),
	)
}

func (r *FixtureRepository) ListHeadToHead(ctx context.Context, teamA, teamB int64) ([]fixture.Fixture, error) {
	return r.list(ctx, "select head to head fixtures",
		qb.Eq("status_short", fixture.StatusFinished),
		qb.Or(
			qb.And(qb.Eq("home_team_id", teamA), qb.Eq("away_team_id", teamB)),
			qb.And(qb.Eq("home_team_id", teamB), qb.Eq("away_team_id", teamA)),
		),
	)
}

func (r *FixtureRepository) MaxRegularRound(ctx context.Context, leagueID int64, season int) (int, error) {
	query, args, err := qb.Select("DISTINCT round").From("fixtures").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
			qb.HasPrefix("round", "Regular Season - "),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build select rounds query: %w", err)
	}

	var rounds []string
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rounds, query, args...); err != nil {
		return 0, fmt.Errorf("select rounds: %w", err)
	}

	maxRound := 0
	for _, raw := range rounds {
		if n, ok := fixture.ParseRegularRound(raw); ok && n > maxRound {
			maxRound = n
		}
	}
	return maxRound, nil
}

func (r *FixtureRepository) list(ctx context.Context, op string, where ...qb.Condition) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(qb.Columns(fixtureTableModel{})...).From("fixtures").
		Where(where...).
		OrderBy("kickoff", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []fixtureTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) UpsertMany(ctx context.Context, items []fixture.Fixture) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]fixtureTableModel, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if pos, ok := index[item.ID]; ok {
			rows[pos] = toFixtureModel(item, now)
			continue
		}
		index[item.ID] = len(rows)
		rows = append(rows, toFixtureModel(item, now))
	}
	return upsertAll(ctx, conn(ctx, r.db), "fixtures", rows, "id")
}

func (r *FixtureRepository) Synced(ctx context.Context, scope string) (bool, error) {
	query, args, err := qb.Select("scope").From("fixture_syncs").
		Where(qb.Eq("scope", scope)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build get fixture sync query: %w", err)
	}

	var found string
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get fixture sync: %w", err)
	}
	return true, nil
}

func (r *FixtureRepository) MarkSynced(ctx context.Context, scope string) error {
	if scope == "" {
		return fmt.Errorf("fixture sync scope is required")
	}
	rows := []fixtureSyncModel{{Scope: scope, SyncedAt: time.Now().UTC()}}
	return upsertAll(ctx, conn(ctx, r.db), "fixture_syncs", rows, "scope")
}
