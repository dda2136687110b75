package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

func selectByFixture[T any](ctx context.Context, db *sqlx.DB, table string, fixtureID int64, orderBy ...string) ([]T, error) {
	var zero T
	query, args, err := qb.Select(qb.Columns(zero)...).From(table).
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy(orderBy...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}

	var rows []T
	if err := sqlx.SelectContext(ctx, conn(ctx, db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return rows, nil
}

// replaceForFixture swaps a fixture's rows in table for rows.
func replaceForFixture[T any](ctx context.Context, db *sqlx.DB, table string, fixtureID int64, rows []T, conflict ...string) error {
	q := conn(ctx, db)
	if err := deleteWhere(ctx, q, table, qb.Eq("fixture_id", fixtureID)); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return upsertAll(ctx, q, table, rows, conflict...)
}

type FixtureStatRepository struct {
	db *sqlx.DB
}

func NewFixtureStatRepository(db *sqlx.DB) *FixtureStatRepository {
	return &FixtureStatRepository{db: db}
}

func (r *FixtureStatRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]fixturedetail.TeamStat, error) {
	rows, err := selectByFixture[fixtureStatModel](ctx, r.db, "fixture_statistics", fixtureID, "team_id")
	if err != nil {
		return nil, err
	}
	out := make([]fixturedetail.TeamStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureStatRepository) ReplaceForFixture(ctx context.Context, fixtureID int64, items []fixturedetail.TeamStat) error {
	rows := make([]fixtureStatModel, 0, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		rows = append(rows, toFixtureStatModel(item))
	}
	return replaceForFixture(ctx, r.db, "fixture_statistics", fixtureID, rows, "fixture_id", "team_id")
}

type FixtureEventRepository struct {
	db *sqlx.DB
}

func NewFixtureEventRepository(db *sqlx.DB) *FixtureEventRepository {
	return &FixtureEventRepository{db: db}
}

func (r *FixtureEventRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]fixturedetail.Event, error) {
	rows, err := selectByFixture[fixtureEventModel](ctx, r.db, "fixture_events", fixtureID, "seq")
	if err != nil {
		return nil, err
	}
	out := make([]fixturedetail.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureEventRepository) ReplaceForFixture(ctx context.Context, fixtureID int64, items []fixturedetail.Event) error {
	rows := make([]fixtureEventModel, 0, len(items))
	for i, item := range items {
		item.FixtureID = fixtureID
		item.Seq = i + 1
		rows = append(rows, toFixtureEventModel(item))
	}
	return replaceForFixture(ctx, r.db, "fixture_events", fixtureID, rows, "fixture_id", "seq")
}

type FixtureLineupRepository struct {
	db *sqlx.DB
}

func NewFixtureLineupRepository(db *sqlx.DB) *FixtureLineupRepository {
	return &FixtureLineupRepository{db: db}
}

func (r *FixtureLineupRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]fixturedetail.Lineup, error) {
	lineups, err := selectByFixture[fixtureLineupModel](ctx, r.db, "fixture_lineups", fixtureID, "team_id")
	if err != nil {
		return nil, err
	}
	if len(lineups) == 0 {
		return nil, nil
	}
	players, err := selectByFixture[fixtureLineupPlayerModel](ctx, r.db, "fixture_lineup_players", fixtureID, "team_id", "seq")
	if err != nil {
		return nil, err
	}

	byTeam := make(map[int64][]fixturedetail.LineupPlayer, len(lineups))
	for _, p := range players {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], fixturedetail.LineupPlayer{
			FixtureID: p.FixtureID,
			TeamID:    p.TeamID,
			PlayerID:  p.PlayerID,
			Name:      p.Name,
			Number:    p.Number,
			Pos:       p.Pos,
			Grid:      p.Grid,
			Starting:  p.Starting,
		})
	}

	out := make([]fixturedetail.Lineup, 0, len(lineups))
	for _, l := range lineups {
		out = append(out, fixturedetail.Lineup{
			FixtureID:  l.FixtureID,
			TeamID:     l.TeamID,
			TeamName:   l.TeamName,
			TeamLogo:   l.TeamLogo,
			CoachID:    l.CoachID,
			CoachName:  l.CoachName,
			CoachPhoto: l.CoachPhoto,
			Formation:  l.Formation,
			Colors:     []byte(l.Colors),
			Players:    byTeam[l.TeamID],
		})
	}
	return out, nil
}

func (r *FixtureLineupRepository) ReplaceForFixture(ctx context.Context, fixtureID int64, items []fixturedetail.Lineup) error {
	lineups := make([]fixtureLineupModel, 0, len(items))
	var players []fixtureLineupPlayerModel
	for _, item := range items {
		colors := string(item.Colors)
		if colors == "" {
			colors = "{}"
		}
		lineups = append(lineups, fixtureLineupModel{
			FixtureID:  fixtureID,
			TeamID:     item.TeamID,
			TeamName:   item.TeamName,
			TeamLogo:   item.TeamLogo,
			CoachID:    item.CoachID,
			CoachName:  item.CoachName,
			CoachPhoto: item.CoachPhoto,
			Formation:  item.Formation,
			Colors:     colors,
		})
		for i, p := range item.Players {
			players = append(players, fixtureLineupPlayerModel{
				FixtureID: fixtureID,
				TeamID:    item.TeamID,
				Seq:       i + 1,
				PlayerID:  p.PlayerID,
				Name:      p.Name,
				Number:    p.Number,
				Pos:       p.Pos,
				Grid:      p.Grid,
				Starting:  p.Starting,
			})
		}
	}

	// lineup players cascade with their lineup row.
	if err := replaceForFixture(ctx, r.db, "fixture_lineups", fixtureID, lineups, "fixture_id", "team_id"); err != nil {
		return err
	}
	if len(players) == 0 {
		return nil
	}
	return upsertAll(ctx, conn(ctx, r.db), "fixture_lineup_players", players, "fixture_id", "team_id", "seq")
}

type FixturePlayerRepository struct {
	db *sqlx.DB
}

func NewFixturePlayerRepository(db *sqlx.DB) *FixturePlayerRepository {
	return &FixturePlayerRepository{db: db}
}

func (r *FixturePlayerRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]fixturedetail.PlayerPerformance, error) {
	rows, err := selectByFixture[fixturePlayerModel](ctx, r.db, "fixture_players", fixtureID, "team_id", "substitute", "player_id")
	if err != nil {
		return nil, err
	}
	out := make([]fixturedetail.PlayerPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixturePlayerRepository) ReplaceForFixture(ctx context.Context, fixtureID int64, items []fixturedetail.PlayerPerformance) error {
	rows := make([]fixturePlayerModel, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		if pos, ok := index[item.PlayerID]; ok {
			rows[pos] = toFixturePlayerModel(item)
			continue
		}
		index[item.PlayerID] = len(rows)
		rows = append(rows, toFixturePlayerModel(item))
	}
	return replaceForFixture(ctx, r.db, "fixture_players", fixtureID, rows, "fixture_id", "player_id")
}
