package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select(qb.Columns(leagueTableModel{})...).From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) GetByIDs(ctx context.Context, leagueIDs []int64) ([]league.League, error) {
	query, args, err := qb.Select(qb.Columns(leagueTableModel{})...).From("leagues").
		Where(qb.In("id", uniqueIDs(leagueIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by ids query: %w", err)
	}

	var rows []leagueTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues by ids: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return upsertAll(ctx, conn(ctx, r.db), "leagues", []leagueTableModel{toLeagueModel(item, time.Now().UTC())}, "id")
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID int64) ([]league.Season, error) {
	query, args, err := qb.Select(qb.Columns(seasonTableModel{})...).From("seasons").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) UpsertMany(ctx context.Context, items []league.Season) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]seasonTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, seasonTableModel{
			LeagueID:  item.LeagueID,
			Year:      item.Year,
			StartDate: item.Start,
			EndDate:   item.End,
			Current:   item.Current,
		})
	}
	return upsertAll(ctx, conn(ctx, r.db), "seasons", rows, "league_id", "year")
}
