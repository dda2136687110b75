package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(qb.Columns(teamTableModel{})...).From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	return r.list(ctx, "select teams by ids", qb.In("id", uniqueIDs(teamIDs)))
}

func (r *TeamRepository) ListBySeason(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	return r.list(ctx, "select teams by season",
		qb.Expr("id IN (SELECT team_id FROM team_seasons WHERE league_id = ? AND season = ?)", leagueID, season),
	)
}

func (r *TeamRepository) list(ctx context.Context, op string, where ...qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select(qb.Columns(teamTableModel{})...).From("teams").
		Where(where...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) UpsertMany(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]teamTableModel, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		rows = append(rows, toTeamModel(item, now))
	}
	return upsertAll(ctx, conn(ctx, r.db), "teams", rows, "id")
}

func (r *TeamRepository) AttachToSeason(ctx context.Context, memberships []team.Membership) error {
	if len(memberships) == 0 {
		return nil
	}
	rows := make([]teamSeasonModel, 0, len(memberships))
	for _, m := range memberships {
		rows = append(rows, teamSeasonModel{LeagueID: m.LeagueID, Season: m.Season, TeamID: m.TeamID})
	}
	return insertIgnore(ctx, conn(ctx, r.db), "team_seasons", rows, "league_id", "season", "team_id")
}
