package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/coach"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type CoachRepository struct {
	db *sqlx.DB
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) ListByTeam(ctx context.Context, teamID int64) ([]coach.Coach, error) {
	query, args, err := qb.Select(qb.Columns(coachTableModel{})...).From("coaches").
		Where(qb.Expr("id IN (SELECT coach_id FROM team_coaches WHERE team_id = ?)", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select coaches by team query: %w", err)
	}

	var rows []coachTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select coaches by team: %w", err)
	}

	out := make([]coach.Coach, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode coach %d career: %w", row.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CoachRepository) UpsertForTeam(ctx context.Context, teamID int64, items []coach.Coach) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]coachTableModel, 0, len(items))
	links := make([]teamCoachModel, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return fmt.Errorf("coach id is required")
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		row, err := toCoachModel(item, now)
		if err != nil {
			return fmt.Errorf("encode coach %d career: %w", item.ID, err)
		}
		rows = append(rows, row)
		links = append(links, teamCoachModel{TeamID: teamID, CoachID: item.ID})
	}

	db := conn(ctx, r.db)
	if err := upsertAll(ctx, db, "coaches", rows, "id"); err != nil {
		return err
	}
	return insertIgnore(ctx, db, "team_coaches", links, "team_id", "coach_id")
}
