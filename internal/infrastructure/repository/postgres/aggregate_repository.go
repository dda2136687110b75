package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, leagueID int64, season int) ([]standing.Row, error) {
	query, args, err := qb.Select(qb.Columns(standingTableModel{})...).From("standings").
		Where(qb.Eq("league_id", leagueID), qb.Eq("season", season)).
		OrderBy("group_name", "rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StandingRepository) UpsertMany(ctx context.Context, items []standing.Row) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]standingTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, toStandingModel(item))
	}
	return upsertAll(ctx, conn(ctx, r.db), "standings", rows, "league_id", "season", "team_id", "group_name")
}

type PlayerStatRepository struct {
	db *sqlx.DB
}

func NewPlayerStatRepository(db *sqlx.DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) ListByPlayerSeason(ctx context.Context, playerID int64, season int) ([]playerstats.Stat, error) {
	query, args, err := qb.Select(qb.Columns(playerStatTableModel{})...).From("player_stats").
		Where(qb.Eq("player_id", playerID), qb.Eq("season", season)).
		OrderBy("league_id", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player stats query: %w", err)
	}

	var rows []playerStatTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player stats: %w", err)
	}

	out := make([]playerstats.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatRepository) UpsertMany(ctx context.Context, items []playerstats.Stat) error {
	items = playerstats.Dedupe(items)
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]playerStatTableModel, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		rows = append(rows, toPlayerStatModel(item, now))
	}
	return upsertAll(ctx, conn(ctx, r.db), "player_stats", rows, "player_id", "team_id", "league_id", "season")
}

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListByPlayer(ctx context.Context, playerID int64) ([]transfer.Transfer, error) {
	query, args, err := qb.Select(qb.Columns(transferTableModel{})...).From("transfers").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("transfer_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers query: %w", err)
	}

	var rows []transferTableModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transfers: %w", err)
	}

	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TransferRepository) UpsertMany(ctx context.Context, items []transfer.Transfer) error {
	items = transfer.Dedupe(items)
	if len(items) == 0 {
		return nil
	}
	rows := make([]transferTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, toTransferModel(item))
	}
	return upsertAll(ctx, conn(ctx, r.db), "transfers", rows, "player_id", "transfer_date", "team_in_id", "team_out_id")
}
