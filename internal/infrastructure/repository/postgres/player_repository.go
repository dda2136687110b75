package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListSquad(ctx context.Context, leagueID, teamID int64, season int) ([]player.SquadMember, error) {
	columns := make([]string, 0, 24)
	for _, col := range qb.Columns(playerTableModel{}) {
		columns = append(columns, "p."+col)
	}
	columns = append(columns, "pt.team_id", "pt.league_id", "pt.season", "pt.number", "pt.position")

	query, args, err := qb.Select(columns...).
		From("players p JOIN player_teams pt ON pt.player_id = p.id").
		Where(qb.Eq("pt.team_id", teamID), qb.Eq("pt.league_id", leagueID), qb.Eq("pt.season", season)).
		OrderBy("p.name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select squad query: %w", err)
	}

	var rows []squadRowModel
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squad: %w", err)
	}

	out := make([]player.SquadMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.SquadMember{
			Player:   row.playerTableModel.toDomain(),
			TeamID:   row.TeamID,
			LeagueID: row.LeagueID,
			Season:   row.Season,
			Number:   row.Number,
			Position: row.Position,
		})
	}
	return out, nil
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]playerTableModel, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		rows = append(rows, toPlayerModel(item, now))
	}
	return upsertAll(ctx, conn(ctx, r.db), "players", rows, "id")
}

func (r *PlayerRepository) AttachToTeam(ctx context.Context, memberships []player.Membership) error {
	if len(memberships) == 0 {
		return nil
	}
	rows := make([]playerTeamModel, 0, len(memberships))
	seen := make(map[playerTeamModel]struct{}, len(memberships))
	for _, m := range memberships {
		key := playerTeamModel{PlayerID: m.PlayerID, TeamID: m.TeamID, LeagueID: m.LeagueID, Season: m.Season}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, playerTeamModel{
			PlayerID: m.PlayerID,
			TeamID:   m.TeamID,
			LeagueID: m.LeagueID,
			Season:   m.Season,
			Number:   m.Number,
			Position: m.Position,
		})
	}
	return upsertAll(ctx, conn(ctx, r.db), "player_teams", rows, "player_id", "team_id", "league_id", "season")
}
