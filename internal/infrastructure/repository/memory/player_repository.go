package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
)

type PlayerRepository struct {
	db *DB
}

func NewPlayerRepository(db *DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	var (
		item player.Player
		ok   bool
	)
	r.db.read(func(s *state) {
		item, ok = s.players[playerID]
	})
	return item, ok, nil
}

func (r *PlayerRepository) ListSquad(_ context.Context, leagueID, teamID int64, season int) ([]player.SquadMember, error) {
	var out []player.SquadMember
	r.db.read(func(s *state) {
		for key, m := range s.playerTeams {
			if key.TeamID != teamID || key.LeagueID != leagueID || key.Season != season {
				continue
			}
			p, ok := s.players[key.PlayerID]
			if !ok {
				continue
			}
			out = append(out, player.SquadMember{
				Player:   p,
				TeamID:   m.TeamID,
				LeagueID: m.LeagueID,
				Season:   m.Season,
				Number:   m.Number,
				Position: m.Position,
			})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) UpsertMany(_ context.Context, items []player.Player) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return r.db.write(func(s *state) error {
		for _, item := range items {
			s.players[item.ID] = item
		}
		return nil
	})
}

func (r *PlayerRepository) AttachToTeam(_ context.Context, memberships []player.Membership) error {
	return r.db.write(func(s *state) error {
		for _, m := range memberships {
			if _, ok := s.players[m.PlayerID]; !ok {
				return fmt.Errorf("attach player %d: player does not exist", m.PlayerID)
			}
			if _, ok := s.teams[m.TeamID]; !ok {
				return fmt.Errorf("attach player %d: team %d does not exist", m.PlayerID, m.TeamID)
			}
			s.playerTeams[playerTeamKey{PlayerID: m.PlayerID, TeamID: m.TeamID, LeagueID: m.LeagueID, Season: m.Season}] = m
		}
		return nil
	})
}

type PlayerStatRepository struct {
	db *DB
}

func NewPlayerStatRepository(db *DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) ListByPlayerSeason(_ context.Context, playerID int64, season int) ([]playerstats.Stat, error) {
	var out []playerstats.Stat
	r.db.read(func(s *state) {
		for key, item := range s.playerStats {
			if key.PlayerID == playerID && key.Season == season {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].LeagueID != out[j].LeagueID {
			return out[i].LeagueID < out[j].LeagueID
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out, nil
}

func (r *PlayerStatRepository) UpsertMany(_ context.Context, items []playerstats.Stat) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return r.db.write(func(s *state) error {
		for _, item := range items {
			if _, ok := s.players[item.PlayerID]; !ok {
				return fmt.Errorf("player stat: player %d does not exist", item.PlayerID)
			}
			s.playerStats[item.Key()] = item
		}
		return nil
	})
}

type TransferRepository struct {
	db *DB
}

func NewTransferRepository(db *DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListByPlayer(_ context.Context, playerID int64) ([]transfer.Transfer, error) {
	var out []transfer.Transfer
	r.db.read(func(s *state) {
		for key, item := range s.transfers {
			if key.PlayerID == playerID {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *TransferRepository) UpsertMany(_ context.Context, items []transfer.Transfer) error {
	return r.db.write(func(s *state) error {
		for _, item := range items {
			s.transfers[item.Key()] = item
		}
		return nil
	})
}
