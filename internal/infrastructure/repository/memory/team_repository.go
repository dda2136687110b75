package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/team"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	var (
		item team.Team
		ok   bool
	)
	r.db.read(func(s *state) {
		item, ok = s.teams[teamID]
	})
	return item, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []int64) ([]team.Team, error) {
	seen := make(map[int64]struct{}, len(teamIDs))
	out := make([]team.Team, 0, len(teamIDs))
	r.db.read(func(s *state) {
		for _, id := range teamIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if item, ok := s.teams[id]; ok {
				out = append(out, item)
			}
		}
	})
	sortTeams(out)
	return out, nil
}

func (r *TeamRepository) ListBySeason(_ context.Context, leagueID int64, season int) ([]team.Team, error) {
	var out []team.Team
	r.db.read(func(s *state) {
		for m := range s.teamSeasons {
			if m.LeagueID != leagueID || m.Season != season {
				continue
			}
			if item, ok := s.teams[m.TeamID]; ok {
				out = append(out, item)
			}
		}
	})
	sortTeams(out)
	return out, nil
}

func (r *TeamRepository) UpsertMany(_ context.Context, items []team.Team) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return r.db.write(func(s *state) error {
		for _, item := range items {
			s.teams[item.ID] = item
		}
		return nil
	})
}

func (r *TeamRepository) AttachToSeason(_ context.Context, memberships []team.Membership) error {
	return r.db.write(func(s *state) error {
		for _, m := range memberships {
			if _, ok := s.teams[m.TeamID]; !ok {
				return fmt.Errorf("attach team %d: team does not exist", m.TeamID)
			}
			if _, ok := s.seasons[seasonKey{LeagueID: m.LeagueID, Year: m.Season}]; !ok {
				return fmt.Errorf("attach team %d: season %d/%d does not exist", m.TeamID, m.LeagueID, m.Season)
			}
			s.teamSeasons[m] = struct{}{}
		}
		return nil
	})
}

func sortTeams(items []team.Team) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

type CoachRepository struct {
	db *DB
}

func NewCoachRepository(db *DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) ListByTeam(_ context.Context, teamID int64) ([]coach.Coach, error) {
	var out []coach.Coach
	r.db.read(func(s *state) {
		for link := range s.teamCoaches {
			if link.TeamID != teamID {
				continue
			}
			if item, ok := s.coaches[link.CoachID]; ok {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CoachRepository) UpsertForTeam(_ context.Context, teamID int64, items []coach.Coach) error {
	return r.db.write(func(s *state) error {
		if _, ok := s.teams[teamID]; !ok {
			return fmt.Errorf("coaches for team %d: team does not exist", teamID)
		}
		for _, item := range items {
			if item.ID <= 0 {
				return fmt.Errorf("coach id is required")
			}
			item.Career = append([]coach.Spell(nil), item.Career...)
			s.coaches[item.ID] = item
			s.teamCoaches[teamCoachKey{TeamID: teamID, CoachID: item.ID}] = struct{}{}
		}
		return nil
	})
}
