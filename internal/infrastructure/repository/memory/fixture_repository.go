package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
)

type FixtureRepository struct {
	db *DB
}

func NewFixtureRepository(db *DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	var (
		item fixture.Fixture
		ok   bool
	)
	r.db.read(func(s *state) {
		item, ok = s.fixtures[fixtureID]
	})
	return item, ok, nil
}

func (r *FixtureRepository) ListBySeason(_ context.Context, leagueID int64, season int) ([]fixture.Fixture, error) {
	return r.filter(func(f fixture.Fixture) bool {
		return f.LeagueID == leagueID && f.Season == season
	}), nil
}

func (r *FixtureRepository) ListBySeasonRound(_ context.Context, leagueID int64, season int, prefix string) ([]fixture.Fixture, error) {
	return r.filter(func(f fixture.Fixture) bool {
		return f.LeagueID == leagueID && f.Season == season && strings.HasPrefix(f.RoundLabel, prefix)
	}), nil
}

func (r *FixtureRepository) ListByDate(_ context.Context, from, to time.Time, leagueIDs []int64) ([]fixture.Fixture, error) {
	allowed := make(map[int64]struct{}, len(leagueIDs))
	for _, id := range leagueIDs {
		allowed[id] = struct{}{}
	}
	return r.filter(func(f fixture.Fixture) bool {
		if _, ok := allowed[f.LeagueID]; !ok {
			return false
		}
		return !f.Kickoff.Before(from) && f.Kickoff.Before(to)
	}), nil
}

func (r *FixtureRepository) ListHeadToHead(_ context.Context, teamA, teamB int64) ([]fixture.Fixture, error) {
	return r.filter(func(f fixture.Fixture) bool {
		return f.Finished() && f.Involves(teamA, teamB)
	}), nil
}

func (r *FixtureRepository) MaxRegularRound(_ context.Context, leagueID int64, season int) (int, error) {
	return fixture.MaxRegularRound(r.filter(func(f fixture.Fixture) bool {
		return f.LeagueID == leagueID && f.Season == season
	})), nil
}

func (r *FixtureRepository) filter(keep func(fixture.Fixture) bool) []fixture.Fixture {
	var out []fixture.Fixture
	r.db.read(func(s *state) {
		for _, item := range s.fixtures {
			if keep(item) {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Kickoff.Equal(out[j].Kickoff) {
			return out[i].Kickoff.Before(out[j].Kickoff)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *FixtureRepository) UpsertMany(_ context.Context, items []fixture.Fixture) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return r.db.write(func(s *state) error {
		for _, item := range items {
			if _, ok := s.seasons[seasonKey{LeagueID: item.LeagueID, Year: item.Season}]; !ok {
				return fmt.Errorf("fixture %d: season %d/%d does not exist", item.ID, item.LeagueID, item.Season)
			}
			if _, ok := s.teams[item.Home.ID]; !ok {
				return fmt.Errorf("fixture %d: home team %d does not exist", item.ID, item.Home.ID)
			}
			if _, ok := s.teams[item.Away.ID]; !ok {
				return fmt.Errorf("fixture %d: away team %d does not exist", item.ID, item.Away.ID)
			}
			s.fixtures[item.ID] = item
		}
		return nil
	})
}

func (r *FixtureRepository) Synced(_ context.Context, scope string) (bool, error) {
	var ok bool
	r.db.read(func(s *state) {
		_, ok = s.fixtureSyncs[scope]
	})
	return ok, nil
}

func (r *FixtureRepository) MarkSynced(_ context.Context, scope string) error {
	if scope == "" {
		return fmt.Errorf("fixture sync scope is required")
	}
	return r.db.write(func(s *state) error {
		s.fixtureSyncs[scope] = time.Now().UTC()
		return nil
	})
}

func requireFixture(s *state, fixtureID int64) error {
	if _, ok := s.fixtures[fixtureID]; !ok {
		return fmt.Errorf("fixture %d does not exist", fixtureID)
	}
	return nil
}

type FixtureStatRepository struct {
	db *DB
}

func NewFixtureStatRepository(db *DB) *FixtureStatRepository {
	return &FixtureStatRepository{db: db}
}

func (r *FixtureStatRepository) ListByFixture(_ context.Context, fixtureID int64) ([]fixturedetail.TeamStat, error) {
	var out []fixturedetail.TeamStat
	r.db.read(func(s *state) {
		out = append(out, s.fixtureStats[fixtureID]...)
	})
	return out, nil
}

func (r *FixtureStatRepository) ReplaceForFixture(_ context.Context, fixtureID int64, items []fixturedetail.TeamStat) error {
	rows := make([]fixturedetail.TeamStat, 0, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		rows = append(rows, item)
	}
	return r.db.write(func(s *state) error {
		if err := requireFixture(s, fixtureID); err != nil {
			return err
		}
		s.fixtureStats[fixtureID] = rows
		return nil
	})
}

type FixtureEventRepository struct {
	db *DB
}

func NewFixtureEventRepository(db *DB) *FixtureEventRepository {
	return &FixtureEventRepository{db: db}
}

func (r *FixtureEventRepository) ListByFixture(_ context.Context, fixtureID int64) ([]fixturedetail.Event, error) {
	var out []fixturedetail.Event
	r.db.read(func(s *state) {
		out = append(out, s.events[fixtureID]...)
	})
	return out, nil
}

func (r *FixtureEventRepository) ReplaceForFixture(_ context.Context, fixtureID int64, items []fixturedetail.Event) error {
	rows := make([]fixturedetail.Event, 0, len(items))
	for i, item := range items {
		item.FixtureID = fixtureID
		item.Seq = i + 1
		rows = append(rows, item)
	}
	return r.db.write(func(s *state) error {
		if err := requireFixture(s, fixtureID); err != nil {
			return err
		}
		s.events[fixtureID] = rows
		return nil
	})
}

type FixtureLineupRepository struct {
	db *DB
}

func NewFixtureLineupRepository(db *DB) *FixtureLineupRepository {
	return &FixtureLineupRepository{db: db}
}

func (r *FixtureLineupRepository) ListByFixture(_ context.Context, fixtureID int64) ([]fixturedetail.Lineup, error) {
	var out []fixturedetail.Lineup
	r.db.read(func(s *state) {
		out = append(out, s.lineups[fixtureID]...)
	})
	return out, nil
}

func (r *FixtureLineupRepository) ReplaceForFixture(_ context.Context, fixtureID int64, items []fixturedetail.Lineup) error {
	rows := make([]fixturedetail.Lineup, 0, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		players := make([]fixturedetail.LineupPlayer, 0, len(item.Players))
		for _, p := range item.Players {
			p.FixtureID = fixtureID
			p.TeamID = item.TeamID
			players = append(players, p)
		}
		item.Players = players
		rows = append(rows, item)
	}
	return r.db.write(func(s *state) error {
		if err := requireFixture(s, fixtureID); err != nil {
			return err
		}
		s.lineups[fixtureID] = rows
		return nil
	})
}

type FixturePlayerRepository struct {
	db *DB
}

func NewFixturePlayerRepository(db *DB) *FixturePlayerRepository {
	return &FixturePlayerRepository{db: db}
}

func (r *FixturePlayerRepository) ListByFixture(_ context.Context, fixtureID int64) ([]fixturedetail.PlayerPerformance, error) {
	var out []fixturedetail.PlayerPerformance
	r.db.read(func(s *state) {
		out = append(out, s.performances[fixtureID]...)
	})
	return out, nil
}

func (r *FixturePlayerRepository) ReplaceForFixture(_ context.Context, fixtureID int64, items []fixturedetail.PlayerPerformance) error {
	rows := make([]fixturedetail.PlayerPerformance, 0, len(items))
	for _, item := range items {
		item.FixtureID = fixtureID
		rows = append(rows, item)
	}
	return r.db.write(func(s *state) error {
		if err := requireFixture(s, fixtureID); err != nil {
			return err
		}
		s.performances[fixtureID] = rows
		return nil
	})
}

type StandingRepository struct {
	db *DB
}

func NewStandingRepository(db *DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(_ context.Context, leagueID int64, season int) ([]standing.Row, error) {
	var out []standing.Row
	r.db.read(func(s *state) {
		for key, item := range s.standings {
			if key.LeagueID == leagueID && key.Season == season {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Rank < out[j].Rank
	})
	return out, nil
}

func (r *StandingRepository) UpsertMany(_ context.Context, items []standing.Row) error {
	return r.db.write(func(s *state) error {
		for _, item := range items {
			if _, ok := s.seasons[seasonKey{LeagueID: item.LeagueID, Year: item.Season}]; !ok {
				return fmt.Errorf("standing: season %d/%d does not exist", item.LeagueID, item.Season)
			}
			s.standings[standingKey{LeagueID: item.LeagueID, Season: item.Season, TeamID: item.TeamID, Group: item.Group}] = item
		}
		return nil
	})
}
