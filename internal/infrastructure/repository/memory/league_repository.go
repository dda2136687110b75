package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-cache/internal/domain/league"
)

type LeagueRepository struct {
	db *DB
}

func NewLeagueRepository(db *DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	var (
		item league.League
		ok   bool
	)
	r.db.read(func(s *state) {
		item, ok = s.leagues[leagueID]
	})
	return item, ok, nil
}

func (r *LeagueRepository) GetByIDs(_ context.Context, leagueIDs []int64) ([]league.League, error) {
	seen := make(map[int64]struct{}, len(leagueIDs))
	out := make([]league.League, 0, len(leagueIDs))
	r.db.read(func(s *state) {
		for _, id := range leagueIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if item, ok := s.leagues[id]; ok {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return r.db.write(func(s *state) error {
		s.leagues[item.ID] = item
		return nil
	})
}

type SeasonRepository struct {
	db *DB
}

func NewSeasonRepository(db *DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByLeague(_ context.Context, leagueID int64) ([]league.Season, error) {
	var out []league.Season
	r.db.read(func(s *state) {
		for key, item := range s.seasons {
			if key.LeagueID == leagueID {
				out = append(out, item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (r *SeasonRepository) UpsertMany(_ context.Context, items []league.Season) error {
	return r.db.write(func(s *state) error {
		for _, item := range items {
			s.seasons[seasonKey{LeagueID: item.LeagueID, Year: item.Year}] = item
		}
		return nil
	})
}
