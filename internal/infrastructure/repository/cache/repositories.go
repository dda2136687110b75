// Package cache decorates the hot lookup repositories with an in-process
// memo. Only hits are memoized: cached rows are never invalidated upstream,
// so a present row stays valid while an absent one may appear at any time.
package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	basecache "github.com/riskibarqy/football-cache/internal/platform/cache"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store[league.League]
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store[league.League]) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	key := leagueKey(leagueID)
	if item, ok := r.cache.Get(ctx, key); ok {
		return item, true, nil
	}

	item, exists, err := r.next.GetByID(ctx, leagueID)
	if err != nil || !exists {
		return item, exists, err
	}
	if !readthrough.Committing(ctx) {
		r.cache.Set(ctx, key, item)
	}
	return item, true, nil
}

func (r *LeagueRepository) GetByIDs(ctx context.Context, leagueIDs []int64) ([]league.League, error) {
	return r.next.GetByIDs(ctx, leagueIDs)
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueKey(item.ID))
	return nil
}

func leagueKey(id int64) string {
	return "league:id:" + strconv.FormatInt(id, 10)
}

type SeasonRepository struct {
	next  league.SeasonRepository
	cache *basecache.Store[[]league.Season]
}

func NewSeasonRepository(next league.SeasonRepository, cache *basecache.Store[[]league.Season]) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID int64) ([]league.Season, error) {
	key := seasonsKey(leagueID)
	if items, ok := r.cache.Get(ctx, key); ok {
		return append([]league.Season(nil), items...), nil
	}

	items, err := r.next.ListByLeague(ctx, leagueID)
	if err != nil || len(items) == 0 {
		return items, err
	}
	if !readthrough.Committing(ctx) {
		r.cache.Set(ctx, key, append([]league.Season(nil), items...))
	}
	return items, nil
}

func (r *SeasonRepository) UpsertMany(ctx context.Context, items []league.Season) error {
	if err := r.next.UpsertMany(ctx, items); err != nil {
		return err
	}
	for _, item := range items {
		r.cache.Delete(ctx, seasonsKey(item.LeagueID))
	}
	return nil
}

func seasonsKey(leagueID int64) string {
	return "season:list:league:" + strconv.FormatInt(leagueID, 10)
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[team.Team]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[team.Team]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := teamKey(teamID)
	if item, ok := r.cache.Get(ctx, key); ok {
		return item, true, nil
	}

	item, exists, err := r.next.GetByID(ctx, teamID)
	if err != nil || !exists {
		return item, exists, err
	}
	if !readthrough.Committing(ctx) {
		r.cache.Set(ctx, key, item)
	}
	return item, true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	return r.next.GetByIDs(ctx, teamIDs)
}

func (r *TeamRepository) ListBySeason(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	return r.next.ListBySeason(ctx, leagueID, season)
}

func (r *TeamRepository) UpsertMany(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertMany(ctx, items); err != nil {
		return err
	}
	for _, item := range items {
		r.cache.Delete(ctx, teamKey(item.ID))
	}
	return nil
}

func (r *TeamRepository) AttachToSeason(ctx context.Context, memberships []team.Membership) error {
	return r.next.AttachToSeason(ctx, memberships)
}

func teamKey(id int64) string {
	return "team:id:" + strconv.FormatInt(id, 10)
}
