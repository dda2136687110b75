package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/football-cache/internal/platform/cache"
)

type countingLeagues struct {
	league.Repository
	gets int
}

func (c *countingLeagues) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func TestLeagueRepository_CachesHitsOnly(t *testing.T) {
	ctx := context.Background()
	next := &countingLeagues{Repository: memory.NewLeagueRepository(memory.NewDB())}
	repo := NewLeagueRepository(next, basecache.NewStore[league.League](time.Minute))

	if _, ok, _ := repo.GetByID(ctx, 39); ok {
		t.Fatalf("expected miss on empty store")
	}
	if _, ok, _ := repo.GetByID(ctx, 39); ok {
		t.Fatalf("expected second miss on empty store")
	}
	if next.gets != 2 {
		t.Fatalf("misses must not be cached, got %d backend reads", next.gets)
	}

	if err := repo.Upsert(ctx, league.League{ID: 39, Name: "Premier League"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	for i := 0; i < 3; i++ {
		item, ok, err := repo.GetByID(ctx, 39)
		if err != nil || !ok || item.Name != "Premier League" {
			t.Fatalf("unexpected lookup: %+v %v %v", item, ok, err)
		}
	}
	if next.gets != 3 {
		t.Fatalf("expected one backend read after upsert, got %d total", next.gets)
	}
}
