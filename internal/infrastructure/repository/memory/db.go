package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
)

type seasonKey struct {
	LeagueID int64
	Year     int
}

type playerTeamKey struct {
	PlayerID int64
	TeamID   int64
	LeagueID int64
	Season   int
}

type teamCoachKey struct {
	TeamID  int64
	CoachID int64
}

type standingKey struct {
	LeagueID int64
	Season   int
	TeamID   int64
	Group    string
}

// state holds every table. Slice values are replaced, never mutated, so a
// shallow clone is a consistent snapshot.
type state struct {
	leagues      map[int64]league.League
	seasons      map[seasonKey]league.Season
	teams        map[int64]team.Team
	teamSeasons  map[team.Membership]struct{}
	players      map[int64]player.Player
	playerTeams  map[playerTeamKey]player.Membership
	coaches      map[int64]coach.Coach
	teamCoaches  map[teamCoachKey]struct{}
	fixtures     map[int64]fixture.Fixture
	fixtureSyncs map[string]time.Time
	fixtureStats map[int64][]fixturedetail.TeamStat
	events       map[int64][]fixturedetail.Event
	lineups      map[int64][]fixturedetail.Lineup
	performances map[int64][]fixturedetail.PlayerPerformance
	standings    map[standingKey]standing.Row
	playerStats  map[playerstats.Key]playerstats.Stat
	transfers    map[transfer.Key]transfer.Transfer
}

func newState() state {
	return state{
		leagues:      make(map[int64]league.League),
		seasons:      make(map[seasonKey]league.Season),
		teams:        make(map[int64]team.Team),
		teamSeasons:  make(map[team.Membership]struct{}),
		players:      make(map[int64]player.Player),
		playerTeams:  make(map[playerTeamKey]player.Membership),
		coaches:      make(map[int64]coach.Coach),
		teamCoaches:  make(map[teamCoachKey]struct{}),
		fixtures:     make(map[int64]fixture.Fixture),
		fixtureSyncs: make(map[string]time.Time),
		fixtureStats: make(map[int64][]fixturedetail.TeamStat),
		events:       make(map[int64][]fixturedetail.Event),
		lineups:      make(map[int64][]fixturedetail.Lineup),
		performances: make(map[int64][]fixturedetail.PlayerPerformance),
		standings:    make(map[standingKey]standing.Row),
		playerStats:  make(map[playerstats.Key]playerstats.Stat),
		transfers:    make(map[transfer.Key]transfer.Transfer),
	}
}

func (s state) clone() state {
	return state{
		leagues:      maps.Clone(s.leagues),
		seasons:      maps.Clone(s.seasons),
		teams:        maps.Clone(s.teams),
		teamSeasons:  maps.Clone(s.teamSeasons),
		players:      maps.Clone(s.players),
		playerTeams:  maps.Clone(s.playerTeams),
		coaches:      maps.Clone(s.coaches),
		teamCoaches:  maps.Clone(s.teamCoaches),
		fixtures:     maps.Clone(s.fixtures),
		fixtureSyncs: maps.Clone(s.fixtureSyncs),
		fixtureStats: maps.Clone(s.fixtureStats),
		events:       maps.Clone(s.events),
		lineups:      maps.Clone(s.lineups),
		performances: maps.Clone(s.performances),
		standings:    maps.Clone(s.standings),
		playerStats:  maps.Clone(s.playerStats),
		transfers:    maps.Clone(s.transfers),
	}
}

// DB is the in-process store shared by every memory repository.
type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	s    state
}

func NewDB() *DB {
	return &DB{s: newState()}
}

func (db *DB) read(fn func(s *state)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(&db.s)
}

func (db *DB) write(fn func(s *state) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(&db.s)
}

type txKey struct{}

// TxRunner serializes transactions and restores a snapshot when fn fails.
type TxRunner struct {
	db *DB
}

func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	r.db.txMu.Lock()
	defer r.db.txMu.Unlock()

	r.db.mu.RLock()
	snapshot := r.db.s.clone()
	r.db.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		r.db.mu.Lock()
		r.db.s = snapshot
		r.db.mu.Unlock()
		return err
	}
	return nil
}
