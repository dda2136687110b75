package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
)

type WarmKind string

const (
	WarmLeague    WarmKind = "league"
	WarmTeams     WarmKind = "teams"
	WarmFixtures  WarmKind = "fixtures"
	WarmStandings WarmKind = "standings"
)

// AllWarmKinds is the default set, in dependency order.
var AllWarmKinds = []WarmKind{WarmLeague, WarmTeams, WarmFixtures, WarmStandings}

func ParseWarmKinds(raw []string) ([]WarmKind, error) {
	if len(raw) == 0 {
		return append([]WarmKind(nil), AllWarmKinds...), nil
	}
	out := make([]WarmKind, 0, len(raw))
	seen := make(map[WarmKind]struct{}, len(raw))
	for _, item := range raw {
		kind := WarmKind(strings.ToLower(strings.TrimSpace(item)))
		switch kind {
		case WarmLeague, WarmTeams, WarmFixtures, WarmStandings:
		default:
			return nil, fmt.Errorf("%w: unknown warm kind %q", ErrInvalidInput, item)
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		out = append(out, kind)
	}
	return out, nil
}

type WarmInput struct {
	LeagueIDs []int64
	// Season 0 means the league's current season.
	Season     int
	Kinds      []WarmKind
	MaxWorkers int
}

type WarmResult struct {
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	DurationMs   int64            `json:"duration_ms"`
	Tasks        []WarmTaskResult `json:"tasks"`
}

type WarmTaskResult struct {
	LeagueID   int64    `json:"league_id"`
	Kind       WarmKind `json:"kind"`
	Records    int      `json:"records"`
	Error      string   `json:"error,omitempty"`
	DurationMs int64    `json:"duration_ms"`
}

// WarmService pre-populates storage for a set of leagues through the same
// read-through paths the API uses.
type WarmService struct {
	leagues   *LeagueService
	teams     *TeamService
	fixtures  *FixtureService
	standings *StandingService
}

func NewWarmService(graph *Graph) *WarmService {
	return &WarmService{
		leagues:   NewLeagueService(graph),
		teams:     NewTeamService(graph),
		fixtures:  NewFixtureService(graph),
		standings: NewStandingService(graph),
	}
}

type warmTask struct {
	index    int
	leagueID int64
	kind     WarmKind
}

// Warm runs one task per league and kind on a bounded pool. Task failures
// are reported in the result; only setup problems return an error.
func (s *WarmService) Warm(ctx context.Context, in WarmInput) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.Warm", attribute.Int("leagues", len(in.LeagueIDs)))
	defer span.End()

	if len(in.LeagueIDs) == 0 {
		return WarmResult{}, fmt.Errorf("%w: no leagues to warm", ErrInvalidInput)
	}
	if err := requireSeason(in.Season); err != nil {
		return WarmResult{}, err
	}
	kinds := in.Kinds
	if len(kinds) == 0 {
		kinds = AllWarmKinds
	}

	tasks := make([]warmTask, 0, len(in.LeagueIDs)*len(kinds))
	for _, leagueID := range in.LeagueIDs {
		for _, kind := range kinds {
			tasks = append(tasks, warmTask{index: len(tasks), leagueID: leagueID, kind: kind})
		}
	}

	workerCount := in.MaxWorkers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	started := time.Now()
	rows := make([]WarmTaskResult, len(tasks))
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			records, err := s.runTask(ctx, task.leagueID, in.Season, task.kind)
			row := WarmTaskResult{
				LeagueID:   task.leagueID,
				Kind:       task.kind,
				Records:    records,
				DurationMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				row.Error = err.Error()
				failed.Add(1)
			}
			rows[task.index] = row
		}); err != nil {
			workers.Done()
			rows[task.index] = WarmTaskResult{LeagueID: task.leagueID, Kind: task.kind, Error: fmt.Sprintf("submit task: %v", err)}
			failed.Add(1)
		}
	}
	workers.Wait()

	failedCount := int(failed.Load())
	return WarmResult{
		TaskCount:    len(tasks),
		SuccessCount: len(tasks) - failedCount,
		FailedCount:  failedCount,
		WorkerCount:  workerCount,
		DurationMs:   time.Since(started).Milliseconds(),
		Tasks:        rows,
	}, nil
}

func (s *WarmService) runTask(ctx context.Context, leagueID int64, season int, kind WarmKind) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ref := strconv.FormatInt(leagueID, 10)

	switch kind {
	case WarmLeague:
		details, err := s.leagues.Get(ctx, ref)
		if err != nil {
			return 0, err
		}
		return 1 + len(details.Seasons), nil
	case WarmTeams:
		items, err := s.teams.ListBySeason(ctx, ref, season)
		return len(items), err
	case WarmFixtures:
		items, err := s.fixtures.ListBySeason(ctx, ref, season)
		return len(items), err
	case WarmStandings:
		items, err := s.standings.Table(ctx, ref, season)
		return len(items), err
	default:
		return 0, fmt.Errorf("%w: unknown warm kind %q", ErrInvalidInput, kind)
	}
}
