package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseWarmKinds(t *testing.T) {
	kinds, err := usecase.ParseWarmKinds(nil)
	require.NoError(t, err)
	assert.Equal(t, usecase.AllWarmKinds, kinds)

	kinds, err = usecase.ParseWarmKinds([]string{" Teams", "standings", "teams"})
	require.NoError(t, err)
	assert.Equal(t, []usecase.WarmKind{usecase.WarmTeams, usecase.WarmStandings}, kinds)

	_, err = usecase.ParseWarmKinds([]string{"players"})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestWarmService_Warm_PopulatesStorage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.On("League", mock.Anything, premierLeague).Return(premierLeagueBundle(), nil).Maybe()
	h.provider.On("Teams", mock.Anything, premierLeague, season2023).Return(seasonTeams(), nil).Once()

	result, err := usecase.NewWarmService(h.graph).Warm(ctx, usecase.WarmInput{
		LeagueIDs:  []int64{premierLeague},
		Season:     season2023,
		Kinds:      []usecase.WarmKind{usecase.WarmLeague, usecase.WarmTeams},
		MaxWorkers: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Equal(t, 2, result.WorkerCount)
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, usecase.WarmLeague, result.Tasks[0].Kind)
	assert.Equal(t, 3, result.Tasks[0].Records)
	assert.Equal(t, 2, result.Tasks[1].Records)

	teams, err := h.repos.Teams.ListBySeason(ctx, premierLeague, season2023)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestWarmService_Warm_ReportsTaskFailures(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)

	h.provider.On("Standings", mock.Anything, premierLeague, season2023).
		Return([]standing.Row(nil), fmt.Errorf("%w: status 500", usecase.ErrUpstream)).Once()

	result, err := usecase.NewWarmService(h.graph).Warm(context.Background(), usecase.WarmInput{
		LeagueIDs: []int64{premierLeague},
		Season:    season2023,
		Kinds:     []usecase.WarmKind{usecase.WarmStandings},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 1, result.WorkerCount)
	assert.Contains(t, result.Tasks[0].Error, "status 500")
}

func TestWarmService_Warm_Validation(t *testing.T) {
	h := newHarness(t)
	service := usecase.NewWarmService(h.graph)

	_, err := service.Warm(context.Background(), usecase.WarmInput{})
	assert.True(t, errors.Is(err, usecase.ErrInvalidInput))

	_, err = service.Warm(context.Background(), usecase.WarmInput{LeagueIDs: []int64{premierLeague}, Season: -1})
	assert.True(t, errors.Is(err, usecase.ErrInvalidInput))
}
