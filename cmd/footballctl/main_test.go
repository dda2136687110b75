package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riskibarqy/football-cache/internal/config"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaguesCmd_PrintsCatalog(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"leagues"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "39")
	assert.Contains(t, out.String(), "PremierLeague")
	assert.True(t, strings.HasPrefix(out.String(), "ID"))
}

func TestWarmFlags_DefaultsFromConfig(t *testing.T) {
	cfg := config.Config{TrackedLeagues: []int64{39, 140}, WarmConcurrency: 3}

	input, err := warmFlags{}.input(cfg)
	require.NoError(t, err)
	assert.Equal(t, []int64{39, 140}, input.LeagueIDs)
	assert.Equal(t, usecase.AllWarmKinds, input.Kinds)
	assert.Equal(t, 3, input.MaxWorkers)
	assert.Equal(t, 0, input.Season)
}

func TestWarmFlags_Overrides(t *testing.T) {
	cfg := config.Config{TrackedLeagues: []int64{39}, WarmConcurrency: 3}

	input, err := warmFlags{
		leagues: []string{"laliga", "2"},
		season:  2023,
		kinds:   []string{"fixtures"},
		workers: 8,
	}.input(cfg)
	require.NoError(t, err)
	assert.Equal(t, []int64{140, 2}, input.LeagueIDs)
	assert.Equal(t, []usecase.WarmKind{usecase.WarmFixtures}, input.Kinds)
	assert.Equal(t, 8, input.MaxWorkers)
	assert.Equal(t, 2023, input.Season)
}

func TestWarmFlags_RejectsUnknownInput(t *testing.T) {
	_, err := warmFlags{leagues: []string{"NoSuchLeague"}}.input(config.Config{})
	assert.Error(t, err)

	_, err = warmFlags{kinds: []string{"players"}}.input(config.Config{TrackedLeagues: []int64{39}})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}
