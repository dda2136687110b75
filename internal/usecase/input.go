package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
)

func parseLeague(ref string) (int64, error) {
	id, ok := league.ParseRef(ref)
	if !ok {
		return 0, fmt.Errorf("%w: invalid league %q", ErrInvalidInput, strings.TrimSpace(ref))
	}
	return id, nil
}

func requireID(field string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, field)
	}
	return nil
}

// requireSeason accepts 0 as "current season".
func requireSeason(season int) error {
	if season < 0 {
		return fmt.Errorf("%w: season must be a positive integer", ErrInvalidInput)
	}
	return nil
}

// load runs a read-through lookup and maps an unresolved read to ErrNotFound.
func load[K any, T any](ctx context.Context, g *Graph, e readthrough.Entity[K, T], key K) ([]T, error) {
	rows, err := readthrough.Load(ctx, g.orchestrator, e, key)
	if err == nil {
		return rows, nil
	}
	if errors.Is(err, readthrough.ErrUnresolved) && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return nil, err
}
