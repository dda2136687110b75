package readthrough

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

// ErrUnresolved means the resource is still absent locally after a successful resolve.
var ErrUnresolved = errors.New("resource could not be resolved")

// Entity describes one cached read: how to find rows locally and which node
// populates them on a miss.
type Entity[K any, T any] struct {
	Name     string
	Key      func(key K) string
	Lookup   func(ctx context.Context, key K) ([]T, error)
	Populate func(key K) Node
}

type Orchestrator struct {
	resolver *Resolver
	flight   resilience.Group[struct{}]
	logger   *logging.Logger
}

func NewOrchestrator(resolver *Resolver, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Orchestrator{resolver: resolver, logger: logger}
}

// Resolve runs the resolver for a node directly. Concurrent calls for the same
// node key share one run.
func (o *Orchestrator) Resolve(ctx context.Context, n Node) error {
	_, err, shared := o.flight.Do(n.Key(), func() (struct{}, error) {
		return struct{}{}, o.resolver.Resolve(ctx, n)
	})
	if shared {
		o.logger.DebugContext(ctx, "readthrough resolve shared", "node", n.Key())
	}
	return err
}

// Load returns cached rows for key, populating storage on the first miss.
// Presence of any row counts as a hit; there is no freshness check.
func Load[K any, T any](ctx context.Context, o *Orchestrator, e Entity[K, T], key K) ([]T, error) {
	ctx, span := startSpan(ctx, "readthrough.Load")
	defer span.End()

	id := e.Name
	if e.Key != nil {
		id += ":" + e.Key(key)
	}
	span.SetAttributes(attribute.String("readthrough.entity", id))

	rows, err := e.Lookup(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", id, err)
	}
	if len(rows) > 0 {
		span.SetAttributes(attribute.Bool("readthrough.hit", true))
		return rows, nil
	}
	span.SetAttributes(attribute.Bool("readthrough.hit", false))

	if err := o.Resolve(ctx, e.Populate(key)); err != nil {
		return nil, err
	}

	rows, err = e.Lookup(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lookup %s after resolve: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnresolved, id)
	}
	o.logger.InfoContext(ctx, "readthrough populated", "entity", id, "rows", len(rows))
	return rows, nil
}
