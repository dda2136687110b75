package readthrough

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDepthExceeded = errors.New("dependency depth exceeded")
	ErrCycle         = errors.New("dependency cycle detected")
)

const DefaultMaxDepth = 6

// Resolver materializes a node after all of its missing parents, walking an
// explicit stack instead of recursing.
type Resolver struct {
	env      Env
	maxDepth int
	logger   *logging.Logger
}

func NewResolver(env Env, maxDepth int, logger *logging.Logger) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Resolver{env: env, maxDepth: maxDepth, logger: logger}
}

type nodeState uint8

const (
	statePending nodeState = iota
	stateVisiting
	stateDone
)

type frame struct {
	node     Node
	depth    int
	expanded bool
}

// Resolve ensures root and everything it references exist in storage.
// Parents are committed before children; a node already present is never fetched.
func (r *Resolver) Resolve(ctx context.Context, root Node) error {
	ctx, span := startSpan(ctx, "readthrough.Resolver.Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("readthrough.root", root.Key()))

	states := make(map[string]nodeState)
	stack := []frame{{node: root}}
	committed := 0

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx := len(stack) - 1
		cur := stack[idx]
		key := cur.node.Key()

		if cur.expanded {
			if err := cur.node.Commit(ctx, r.env); err != nil {
				return fmt.Errorf("commit %s: %w", key, err)
			}
			states[key] = stateDone
			stack = stack[:idx]
			committed++
			r.logger.DebugContext(ctx, "readthrough node committed", "node", key, "depth", cur.depth)
			continue
		}

		switch states[key] {
		case stateDone:
			stack = stack[:idx]
			continue
		case stateVisiting:
			return fmt.Errorf("%w: %s", ErrCycle, key)
		}
		if cur.depth > r.maxDepth {
			return fmt.Errorf("%w: %s at depth %d (max %d)", ErrDepthExceeded, key, cur.depth, r.maxDepth)
		}

		exists, err := cur.node.Exists(ctx)
		if err != nil {
			return fmt.Errorf("check %s: %w", key, err)
		}
		if exists {
			states[key] = stateDone
			stack = stack[:idx]
			continue
		}

		parents, err := cur.node.Prepare(ctx)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", key, err)
		}
		states[key] = stateVisiting
		stack[idx].expanded = true

		for i := len(parents) - 1; i >= 0; i-- {
			parent := parents[i]
			if parent == nil {
				continue
			}
			switch states[parent.Key()] {
			case stateDone:
				continue
			case stateVisiting:
				return fmt.Errorf("%w: %s -> %s", ErrCycle, key, parent.Key())
			}
			stack = append(stack, frame{node: parent, depth: cur.depth + 1})
		}
	}

	span.SetAttributes(attribute.Int("readthrough.committed", committed))
	return nil
}
