// Package readthrough implements the fetch-on-miss reconciliation used by every
// cached entity: look up locally, otherwise fetch, resolve parents, translate
// and persist under one transaction.
package readthrough

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/platform/i18n"
)

// TxRunner scopes fn to a single storage transaction carried by ctx.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type committingKey struct{}

// Committing reports whether ctx belongs to a node commit. Reads made there
// may see uncommitted rows and must not be memoized.
func Committing(ctx context.Context) bool {
	v, _ := ctx.Value(committingKey{}).(bool)
	return v
}

// Env is what a node needs at commit time.
type Env struct {
	Translator i18n.Translator
	Tx         TxRunner
}

// Node is one provider resource that can be materialized into storage.
type Node interface {
	// Key identifies the resource, e.g. "teams:39:2024".
	Key() string
	Exists(ctx context.Context) (bool, error)
	// Prepare fetches the resource once and returns the parents it references.
	Prepare(ctx context.Context) ([]Node, error)
	Commit(ctx context.Context, env Env) error
}

// Spec describes a node whose provider payload has type P.
type Spec[P any] struct {
	Kind    string
	ID      string
	Exists  func(ctx context.Context) (bool, error)
	Fetch   func(ctx context.Context) (P, error)
	Parents func(payload P) []Node
	Texts   func(payload P) []string
	Persist func(ctx context.Context, payload P, dict i18n.Dictionary) error
}

type node[P any] struct {
	spec    Spec[P]
	payload P
	fetched bool
}

// New turns a Spec into a Node. Fetch and Persist are required.
func New[P any](spec Spec[P]) Node {
	return &node[P]{spec: spec}
}

func (n *node[P]) Key() string {
	return n.spec.Kind + ":" + n.spec.ID
}

func (n *node[P]) Exists(ctx context.Context) (bool, error) {
	if n.spec.Exists == nil {
		return false, nil
	}
	return n.spec.Exists(ctx)
}

func (n *node[P]) Prepare(ctx context.Context) ([]Node, error) {
	if n.spec.Fetch == nil {
		return nil, fmt.Errorf("%s: fetch is not defined", n.Key())
	}
	if !n.fetched {
		payload, err := n.spec.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		n.payload = payload
		n.fetched = true
	}
	if n.spec.Parents == nil {
		return nil, nil
	}
	return n.spec.Parents(n.payload), nil
}

func (n *node[P]) Commit(ctx context.Context, env Env) error {
	if !n.fetched {
		return fmt.Errorf("%s: commit before prepare", n.Key())
	}
	if n.spec.Persist == nil {
		return fmt.Errorf("%s: persist is not defined", n.Key())
	}

	dict := i18n.Dictionary{}
	if n.spec.Texts != nil && env.Translator != nil {
		texts := i18n.Unique(n.spec.Texts(n.payload))
		if len(texts) > 0 {
			translated, err := env.Translator.Translate(ctx, texts)
			if err != nil {
				return fmt.Errorf("translate %s: %w", n.Key(), err)
			}
			dict = translated
		}
	}

	ctx = context.WithValue(ctx, committingKey{}, true)
	persist := func(ctx context.Context) error {
		return n.spec.Persist(ctx, n.payload, dict)
	}
	if env.Tx == nil {
		return persist(ctx)
	}
	return env.Tx.WithinTx(ctx, persist)
}
