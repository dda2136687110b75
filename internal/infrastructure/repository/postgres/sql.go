package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/football-cache/internal/platform/querybuilder"
)

// maxRowsPerStatement keeps multi-row upserts under the 65535 bind limit.
const maxRowsPerStatement = 500

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type txKey struct{}

// TxRunner opens one database transaction per WithinTx call and hands it to
// repositories through the context.
type TxRunner struct {
	db *sqlx.DB
}

func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise. A call made
// inside an existing transaction joins it.
func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok && tx != nil
}

// conn returns the transaction carried by ctx, falling back to db.
func conn(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db
}

func uniqueIDs(values []int64) []int64 {
	out := make([]int64, 0, len(values))
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// upsertAll writes models in chunks; conflicting rows are overwritten.
func upsertAll[T any](ctx context.Context, q sqlx.ExecerContext, table string, models []T, conflict ...string) error {
	for start := 0; start < len(models); start += maxRowsPerStatement {
		end := min(start+maxRowsPerStatement, len(models))
		query, args, err := qb.UpsertModels(table, models[start:end], conflict...)
		if err != nil {
			return fmt.Errorf("build upsert %s query: %w", table, err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s: %w", table, err)
		}
	}
	return nil
}

// insertIgnore writes link rows, skipping ones that already exist.
func insertIgnore[T any](ctx context.Context, q sqlx.ExecerContext, table string, models []T, conflict ...string) error {
	for start := 0; start < len(models); start += maxRowsPerStatement {
		end := min(start+maxRowsPerStatement, len(models))
		b := qb.InsertInto(table)
		for i, model := range models[start:end] {
			if i == 0 {
				b.Columns(qb.Columns(model)...)
			}
			b.Values(qb.Values(model)...)
		}
		query, args, err := b.OnConflict(conflict...).DoNothing().ToSQL()
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

func deleteWhere(ctx context.Context, q sqlx.ExecerContext, table string, conditions ...qb.Condition) error {
	query, args, err := qb.DeleteFrom(table).Where(conditions...).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
