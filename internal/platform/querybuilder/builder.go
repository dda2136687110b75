package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one WHERE predicate with $n placeholders.
type Condition interface {
	appendSQL(w *writer)
}

type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.buf.WriteString("$" + strconv.Itoa(len(w.args)))
}

type binaryCondition struct {
	column string
	op     string
	value  any
}

func (c binaryCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" " + c.op + " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition  { return binaryCondition{column, "=", value} }
func Gte(column string, value any) Condition { return binaryCondition{column, ">=", value} }
func Lt(column string, value any) Condition  { return binaryCondition{column, "<", value} }

// HasPrefix matches column values starting with prefix; LIKE wildcards in prefix are escaped.
func HasPrefix(column, prefix string) Condition {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	return binaryCondition{column, "LIKE", escaped + "%"}
}

type inCondition struct {
	column string
	values []any
}

func In[T any](column string, values []T) Condition {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return inCondition{column: column, values: out}
}

func (c inCondition) appendSQL(w *writer) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}
	w.buf.WriteString(c.column + " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

type isNullCondition struct{ column string }

func IsNull(column string) Condition { return isNullCondition{column: column} }

func (c isNullCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column + " IS NULL")
}

type groupCondition struct {
	joiner string
	items  []Condition
}

// Or joins conditions with OR inside parentheses.
func Or(items ...Condition) Condition  { return groupCondition{joiner: " OR ", items: items} }
func And(items ...Condition) Condition { return groupCondition{joiner: " AND ", items: items} }

func (c groupCondition) appendSQL(w *writer) {
	if len(c.items) == 0 {
		w.buf.WriteString("1=1")
		return
	}
	w.buf.WriteString("(")
	for i, item := range c.items {
		if i > 0 {
			w.buf.WriteString(c.joiner)
		}
		item.appendSQL(w)
	}
	w.buf.WriteString(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL; each ? is replaced by the next placeholder.
func Expr(expr string, args ...any) Condition { return exprCondition{expr: expr, args: args} }

func (c exprCondition) appendSQL(w *writer) {
	next := 0
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' && next < len(c.args) {
			w.bind(c.args[next])
			next++
			continue
		}
		w.buf.WriteByte(c.expr[i])
	}
}

func appendWhere(w *writer, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.buf.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &writer{}
	w.buf.WriteString("SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table)
	appendWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}
	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table    string
	columns  []string
	rows     [][]any
	conflict []string
	updates  []string
	nothing  bool
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflict sets the conflict target; pair it with DoUpdate or DoNothing.
func (b *InsertBuilder) OnConflict(columns ...string) *InsertBuilder {
	b.conflict = append([]string(nil), columns...)
	return b
}

// DoUpdate overwrites the listed columns from EXCLUDED. With no columns every
// non-conflict column is overwritten.
func (b *InsertBuilder) DoUpdate(columns ...string) *InsertBuilder {
	b.updates = append([]string(nil), columns...)
	b.nothing = false
	return b
}

func (b *InsertBuilder) DoNothing() *InsertBuilder {
	b.nothing = true
	b.updates = nil
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := &writer{}
	w.buf.WriteString("INSERT INTO " + b.table + " (" + strings.Join(b.columns, ", ") + ") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
		}
		w.buf.WriteString(")")
	}

	if len(b.conflict) > 0 {
		w.buf.WriteString(" ON CONFLICT (" + strings.Join(b.conflict, ", ") + ")")
		if b.nothing {
			w.buf.WriteString(" DO NOTHING")
		} else {
			sets := b.updateColumns()
			if len(sets) == 0 {
				w.buf.WriteString(" DO NOTHING")
			} else {
				parts := make([]string, 0, len(sets))
				for _, col := range sets {
					parts = append(parts, col+" = EXCLUDED."+col)
				}
				w.buf.WriteString(" DO UPDATE SET " + strings.Join(parts, ", "))
			}
		}
	}
	return w.buf.String(), w.args, nil
}

func (b *InsertBuilder) updateColumns() []string {
	if len(b.updates) > 0 {
		return b.updates
	}
	skip := make(map[string]struct{}, len(b.conflict))
	for _, col := range b.conflict {
		skip[col] = struct{}{}
	}
	out := make([]string, 0, len(b.columns))
	for _, col := range b.columns {
		if _, ok := skip[col]; !ok {
			out = append(out, col)
		}
	}
	return out
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete without where is not allowed")
	}
	w := &writer{}
	w.buf.WriteString("DELETE FROM " + b.table)
	appendWhere(w, b.where)
	return w.buf.String(), w.args, nil
}
