package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// UpsertModels builds one multi-row INSERT from structs tagged with `db`.
// Conflicting rows have every non-key column overwritten.
func UpsertModels[T any](table string, models []T, conflict ...string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("at least one model is required")
	}
	b := InsertInto(table)
	for i, model := range models {
		cols, vals, err := columnsAndValues(model)
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			b.Columns(cols...)
		}
		b.Values(vals...)
	}
	if len(conflict) > 0 {
		b.OnConflict(conflict...).DoUpdate()
	}
	return b.ToSQL()
}

// InsertModel builds a single-row INSERT; conflict may be empty.
func InsertModel(table string, model any, conflict ...string) (string, []any, error) {
	return UpsertModels(table, []any{model}, conflict...)
}

// Columns lists the db column names of a tagged struct, in field order.
func Columns(model any) []string {
	cols, _, err := columnsAndValues(model)
	if err != nil {
		return nil
	}
	return cols
}

// Values lists the db column values of a tagged struct, matching Columns.
func Values(model any) []any {
	_, vals, err := columnsAndValues(model)
	if err != nil {
		return nil
	}
	return vals
}

func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	cols := make([]string, 0, value.NumField())
	vals := make([]any, 0, value.NumField())
	cols, vals = appendFields(value, cols, vals)
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

// appendFields walks tagged fields; untagged embedded structs are flattened.
func appendFields(value reflect.Value, cols []string, vals []any) ([]string, []any) {
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("db")
		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			cols, vals = appendFields(value.Field(i), cols, vals)
			continue
		}
		if !field.IsExported() {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}
	return cols, vals
}
