package common

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/arcadia/internal/dataset"
)

type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Query describes a single-table read. Where keys are matched with equality;
// a slice value becomes an IN list. From/To bound DateColumn inclusively.
type Query struct {
	Table      string
	Columns    []string
	Where      map[string]interface{}
	DateColumn string
	From       time.Time
	To         time.Time
	OrderBy    string
	Desc       bool
	Limit      uint64
}

// Quoter renders an identifier for a given SQL dialect.
type Quoter func(string) string

func QuoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func QuoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func BuildSelect(qb squirrel.StatementBuilderType, q Query, quote Quoter) (string, []interface{}, error) {
	if q.Table == "" {
		return "", nil, fmt.Errorf("query has no table")
	}

	cols := []string{"*"}
	if len(q.Columns) > 0 {
		cols = make([]string, len(q.Columns))
		for i, c := range q.Columns {
			cols[i] = quote(c)
		}
	}

	sb := qb.Select(cols...).From(quote(q.Table))

	if len(q.Where) > 0 {
		eq := squirrel.Eq{}
		for k, v := range q.Where {
			eq[quote(k)] = v
		}
		sb = sb.Where(eq)
	}
	if q.DateColumn != "" {
		if !q.From.IsZero() {
			sb = sb.Where(squirrel.GtOrEq{quote(q.DateColumn): q.From})
		}
		if !q.To.IsZero() {
			sb = sb.Where(squirrel.LtOrEq{quote(q.DateColumn): q.To})
		}
	}
	if q.OrderBy != "" {
		order := quote(q.OrderBy)
		if q.Desc {
			order += " DESC"
		}
		sb = sb.OrderBy(order)
	}
	if q.Limit > 0 {
		sb = sb.Limit(q.Limit)
	}

	return sb.ToSql()
}

func BuildInsert(qb squirrel.StatementBuilderType, table string, cols []string, rows [][]interface{}, quote Quoter) (string, []interface{}, error) {
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("no rows to insert into %s", table)
	}

	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}

	ib := qb.Insert(quote(table)).Columns(quoted...)
	for i, row := range rows {
		if len(row) != len(cols) {
			return "", nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(cols))
		}
		ib = ib.Values(row...)
	}
	return ib.ToSql()
}

func CreateTableSQL(table string, cols []dataset.Column, mapType func(dataset.Kind) string, quote Quoter) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", quote(c.Name), mapType(c.Kind))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)", quote(table), strings.Join(defs, ",\n  "))
}

func ScanRows(rows *sql.Rows) (*QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &QueryResult{Columns: columns, Rows: results}, nil
}

// Flatten turns typed rows into driver values: lists are joined and
// dates optionally rendered as text for stores without a native type.
func Flatten(cols []dataset.Column, rows [][]interface{}, datesAsText bool) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		flat := make([]interface{}, len(row))
		for j, v := range row {
			if j >= len(cols) {
				flat[j] = v
				continue
			}
			kind := cols[j].Kind
			if kind == dataset.KindDate && !datesAsText {
				flat[j] = v
				continue
			}
			flat[j] = dataset.Flatten(kind, v)
		}
		out[i] = flat
	}
	return out
}
