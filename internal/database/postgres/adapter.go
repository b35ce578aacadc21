package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

var typeMap = map[dataset.Kind]string{
	dataset.KindText:  "TEXT",
	dataset.KindFloat: "DOUBLE PRECISION",
	dataset.KindInt:   "BIGINT",
	dataset.KindDate:  "TIMESTAMP",
	dataset.KindBool:  "BOOLEAN",
	dataset.KindList:  "TEXT",
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func quote(name string) string {
	return pq.QuoteIdentifier(name)
}

func (p *Adapter) MissingTables(ctx context.Context, names []string) ([]string, error) {
	query, args, err := p.qb.Select("table_name").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": "public", "table_name": names}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

func (p *Adapter) Select(ctx context.Context, q common.Query) (*common.QueryResult, error) {
	query, args, err := common.BuildSelect(p.qb, q, quote)
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	fieldDescriptions := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescriptions))
	for i, fd := range fieldDescriptions {
		columns[i] = string(fd.Name)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &common.QueryResult{
		Columns: columns,
		Rows:    results,
	}, nil
}

func (p *Adapter) EnsureTable(ctx context.Context, table string, cols []dataset.Column) error {
	_, err := p.pool.Exec(ctx, common.CreateTableSQL(table, cols, p.MapColumnType, quote))
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (p *Adapter) Truncate(ctx context.Context, table string) error {
	_, err := p.pool.Exec(ctx, "TRUNCATE TABLE "+quote(table))
	return err
}

func (p *Adapter) InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	query, args, err := common.BuildInsert(p.qb, table, names, common.Flatten(cols, rows, false), quote)
	if err != nil {
		return err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return tx.Commit(ctx)
}

func (p *Adapter) MapColumnType(kind dataset.Kind) string {
	if mapped, exists := typeMap[kind]; exists {
		return mapped
	}
	return "TEXT"
}
