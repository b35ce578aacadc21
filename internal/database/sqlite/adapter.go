package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

type Adapter struct {
	db   *sql.DB
	qb   squirrel.StatementBuilderType
	path string
}

var typeMap = map[dataset.Kind]string{
	dataset.KindText:  "TEXT",
	dataset.KindFloat: "REAL",
	dataset.KindInt:   "INTEGER",
	dataset.KindDate:  "TEXT",
	dataset.KindBool:  "INTEGER",
	dataset.KindList:  "TEXT",
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// dsn strips the sqlite:// scheme and enables WAL unless the caller set parameters.
func dsn(url string) (string, string) {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	path := dbPath
	if idx := strings.Index(path, "?"); idx > 0 {
		path = path[:idx]
	}
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL"
	}
	return dbPath, path
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath, path := dsn(url)
	s.path = path

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Path is the database file in use.
func (s *Adapter) Path() string {
	return s.path
}

func (s *Adapter) MissingTables(ctx context.Context, names []string) ([]string, error) {
	query, args, err := s.qb.Select("name").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table", "name": names}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *Adapter) Select(ctx context.Context, q common.Query) (*common.QueryResult, error) {
	// dates are stored as text, so range bounds must be text too
	query, args, err := common.BuildSelect(s.qb, q, common.QuoteDouble)
	if err != nil {
		return nil, err
	}
	for i, a := range args {
		if t, ok := a.(time.Time); ok {
			args[i] = t.Format("2006-01-02 15:04:05")
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (s *Adapter) EnsureTable(ctx context.Context, table string, cols []dataset.Column) error {
	query := common.CreateTableSQL(table, cols, s.MapColumnType, common.QuoteDouble)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (s *Adapter) Truncate(ctx context.Context, table string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM "+common.QuoteDouble(table))
	return err
}

func (s *Adapter) InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	query, args, err := common.BuildInsert(s.qb, table, names, common.Flatten(cols, rows, true), common.QuoteDouble)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return tx.Commit()
}

func (s *Adapter) MapColumnType(kind dataset.Kind) string {
	if mapped, exists := typeMap[kind]; exists {
		return mapped
	}
	return "TEXT"
}
