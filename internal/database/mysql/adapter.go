package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

type Adapter struct {
	db        *sql.DB
	qb        squirrel.StatementBuilderType
	currentDB string
}

var typeMap = map[dataset.Kind]string{
	dataset.KindText:  "VARCHAR(512)",
	dataset.KindFloat: "DOUBLE",
	dataset.KindInt:   "BIGINT",
	dataset.KindDate:  "DATETIME",
	dataset.KindBool:  "BOOLEAN",
	dataset.KindList:  "TEXT",
}

var sslModes = []struct{ from, to string }{
	{"ssl-mode=REQUIRED", "tls=skip-verify"},
	{"ssl-mode=DISABLED", "tls=false"},
	{"ssl-mode=VERIFY_CA", "tls=true"},
	{"ssl-mode=VERIFY_IDENTITY", "tls=true"},
	{"sslmode=require", "tls=skip-verify"},
	{"sslmode=disable", "tls=false"},
	{"sslmode=verify-ca", "tls=true"},
	{"sslmode=verify-full", "tls=true"},
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// convertDSN turns a mysql:// URL into a go-sql-driver DSN with parseTime enabled.
func convertDSN(url string) string {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = strings.TrimPrefix(url, "mysql://")

		atIndex := strings.LastIndex(dsn, "@")
		if atIndex > 0 {
			credentials := dsn[:atIndex]
			remainder := dsn[atIndex+1:]

			slashIndex := strings.Index(remainder, "/")
			if slashIndex > 0 {
				hostPort := remainder[:slashIndex]
				dbAndParams := remainder[slashIndex+1:]
				for _, m := range sslModes {
					dbAndParams = strings.ReplaceAll(dbAndParams, m.from, m.to)
				}
				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
			}
		}
	}

	if !strings.Contains(dsn, "parseTime=") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}
	return dsn
}

func databaseName(dsn string) string {
	idx := strings.LastIndex(dsn, "/")
	if idx < 0 {
		return ""
	}
	dbPart := dsn[idx+1:]
	if qIdx := strings.Index(dbPart, "?"); qIdx >= 0 {
		return dbPart[:qIdx]
	}
	return dbPart
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := convertDSN(url)
	m.currentDB = databaseName(dsn)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) MissingTables(ctx context.Context, names []string) ([]string, error) {
	query, args, err := m.qb.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_name": names}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables in %s: %w", m.currentDB, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

func (m *Adapter) Select(ctx context.Context, q common.Query) (*common.QueryResult, error) {
	query, args, err := common.BuildSelect(m.qb, q, common.QuoteBacktick)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (m *Adapter) EnsureTable(ctx context.Context, table string, cols []dataset.Column) error {
	query := common.CreateTableSQL(table, cols, m.MapColumnType, common.QuoteBacktick)
	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (m *Adapter) Truncate(ctx context.Context, table string) error {
	_, err := m.db.ExecContext(ctx, "TRUNCATE TABLE "+common.QuoteBacktick(table))
	return err
}

func (m *Adapter) InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	query, args, err := common.BuildInsert(m.qb, table, names, common.Flatten(cols, rows, false), common.QuoteBacktick)
	if err != nil {
		return err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return tx.Commit()
}

func (m *Adapter) MapColumnType(kind dataset.Kind) string {
	if mapped, exists := typeMap[kind]; exists {
		return mapped
	}
	return "TEXT"
}
