package database

import (
	"context"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/database/mongodb"
	"github.com/Rana718/arcadia/internal/database/mysql"
	"github.com/Rana718/arcadia/internal/database/postgres"
	"github.com/Rana718/arcadia/internal/database/sqlite"
	"github.com/Rana718/arcadia/internal/dataset"
)

type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// MissingTables returns the subset of names that do not exist, in input order.
	MissingTables(ctx context.Context, names []string) ([]string, error)
	Select(ctx context.Context, q common.Query) (*common.QueryResult, error)

	EnsureTable(ctx context.Context, table string, cols []dataset.Column) error
	Truncate(ctx context.Context, table string) error
	InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error

	MapColumnType(kind dataset.Kind) string
}

func NewAdapter(provider string) Adapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	case "mongodb":
		return mongodb.New()
	default:
		return postgres.New()
	}
}

// Open builds the adapter for provider, connects and pings it.
func Open(ctx context.Context, provider, url string) (Adapter, error) {
	adapter := NewAdapter(provider)
	if err := adapter.Connect(ctx, url); err != nil {
		return nil, err
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, err
	}
	return adapter, nil
}
