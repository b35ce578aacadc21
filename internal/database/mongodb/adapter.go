package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

var typeMap = map[dataset.Kind]string{
	dataset.KindText:  "string",
	dataset.KindFloat: "double",
	dataset.KindInt:   "long",
	dataset.KindDate:  "date",
	dataset.KindBool:  "bool",
	dataset.KindList:  "array",
}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.client = client
	a.dbName = extractDBName(url, clientOpts)
	a.database = client.Database(a.dbName)
	return nil
}

func extractDBName(url string, opts *options.ClientOptions) string {
	parts := strings.Split(url, "/")
	if len(parts) > 3 {
		dbPart := parts[len(parts)-1]
		if idx := strings.Index(dbPart, "?"); idx >= 0 {
			dbPart = dbPart[:idx]
		}
		if dbPart != "" && dbPart != "admin" {
			return dbPart
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "arcadia"
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *Adapter) MissingTables(ctx context.Context, names []string) ([]string, error) {
	if a.database == nil {
		return nil, fmt.Errorf("database not connected")
	}

	present, err := a.database.ListCollectionNames(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	found := make(map[string]bool, len(present))
	for _, name := range present {
		found[name] = true
	}

	var missing []string
	for _, name := range names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

func (a *Adapter) Select(ctx context.Context, q common.Query) (*common.QueryResult, error) {
	if q.Table == "" {
		return nil, fmt.Errorf("query has no table")
	}

	cursor, err := a.database.Collection(q.Table).Find(ctx, buildFilter(q), findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Table, err)
	}
	defer cursor.Close(ctx)

	var results []map[string]interface{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		converted := make(map[string]interface{}, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			converted[k] = convertBSONValue(v)
		}
		results = append(results, converted)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return &common.QueryResult{Columns: q.Columns, Rows: results}, nil
}

// EnsureTable creates the collection; documents carry their own shape.
func (a *Adapter) EnsureTable(ctx context.Context, table string, cols []dataset.Column) error {
	missing, err := a.MissingTables(ctx, []string{table})
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}
	if err := a.database.CreateCollection(ctx, table); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", table, err)
	}
	return nil
}

func (a *Adapter) Truncate(ctx context.Context, table string) error {
	_, err := a.database.Collection(table).DeleteMany(ctx, bson.M{})
	return err
}

func (a *Adapter) InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	docs, err := toDocuments(cols, rows)
	if err != nil {
		return err
	}
	if _, err := a.database.Collection(table).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (a *Adapter) MapColumnType(kind dataset.Kind) string {
	if mapped, exists := typeMap[kind]; exists {
		return mapped
	}
	return "string"
}
