package seeder

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/database"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/logger"
)

const DefaultBatch = 100

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Every store table keyed by supplier name depends on suppliers; spend also names a category.
var dependencies = map[string][]string{
	database.SpendTable:       {database.SuppliersTable, database.CategoriesTable},
	database.RiskTable:        {database.SuppliersTable},
	database.PerformanceTable: {database.SuppliersTable},
	database.ContractsTable:   {database.SuppliersTable},
	database.AlertsTable:      {database.SuppliersTable},
}

type Seeder struct {
	adapter database.Adapter
	log     *zap.Logger
}

func New(adapter database.Adapter, log *zap.Logger) *Seeder {
	return &Seeder{adapter: adapter, log: logger.OrNop(log)}
}

// isValidIdentifier checks if a string is a valid SQL identifier
func isValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Seed writes every table that has a store counterpart. Tables without one are ignored.
func (s *Seeder) Seed(ctx context.Context, tables map[string]*dataset.Table, cfg Config) (*Result, error) {
	color.Cyan("🌱 Starting database seeding...")

	if cfg.Batch <= 0 {
		cfg.Batch = DefaultBatch
	}

	graph := NewDependencyGraph()
	byStore := make(map[string]*dataset.Table)
	for name, table := range tables {
		storeName, ok := database.StoreTable(name)
		if !ok || table == nil {
			continue
		}
		if err := validate(storeName, table); err != nil {
			return nil, err
		}
		byStore[storeName] = table
		graph.AddTable(&TableInfo{Name: storeName, Dataset: name, Dependencies: dependencies[storeName]})
	}

	result := &Result{Inserted: make(map[string]int), Failed: make(map[string]error)}
	if len(byStore) == 0 {
		color.Yellow("⚠️  No seedable tables given")
		return result, nil
	}

	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}
	result.Order = order

	color.Green("📊 Found %d tables", len(order))
	color.Cyan("📋 Insertion order: %s", strings.Join(order, " → "))
	fmt.Println()

	for _, name := range order {
		n, err := s.seedTable(ctx, name, byStore[name], cfg)
		if err != nil {
			if !cfg.Force {
				return result, fmt.Errorf("failed to seed table %s: %w (use --force to continue)", name, err)
			}
			result.Failed[name] = err
			s.log.Warn("seeding table failed", zap.String("table", name), zap.Error(err))
			color.Yellow("⚠️  Failed to seed %s but continuing with --force: %v", name, err)
			continue
		}
		result.Inserted[name] = n
	}

	if len(result.Failed) > 0 {
		color.Yellow("\n⚠️  Database seeding finished with %d failed table(s)", len(result.Failed))
		return result, nil
	}
	color.Green("\n✅ Database seeding completed successfully!")
	return result, nil
}

func validate(name string, table *dataset.Table) error {
	if !isValidIdentifier(name) {
		return fmt.Errorf("invalid table name: %s", name)
	}
	for _, col := range table.Columns {
		if !isValidIdentifier(col.Name) {
			return fmt.Errorf("invalid column name in table %s: %s", name, col.Name)
		}
	}
	return nil
}

func (s *Seeder) seedTable(ctx context.Context, name string, table *dataset.Table, cfg Config) (int, error) {
	color.Cyan("  📝 Seeding %s (%d records)...", name, table.Len())

	if err := s.adapter.EnsureTable(ctx, name, table.Columns); err != nil {
		return 0, fmt.Errorf("failed to create table: %w", err)
	}

	if cfg.Truncate {
		if err := s.adapter.Truncate(ctx, name); err != nil {
			return 0, fmt.Errorf("failed to truncate: %w", err)
		}
	}

	inserted := 0
	batch := make([][]interface{}, 0, cfg.Batch)
	for i := 0; i < table.Len(); i++ {
		batch = append(batch, table.Values(i))

		// Insert batch when full or at end
		if len(batch) >= cfg.Batch || i == table.Len()-1 {
			if err := s.adapter.InsertBatch(ctx, name, table.Columns, batch); err != nil {
				return inserted, fmt.Errorf("failed to insert batch: %w", err)
			}
			inserted += len(batch)
			batch = batch[:0]
		}
	}

	s.log.Debug("seeded table", zap.String("table", name), zap.Int("rows", inserted))
	color.Green("  ✅ %s seeded successfully", name)
	return inserted, nil
}
