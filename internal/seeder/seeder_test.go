package seeder

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/arcadia/internal/database"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/generator"
)

var fixedNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func openSQLite(t *testing.T) database.Adapter {
	t.Helper()
	a, err := database.Open(context.Background(), "sqlite", "sqlite://"+filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func generated(seed int64) map[string]*dataset.Table {
	g := generator.New(generator.WithSeed(seed), generator.WithClock(func() time.Time { return fixedNow }))
	return g.All(generator.Sizes{Spend: 250, Risk: 10, Performance: 10, Contracts: 30, Alerts: 12})
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"spend_data", true},
		{"_private", true},
		{"Table1", true},
		{"1table", false},
		{"drop table;", false},
		{"name-with-dash", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidIdentifier(tt.name))
		})
	}
}

func TestInsertionOrder(t *testing.T) {
	g := NewDependencyGraph()
	for name, deps := range dependencies {
		g.AddTable(&TableInfo{Name: name, Dependencies: deps})
	}
	g.AddTable(&TableInfo{Name: database.SuppliersTable})
	g.AddTable(&TableInfo{Name: database.CategoriesTable})

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{
		database.CategoriesTable,
		database.SuppliersTable,
		database.ContractsTable,
		database.AlertsTable,
		database.RiskTable,
		database.SpendTable,
		database.PerformanceTable,
	}, order)

	pos := map[string]int{}
	for i, name := range order {
		pos[name] = i
	}
	assert.Len(t, order, 7)
	for table, deps := range dependencies {
		for _, dep := range deps {
			assert.Less(t, pos[dep], pos[table], "%s before %s", dep, table)
		}
	}
	assert.Equal(t, order, g.GetOrder())
}

func TestInsertionOrderCycle(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "a", Dependencies: []string{"b"}})
	g.AddTable(&TableInfo{Name: "b", Dependencies: []string{"a"}})
	_, err := g.BuildInsertionOrder()
	assert.Error(t, err)
}

func TestSeedRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := openSQLite(t)
	tables := generated(7)

	s := New(a, nil)
	res, err := s.Seed(ctx, tables, Config{Batch: 40})
	require.NoError(t, err)
	assert.Empty(t, res.Failed)
	assert.Len(t, res.Order, 7)
	assert.Equal(t, 250, res.Inserted[database.SpendTable])
	assert.Equal(t, tables[dataset.Suppliers].Len(), res.Inserted[database.SuppliersTable])

	f := database.NewFetcher(a)
	require.NoError(t, f.CheckSchema(ctx))

	spend, err := f.Spend(ctx, database.SpendFilter{})
	require.NoError(t, err)
	assert.Equal(t, 250, spend.Len())

	categories, err := f.Categories(ctx)
	require.NoError(t, err)
	require.Greater(t, categories.Len(), 0)
	subs, ok := categories.Value(0, "subcategories").([]string)
	require.True(t, ok, "list columns come back as lists")
	assert.NotEmpty(t, subs)
}

func TestSeedTwiceAppendsUnlessTruncated(t *testing.T) {
	ctx := context.Background()
	a := openSQLite(t)
	tables := generated(8)
	s := New(a, nil)

	_, err := s.Seed(ctx, tables, Config{})
	require.NoError(t, err)
	_, err = s.Seed(ctx, tables, Config{})
	require.NoError(t, err)

	f := database.NewFetcher(a)
	contracts, err := f.Contracts(ctx, database.ContractFilter{})
	require.NoError(t, err)
	assert.Equal(t, 60, contracts.Len())

	_, err = s.Seed(ctx, tables, Config{Truncate: true})
	require.NoError(t, err)
	contracts, err = f.Contracts(ctx, database.ContractFilter{})
	require.NoError(t, err)
	assert.Equal(t, 30, contracts.Len())
}

func TestSeedIgnoresDerivedDatasets(t *testing.T) {
	a := openSQLite(t)
	tables := generated(9)
	only := map[string]*dataset.Table{
		dataset.TimelineData:    tables[dataset.TimelineData],
		dataset.OpportunityData: tables[dataset.OpportunityData],
	}
	res, err := New(a, nil).Seed(context.Background(), only, Config{})
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Inserted)
}

func TestSeedRejectsBadColumn(t *testing.T) {
	a := openSQLite(t)
	bad := &dataset.Table{
		Name:    dataset.Suppliers,
		Columns: []dataset.Column{{Name: "name; DROP", Kind: dataset.KindText}},
	}
	_, err := New(a, nil).Seed(context.Background(), map[string]*dataset.Table{dataset.Suppliers: bad}, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid column name")
}

type failingAdapter struct {
	database.Adapter
	fail     string
	inserted map[string]int
}

func (f *failingAdapter) EnsureTable(ctx context.Context, table string, cols []dataset.Column) error {
	return nil
}

func (f *failingAdapter) Truncate(ctx context.Context, table string) error {
	return nil
}

func (f *failingAdapter) InsertBatch(ctx context.Context, table string, cols []dataset.Column, rows [][]interface{}) error {
	if table == f.fail {
		return errors.New("disk full")
	}
	f.inserted[table] += len(rows)
	return nil
}

func TestSeedForceSkipsFailingTable(t *testing.T) {
	tables := generated(10)

	stub := &failingAdapter{fail: database.RiskTable, inserted: map[string]int{}}
	_, err := New(stub, nil).Seed(context.Background(), tables, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	stub = &failingAdapter{fail: database.RiskTable, inserted: map[string]int{}}
	res, err := New(stub, nil).Seed(context.Background(), tables, Config{Force: true, Batch: 7})
	require.NoError(t, err)
	require.Contains(t, res.Failed, database.RiskTable)
	assert.NotContains(t, res.Inserted, database.RiskTable)
	assert.Equal(t, 250, stub.inserted[database.SpendTable])
	assert.Equal(t, 12, stub.inserted[database.AlertsTable])
}
