package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/arcadia/internal/config"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/generator"
)

var fixedNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

type fakeStore struct {
	schemaErr error
	fetchErr  error
	tables    map[string]*dataset.Table
	calls     int
}

func (f *fakeStore) CheckSchema(ctx context.Context) error {
	f.calls++
	return f.schemaErr
}

func (f *fakeStore) All(ctx context.Context) (map[string]*dataset.Table, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make(map[string]*dataset.Table, len(f.tables))
	for k, v := range f.tables {
		out[k] = v
	}
	return out, nil
}

func testConfig(mock bool) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Seed = 99
	cfg.Database.UseMockData = mock
	cfg.MockDataSize = config.MockDataSize{SpendData: 120, Suppliers: 12, Contracts: 20, RiskAlerts: 15}
	return cfg
}

func clock() time.Time { return fixedNow }

func TestLoadSynthetic(t *testing.T) {
	store := &fakeStore{}
	l := New(testConfig(true), WithStore(store), WithClock(clock))

	b, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSynthetic, b.Source)
	assert.Equal(t, "mock data enabled", b.Reason)
	assert.Zero(t, store.calls, "mock mode never touches the store")
	assert.Equal(t, dataset.Names(), b.Names())

	counts := b.RowCounts()
	assert.Equal(t, 120, counts[dataset.SpendData])
	assert.Equal(t, 12, counts[dataset.RiskData])
	assert.Equal(t, 12, counts[dataset.PerformanceData])
	assert.Equal(t, 20, counts[dataset.Contracts])
	assert.Equal(t, 15, counts[dataset.RiskAlerts])
	assert.Equal(t, 10, counts[dataset.OpportunityData])
}

func TestLoadNoStore(t *testing.T) {
	b, err := New(testConfig(false), WithClock(clock)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSynthetic, b.Source)
	assert.Equal(t, ErrNoStore.Error(), b.Reason)
}

func TestLoadFallsBackOnStoreFailure(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{"schema", &fakeStore{schemaErr: errors.New("missing tables: contracts")}},
		{"fetch", &fakeStore{fetchErr: errors.New("connection refused")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(testConfig(false), WithStore(tt.store), WithClock(clock)).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, SourceSynthetic, b.Source)
			assert.NotEmpty(t, b.Reason)
			assert.Equal(t, 120, b.RowCounts()[dataset.SpendData])
		})
	}
}

func TestLoadFromStore(t *testing.T) {
	g := generator.New(generator.WithSeed(5), generator.WithClock(clock))
	store := &fakeStore{tables: map[string]*dataset.Table{
		dataset.SpendData:       g.SpendTable(7),
		dataset.RiskData:        g.RiskTable(3),
		dataset.PerformanceData: g.PerformanceTable(3),
		dataset.Contracts:       g.ContractTable(4),
		dataset.RiskAlerts:      g.AlertTable(2),
		dataset.Suppliers:       g.Universe().SupplierTable(),
		dataset.Categories:      g.Universe().CategoryTable(),
	}}

	b, err := New(testConfig(false), WithStore(store), WithClock(clock)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, b.Source)
	assert.Empty(t, b.Reason)
	assert.Equal(t, 7, b.RowCounts()[dataset.SpendData])
	assert.Equal(t, 10, b.RowCounts()[dataset.ImprovementData], "catalogs are always generated")
	assert.Greater(t, b.RowCounts()[dataset.TimelineData], 0)
	assert.Equal(t, fixedNow, b.GeneratedAt)
}

func TestLoadCaches(t *testing.T) {
	store := &fakeStore{schemaErr: errors.New("down")}
	l := New(testConfig(false), WithStore(store), WithClock(clock))
	ctx := context.Background()

	first, err := l.Load(ctx)
	require.NoError(t, err)
	second, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, 1, store.calls, "source decided once per TTL")

	require.NoError(t, l.Invalidate(ctx))
	third, err := l.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, third.RunID)
	assert.Equal(t, 2, store.calls)
}

func TestMemoryCacheExpires(t *testing.T) {
	now := fixedNow
	c := &memoryCache{now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &Bundle{Source: SourceSynthetic}, time.Minute))
	_, ok, _ := c.Get(ctx)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx)
	assert.False(t, ok)
}

func TestLoadExpiresWithLoaderClock(t *testing.T) {
	now := fixedNow
	cfg := testConfig(true)
	cfg.Cache.TTL = time.Minute
	l := New(cfg, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	first, err := l.Load(ctx)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	second, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.RunID, second.RunID)

	now = now.Add(30 * time.Second)
	third, err := l.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, third.RunID)
	assert.Equal(t, now, third.GeneratedAt)
}

func TestBundleEncoding(t *testing.T) {
	b, err := New(testConfig(true), WithClock(clock)).Load(context.Background())
	require.NoError(t, err)

	data, err := encodeBundle(b)
	require.NoError(t, err)
	decoded, err := decodeBundle(data)
	require.NoError(t, err)

	assert.Equal(t, b.RunID, decoded.RunID)
	assert.Equal(t, b.Source, decoded.Source)
	assert.Equal(t, b.RowCounts(), decoded.RowCounts())
	when, ok := decoded.Tables[dataset.SpendData].Time(0, "date")
	assert.True(t, ok)
	assert.False(t, when.IsZero())

	_, err = decodeBundle([]byte("{"))
	assert.Error(t, err)
}

func TestBundleTable(t *testing.T) {
	b := &Bundle{Tables: map[string]*dataset.Table{dataset.Contracts: dataset.NewTable(dataset.ContractSchema, nil)}}
	_, err := b.Table(dataset.Contracts)
	assert.NoError(t, err)

	_, err = b.Table(dataset.SpendData)
	assert.ErrorIs(t, err, dataset.ErrUnknownDataset)

	_, err = b.Table("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownDataset)
}

func TestUnreachableRedisStillLoads(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := New(testConfig(true), WithCache(NewRedisCache(client, "arcadia:test:")), WithClock(clock))
	b, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSynthetic, b.Source)
}
