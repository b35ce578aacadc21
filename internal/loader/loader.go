package loader

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/config"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/generator"
	"github.com/Rana718/arcadia/internal/logger"
	"github.com/Rana718/arcadia/internal/metrics"
)

var ErrNoStore = errors.New("no backing store configured")

// Store is the backing-store side of a load; *database.Fetcher satisfies it.
type Store interface {
	CheckSchema(ctx context.Context) error
	All(ctx context.Context) (map[string]*dataset.Table, error)
}

type Loader struct {
	cfg          *config.Config
	store        Store
	cache        Cache
	log          *zap.Logger
	newGenerator func() *generator.Generator
	now          func() time.Time

	mu sync.Mutex
}

type Option func(*Loader)

func WithStore(s Store) Option {
	return func(l *Loader) { l.store = s }
}

func WithCache(c Cache) Option {
	return func(l *Loader) {
		if c != nil {
			l.cache = c
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = logger.OrNop(log) }
}

func WithGeneratorFactory(f func() *generator.Generator) Option {
	return func(l *Loader) {
		if f != nil {
			l.newGenerator = f
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

func New(cfg *config.Config, opts ...Option) *Loader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	l := &Loader{
		cfg: cfg,
		log: zap.NewNop(),
		now: time.Now,
	}
	l.newGenerator = func() *generator.Generator {
		opts := []generator.Option{generator.WithClock(l.now)}
		if cfg.Seed != 0 {
			opts = append(opts, generator.WithSeed(cfg.Seed))
		}
		return generator.New(opts...)
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cache == nil {
		l.cache = newMemoryCache(l.now)
	}
	return l
}

// Generator returns a fresh generator for on-demand datasets such as a supplier timeline.
func (l *Loader) Generator() *generator.Generator {
	return l.newGenerator()
}

// Sizes maps the configured mock sizes onto generator sizes.
func (l *Loader) Sizes() generator.Sizes {
	m := l.cfg.MockDataSize
	return generator.Sizes{
		Spend:       m.SpendData,
		Risk:        m.Suppliers,
		Performance: m.Suppliers,
		Contracts:   m.Contracts,
		Alerts:      m.RiskAlerts,
	}
}

// Load returns the cached bundle while it is fresh, otherwise decides the source once
// and builds a new bundle. Store failures never surface: they fall back to synthetic data.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok, err := l.cache.Get(ctx); err != nil {
		l.log.Warn("bundle cache read failed", zap.Error(err))
	} else if ok {
		return b, nil
	}

	b := l.build(ctx)
	metrics.ObserveSource(b.Source)

	if err := l.cache.Set(ctx, b, l.cfg.Cache.TTL); err != nil {
		l.log.Warn("bundle cache write failed", zap.Error(err))
	}
	return b, nil
}

func (l *Loader) Invalidate(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Delete(ctx)
}

func (l *Loader) build(ctx context.Context) *Bundle {
	b := &Bundle{
		RunID:       uuid.New(),
		GeneratedAt: l.now(),
	}

	tables, err := l.fromStore(ctx)
	if err != nil {
		b.Source = SourceSynthetic
		b.Reason = err.Error()
		b.Tables = l.synthetic()
		l.log.Info("using synthetic data",
			zap.String("run_id", b.RunID.String()),
			zap.String("reason", b.Reason))
		return b
	}

	// catalogs and timelines have no store tables
	g := l.newGenerator()
	tables[dataset.OpportunityData] = timed(dataset.OpportunityData, g.OpportunityTable)
	tables[dataset.ImprovementData] = timed(dataset.ImprovementData, g.ImprovementTable)
	tables[dataset.TimelineData] = timed(dataset.TimelineData, func() *dataset.Table { return g.TimelineTable("") })

	b.Source = SourceDatabase
	b.Tables = tables
	l.log.Info("loaded data from backing store", zap.String("run_id", b.RunID.String()))
	return b
}

func (l *Loader) fromStore(ctx context.Context) (map[string]*dataset.Table, error) {
	if l.cfg.Database.UseMockData {
		return nil, errors.New("mock data enabled")
	}
	if l.store == nil {
		return nil, ErrNoStore
	}
	if err := l.store.CheckSchema(ctx); err != nil {
		l.log.Warn("backing store schema check failed", zap.Error(err))
		return nil, err
	}
	tables, err := l.store.All(ctx)
	if err != nil {
		l.log.Warn("backing store fetch failed", zap.Error(err))
		return nil, err
	}
	return tables, nil
}

func (l *Loader) synthetic() map[string]*dataset.Table {
	g := l.newGenerator()
	sizes := l.Sizes()

	tables := make(map[string]*dataset.Table, len(dataset.Names()))
	for _, name := range dataset.Names() {
		n := sizes.For(name)
		tables[name] = timed(name, func() *dataset.Table {
			t, _ := g.Table(name, n)
			return t
		})
	}
	return tables
}

func timed(name string, build func() *dataset.Table) *dataset.Table {
	start := time.Now()
	t := build()
	metrics.ObserveGeneration(name, t.Len(), time.Since(start))
	return t
}
