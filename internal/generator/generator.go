package generator

import (
	"math/rand"
	"time"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

// Generator produces the synthetic procurement datasets. It owns its random stream, so a
// fixed seed and clock give reproducible output. Not safe for concurrent use.
type Generator struct {
	rand     *rand.Rand
	universe *refdata.Universe
	now      func() time.Time

	fullRiskTieBreak bool
}

type Option func(*Generator)

func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rand = rand.New(rand.NewSource(seed)) }
}

func WithSource(src rand.Source) Option {
	return func(g *Generator) { g.rand = rand.New(src) }
}

func WithUniverse(u *refdata.Universe) Option {
	return func(g *Generator) {
		if u != nil {
			g.universe = u
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithFullRiskTieBreak makes the "monitor" note pick its category among all seven risk
// categories instead of the first five.
func WithFullRiskTieBreak() Option {
	return func(g *Generator) { g.fullRiskTieBreak = true }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		universe: refdata.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fork returns a child generator seeded from this one's stream.
func (g *Generator) Fork() *Generator {
	return &Generator{
		rand:             rand.New(rand.NewSource(g.rand.Int63())),
		universe:         g.universe,
		now:              g.now,
		fullRiskTieBreak: g.fullRiskTieBreak,
	}
}

func (g *Generator) Universe() *refdata.Universe { return g.universe }

// Sizes controls the row counts of the sampled datasets.
type Sizes struct {
	Spend       int
	Risk        int
	Performance int
	Contracts   int
	Alerts      int
}

var DefaultSizes = Sizes{Spend: 1000, Risk: 40, Performance: 40, Contracts: 100, Alerts: 50}

// For returns the row count for a dataset name; fixed catalogs and the timeline get 0.
func (s Sizes) For(name string) int {
	switch name {
	case dataset.SpendData:
		return s.Spend
	case dataset.RiskData:
		return s.Risk
	case dataset.PerformanceData:
		return s.Performance
	case dataset.Contracts:
		return s.Contracts
	case dataset.RiskAlerts:
		return s.Alerts
	}
	return 0
}

// All generates every dataset, keyed by dataset name. The timeline is for a random supplier.
func (g *Generator) All(sizes Sizes) map[string]*dataset.Table {
	return map[string]*dataset.Table{
		dataset.SpendData:       g.SpendTable(sizes.Spend),
		dataset.RiskData:        g.RiskTable(sizes.Risk),
		dataset.PerformanceData: g.PerformanceTable(sizes.Performance),
		dataset.Contracts:       g.ContractTable(sizes.Contracts),
		dataset.RiskAlerts:      g.AlertTable(sizes.Alerts),
		dataset.OpportunityData: g.OpportunityTable(),
		dataset.ImprovementData: g.ImprovementTable(),
		dataset.TimelineData:    g.TimelineTable(""),
		dataset.Suppliers:       g.universe.SupplierTable(),
		dataset.Categories:      g.universe.CategoryTable(),
	}
}

// Table generates a single dataset by name. n is ignored for the fixed catalogs.
func (g *Generator) Table(name string, n int) (*dataset.Table, error) {
	switch name {
	case dataset.SpendData:
		return g.SpendTable(n), nil
	case dataset.RiskData:
		return g.RiskTable(n), nil
	case dataset.PerformanceData:
		return g.PerformanceTable(n), nil
	case dataset.Contracts:
		return g.ContractTable(n), nil
	case dataset.RiskAlerts:
		return g.AlertTable(n), nil
	case dataset.OpportunityData:
		return g.OpportunityTable(), nil
	case dataset.ImprovementData:
		return g.ImprovementTable(), nil
	case dataset.TimelineData:
		return g.TimelineTable(""), nil
	case dataset.Suppliers:
		return g.universe.SupplierTable(), nil
	case dataset.Categories:
		return g.universe.CategoryTable(), nil
	}
	_, err := dataset.Lookup(name)
	return nil, err
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }
