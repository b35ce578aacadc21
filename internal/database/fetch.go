package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

var ErrMissingTables = errors.New("missing tables")

// Store table names, in the order CheckSchema reports them.
const (
	SuppliersTable   = "suppliers"
	CategoriesTable  = "categories"
	SpendTable       = "spend_data"
	RiskTable        = "risk_assessments"
	PerformanceTable = "supplier_performance"
	ContractsTable   = "contracts"
	AlertsTable      = "risk_alerts"
)

var storeSchemas = []struct {
	table  string
	schema dataset.Schema
}{
	{SuppliersTable, dataset.SupplierSchema},
	{CategoriesTable, dataset.CategorySchema},
	{SpendTable, dataset.SpendSchema},
	{RiskTable, dataset.RiskSchema},
	{PerformanceTable, dataset.PerformanceSchema},
	{ContractsTable, dataset.ContractSchema},
	{AlertsTable, dataset.AlertSchema},
}

func StoreTables() []string {
	names := make([]string, len(storeSchemas))
	for i, s := range storeSchemas {
		names[i] = s.table
	}
	return names
}

// StoreTable maps a dataset name to the table that holds it.
func StoreTable(datasetName string) (string, bool) {
	for _, s := range storeSchemas {
		if s.schema.Name == datasetName {
			return s.table, true
		}
	}
	return "", false
}

type SpendFilter struct {
	Supplier string
	Category string
	From     time.Time
	To       time.Time
}

type ContractFilter struct {
	Supplier string
	Status   string
}

type AlertFilter struct {
	Supplier string
	Severity string
	Status   string
}

// Fetcher reads entity tables from a backing store into the same shape the generator emits.
type Fetcher struct {
	adapter Adapter
}

func NewFetcher(adapter Adapter) *Fetcher {
	return &Fetcher{adapter: adapter}
}

func (f *Fetcher) Adapter() Adapter {
	return f.adapter
}

func (f *Fetcher) CheckSchema(ctx context.Context) error {
	missing, err := f.adapter.MissingTables(ctx, StoreTables())
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTables, strings.Join(missing, ", "))
	}
	return nil
}

func (f *Fetcher) Suppliers(ctx context.Context) (*dataset.Table, error) {
	return f.fetch(ctx, SuppliersTable, dataset.SupplierSchema, common.Query{OrderBy: "name"})
}

func (f *Fetcher) Categories(ctx context.Context) (*dataset.Table, error) {
	return f.fetch(ctx, CategoriesTable, dataset.CategorySchema, common.Query{OrderBy: "name"})
}

func (f *Fetcher) Spend(ctx context.Context, filter SpendFilter) (*dataset.Table, error) {
	return f.fetch(ctx, SpendTable, dataset.SpendSchema, common.Query{
		Where:      where("supplier", filter.Supplier, "category", filter.Category),
		DateColumn: "date",
		From:       filter.From,
		To:         filter.To,
		OrderBy:    "date",
		Desc:       true,
	})
}

func (f *Fetcher) RiskAssessments(ctx context.Context, supplier string) (*dataset.Table, error) {
	return f.fetch(ctx, RiskTable, dataset.RiskSchema, common.Query{
		Where:   where("supplier", supplier),
		OrderBy: "assessment_date",
		Desc:    true,
	})
}

func (f *Fetcher) Performance(ctx context.Context, supplier string) (*dataset.Table, error) {
	return f.fetch(ctx, PerformanceTable, dataset.PerformanceSchema, common.Query{
		Where:   where("supplier", supplier),
		OrderBy: "evaluation_date",
		Desc:    true,
	})
}

func (f *Fetcher) Contracts(ctx context.Context, filter ContractFilter) (*dataset.Table, error) {
	return f.fetch(ctx, ContractsTable, dataset.ContractSchema, common.Query{
		Where:   where("supplier", filter.Supplier, "status", filter.Status),
		OrderBy: "end_date",
	})
}

func (f *Fetcher) RiskAlerts(ctx context.Context, filter AlertFilter) (*dataset.Table, error) {
	return f.fetch(ctx, AlertsTable, dataset.AlertSchema, common.Query{
		Where:   where("supplier", filter.Supplier, "severity", filter.Severity, "status", filter.Status),
		OrderBy: "date",
		Desc:    true,
	})
}

// All reads every store table unfiltered, keyed by dataset name. Tables are fetched
// concurrently; the first error in store order wins.
func (f *Fetcher) All(ctx context.Context) (map[string]*dataset.Table, error) {
	type fetchFn func(context.Context) (*dataset.Table, error)
	steps := []struct {
		name string
		fn   fetchFn
	}{
		{dataset.Suppliers, f.Suppliers},
		{dataset.Categories, f.Categories},
		{dataset.SpendData, func(ctx context.Context) (*dataset.Table, error) { return f.Spend(ctx, SpendFilter{}) }},
		{dataset.RiskData, func(ctx context.Context) (*dataset.Table, error) { return f.RiskAssessments(ctx, "") }},
		{dataset.PerformanceData, func(ctx context.Context) (*dataset.Table, error) { return f.Performance(ctx, "") }},
		{dataset.Contracts, func(ctx context.Context) (*dataset.Table, error) { return f.Contracts(ctx, ContractFilter{}) }},
		{dataset.RiskAlerts, func(ctx context.Context) (*dataset.Table, error) { return f.RiskAlerts(ctx, AlertFilter{}) }},
	}

	type tableResult struct {
		idx   int
		table *dataset.Table
		err   error
	}

	results := make(chan tableResult, len(steps))
	var wg sync.WaitGroup

	for i, step := range steps {
		wg.Add(1)
		go func(idx int, fn fetchFn) {
			defer wg.Done()
			t, err := fn(ctx)
			results <- tableResult{idx, t, err}
		}(i, step.fn)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	fetched := make([]*dataset.Table, len(steps))
	errs := make([]error, len(steps))
	for result := range results {
		fetched[result.idx] = result.table
		errs[result.idx] = result.err
	}

	tables := make(map[string]*dataset.Table, len(steps))
	for i, step := range steps {
		if errs[i] != nil {
			return nil, errs[i]
		}
		tables[step.name] = fetched[i]
	}
	return tables, nil
}

func (f *Fetcher) fetch(ctx context.Context, table string, schema dataset.Schema, q common.Query) (*dataset.Table, error) {
	q.Table = table
	q.Columns = schema.ColumnNames()

	res, err := f.adapter.Select(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	return toTable(schema, res), nil
}

// toTable coerces every cell to its column kind; cells that cannot be coerced become nil.
func toTable(schema dataset.Schema, res *common.QueryResult) *dataset.Table {
	t := dataset.NewTable(schema, nil)
	if res == nil {
		return t
	}
	for _, raw := range res.Rows {
		row := make(dataset.Row, len(schema.Columns))
		for _, c := range schema.Columns {
			v, err := dataset.Coerce(c.Kind, raw[c.Name])
			if err != nil {
				v = nil
			}
			row[c.Name] = v
		}
		t.Append(row)
	}
	return t
}

// where pairs keys and values, skipping empty values.
func where(pairs ...string) map[string]interface{} {
	out := make(map[string]interface{})
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out[pairs[i]] = pairs[i+1]
		}
	}
	return out
}
