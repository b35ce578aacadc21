package generator

import (
	"fmt"
	"math"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

const (
	spendWindowDays        = 1095
	concentratedCount      = 10
	concentratedShare      = 0.8
	maxProjectsPerSupplier = 3
)

type logNormalParams struct{ mean, sigma float64 }

var spendAmountParams = map[string]logNormalParams{
	refdata.StructuralMaterials: {10.5, 1.2},
	refdata.MEPSystems:          {10.2, 1.0},
	refdata.BuildingEnvelope:    {9.8, 0.9},
	refdata.Finishes:            {9.2, 1.1},
	refdata.SiteworkFoundations: {10.3, 1.3},
	refdata.SafetyEquipment:     {8.5, 0.8},
}

var defaultAmountParams = logNormalParams{9.5, 1.0}

// Spend generates n spend transactions over the last three years, oldest first.
func (g *Generator) Spend(n int) []dataset.SpendRecord {
	records, _ := g.SpendWithAffinity(n)
	return records
}

// SpendWithAffinity also returns the per-supplier project sets every row was drawn from.
func (g *Generator) SpendWithAffinity(n int) ([]dataset.SpendRecord, map[string][]string) {
	if n < 0 {
		n = 0
	}
	u := g.universe
	now := g.now()
	dates := evenlySpaced(now.Add(-days(spendWindowDays)), now, n)

	categories := u.CategoryNames()
	weights := u.CategoryWeights()
	prefixes := u.InvoicePrefixes()
	terms := u.PaymentTerms()

	suppliers := g.concentratedSuppliers(n)
	affinity := g.projectAffinity(suppliers)

	records := make([]dataset.SpendRecord, n)
	for i := 0; i < n; i++ {
		category := g.weightedChoice(categories, weights)
		subcategory := g.choice(u.Subcategories(category))
		supplier := suppliers[i]
		project := g.choice(affinity[supplier])

		params, ok := spendAmountParams[category]
		if !ok {
			params = defaultAmountParams
		}
		amount := g.logNormal(params.mean, params.sigma)
		if u.TierOf(supplier) == refdata.TierPrime {
			amount *= g.uniform(0.9, 1.3)
		}

		date := dates[i]
		records[i] = dataset.SpendRecord{
			Date:          date,
			InvoiceNumber: fmt.Sprintf("%s-%d", g.choice(prefixes), g.intBetween(10000, 99999)),
			Supplier:      supplier,
			Category:      category,
			Subcategory:   subcategory,
			Project:       project,
			Amount:        math.Round(amount*100) / 100,
			PaymentTerms:  g.choice(terms),
			FiscalYear:    date.Year(),
			FiscalQuarter: (int(date.Month())-1)/3 + 1,
			Description:   fmt.Sprintf("%s for %s", subcategory, project),
		}
	}
	return records, affinity
}

func (g *Generator) SpendTable(n int) *dataset.Table {
	return dataset.FromRecords(dataset.SpendSchema, g.Spend(n))
}

// concentratedSuppliers draws 80% of rows from the ten leading suppliers and the rest
// from the remainder, then shuffles.
func (g *Generator) concentratedSuppliers(n int) []string {
	top := g.universe.Top(concentratedCount)
	rest := g.universe.Rest(concentratedCount)

	nTop := int(float64(n) * concentratedShare)
	if len(rest) == 0 {
		nTop = n
	}

	out := make([]string, 0, n)
	for i := 0; i < nTop; i++ {
		out = append(out, g.choice(top))
	}
	for i := nTop; i < n; i++ {
		out = append(out, g.choice(rest))
	}
	g.shuffle(out)
	return out
}

// projectAffinity assigns each distinct supplier 1-3 distinct projects.
func (g *Generator) projectAffinity(suppliers []string) map[string][]string {
	projects := g.universe.Projects()
	affinity := make(map[string][]string)
	for _, s := range suppliers {
		if _, ok := affinity[s]; ok {
			continue
		}
		affinity[s] = g.sample(projects, g.intBetween(1, maxProjectsPerSupplier))
	}
	return affinity
}
