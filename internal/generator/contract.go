package generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

const (
	ContractActive  = "Active"
	ContractExpired = "Expired"
	ContractPending = "Pending"
)

var contractTypes = []string{
	"Fixed Price", "Unit Price", "Cost Plus", "GMP", "Time & Materials",
	"Design-Build", "Design-Bid-Build", "CMAR", "IDIQ",
}

var (
	generalContractCategories  = []string{"General Construction", "Design-Build", "Construction Management"}
	fallbackContractCategories = []string{"Specialty Services", "Consulting", "Equipment Rental"}
)

// ContractStatus derives a contract's status from its dates.
func ContractStatus(start, end, now time.Time) string {
	switch {
	case end.Before(now):
		return ContractExpired
	case start.After(now):
		return ContractPending
	default:
		return ContractActive
	}
}

// InferContractCategory maps a supplier name onto a contract category by keyword. pick
// chooses among the candidates when a keyword group has more than one.
func InferContractCategory(supplier string, pick func([]string) string) string {
	switch {
	case strings.Contains(supplier, "Construction") || strings.Contains(supplier, "Building"):
		return pick(generalContractCategories)
	case strings.Contains(supplier, "Steel") || strings.Contains(supplier, "Concrete") ||
		strings.Contains(supplier, "Materials"):
		return "Material Supply"
	case strings.Contains(supplier, "Electric") || strings.Contains(supplier, "Plumbing") ||
		strings.Contains(supplier, "Mechanical"):
		return "MEP Services"
	default:
		return pick(fallbackContractCategories)
	}
}

func contractDescription(contractType, category string) string {
	switch contractType {
	case "Fixed Price":
		return fmt.Sprintf("Fixed price contract for %s services on project.", category)
	case "GMP":
		return fmt.Sprintf("Guaranteed Maximum Price contract with shared savings for %s.", category)
	case "Cost Plus":
		return fmt.Sprintf("Cost Plus Fixed Fee contract for %s with escalation clauses.", category)
	case "Design-Build":
		return "Design-Build contract covering all design and construction services."
	case "Time & Materials":
		return fmt.Sprintf("Time and Materials contract for %s with not-to-exceed amount.", category)
	default:
		return fmt.Sprintf("Standard %s agreement for %s services.", contractType, category)
	}
}

// Contracts generates n contracts; suppliers repeat.
func (g *Generator) Contracts(n int) []dataset.Contract {
	if n < 0 {
		n = 0
	}
	suppliers := g.universe.SupplierNames()
	projects := g.universe.Projects()
	now := g.now()

	out := make([]dataset.Contract, n)
	for i := range out {
		supplier := g.choice(suppliers)
		start := now.Add(-days(g.intBetween(0, spendWindowDays)))
		end := start.Add(days(g.intBetween(180, 1095)))

		value := g.logNormal(13, 1.2)
		switch g.universe.TierOf(supplier) {
		case refdata.TierPrime:
			value *= g.uniform(1.5, 2.5)
		case refdata.TierMajorSub:
			value *= g.uniform(0.8, 1.4)
		}

		contractType := g.choice(contractTypes)
		category := InferContractCategory(supplier, g.choice)
		project := g.choice(projects)

		out[i] = dataset.Contract{
			Name:             fmt.Sprintf("%s - %s Agreement", firstWords(project, 2), firstWords(supplier, 1)),
			Supplier:         supplier,
			Type:             contractType,
			StartDate:        start,
			EndDate:          end,
			Value:            math.Round(value*100) / 100,
			Status:           ContractStatus(start, end, now),
			Category:         category,
			AutoRenewal:      g.chance(0.3),
			NoticePeriodDays: []int{30, 60, 90}[g.rand.Intn(3)],
			Description:      contractDescription(contractType, category),
		}
	}
	return out
}

func (g *Generator) ContractTable(n int) *dataset.Table {
	return dataset.FromRecords(dataset.ContractSchema, g.Contracts(n))
}
