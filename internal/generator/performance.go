package generator

import (
	"math"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

const performanceWindowDays = 365

const (
	GeneralContractor   = "General Contractor"
	SpecialtyContractor = "Specialty Contractor"
	MaterialSupplier    = "Material Supplier"
)

var evaluators = []string{"Project Manager", "Construction Director", "Procurement Lead"}

type tierProfile struct {
	supplierType  string
	relationships []string
	relWeights    []float64
	spendLo       float64
	spendHi       float64
	projectsLo    int
	projectsHi    int
}

var tierProfiles = map[refdata.Tier]tierProfile{
	refdata.TierPrime: {
		supplierType:  GeneralContractor,
		relationships: []string{"5+ years", "3-5 years", "1-3 years"},
		relWeights:    []float64{0.6, 0.3, 0.1},
		spendLo:       1_000_000,
		spendHi:       5_000_000,
		projectsLo:    2,
		projectsHi:    6,
	},
	refdata.TierMajorSub: {
		supplierType:  SpecialtyContractor,
		relationships: []string{"5+ years", "3-5 years", "1-3 years", "<1 year"},
		relWeights:    []float64{0.3, 0.4, 0.2, 0.1},
		spendLo:       500_000,
		spendHi:       2_000_000,
		projectsLo:    1,
		projectsHi:    4,
	},
	refdata.TierSpecialty: {
		supplierType:  MaterialSupplier,
		relationships: []string{"5+ years", "3-5 years", "1-3 years", "<1 year"},
		relWeights:    []float64{0.2, 0.3, 0.4, 0.1},
		spendLo:       100_000,
		spendHi:       1_000_000,
		projectsLo:    1,
		projectsHi:    3,
	},
}

// OverallPerformance is the fixed weighted composite of the seven evaluation dimensions.
func OverallPerformance(s dataset.PerformanceScores) float64 {
	return round1(0.20*s.ScheduleAdherence + 0.20*s.WorkQuality + 0.15*s.CostControl +
		0.15*s.SafetyPerformance + 0.10*s.Documentation + 0.10*s.Communication + 0.10*s.ProblemResolution)
}

// PerformanceEvaluations evaluates min(n, suppliers) distinct suppliers.
func (g *Generator) PerformanceEvaluations(n int) []dataset.PerformanceEvaluation {
	suppliers := g.sample(g.universe.SupplierNames(), n)
	categories := g.universe.CategoryNames()
	weights := g.universe.CategoryWeights()
	now := g.now()

	out := make([]dataset.PerformanceEvaluation, len(suppliers))
	for i, supplier := range suppliers {
		evaluated := now.Add(-days(performanceWindowDays)).Add(days(g.intBetween(0, performanceWindowDays)))
		scores := dataset.PerformanceScores{
			ScheduleAdherence: g.score(7.2, 1.5),
			WorkQuality:       g.score(7.5, 1.3),
			CostControl:       g.score(6.8, 1.7),
			SafetyPerformance: g.score(7.8, 1.6),
			Documentation:     g.score(6.5, 1.4),
			Communication:     g.score(7.0, 1.5),
			ProblemResolution: g.score(6.9, 1.6),
		}
		overall := OverallPerformance(scores)
		profile := tierProfiles[g.universe.TierOf(supplier)]

		out[i] = dataset.PerformanceEvaluation{
			Supplier:           supplier,
			SupplierType:       profile.supplierType,
			Category:           g.weightedChoice(categories, weights),
			EvaluationDate:     evaluated,
			Scores:             scores,
			Overall:            overall,
			RelationshipLength: g.weightedChoice(profile.relationships, profile.relWeights),
			AnnualSpend:        math.Round(g.uniform(profile.spendLo, profile.spendHi)),
			ActiveProjects:     g.intBetween(profile.projectsLo, profile.projectsHi),
			Comments:           performanceComments(overall, scores),
			Evaluator:          g.choice(evaluators),
		}
	}
	return out
}

func (g *Generator) PerformanceTable(n int) *dataset.Table {
	return dataset.FromRecords(dataset.PerformanceSchema, g.PerformanceEvaluations(n))
}

// performanceComments reports the overall band and at most one weak dimension.
func performanceComments(overall float64, s dataset.PerformanceScores) string {
	var comment string
	switch {
	case overall >= 8.5:
		comment = "Exceptional performer across all categories."
	case overall >= 7.5:
		comment = "Strong performance with consistent quality."
	case overall >= 6.0:
		comment = "Meets expectations with some areas for improvement."
	case overall >= 4.0:
		comment = "Several performance issues identified requiring attention."
	default:
		comment = "Significant performance concerns across multiple areas."
	}

	switch {
	case s.ScheduleAdherence < 5.0:
		comment += " Persistent schedule delays affecting project timeline."
	case s.WorkQuality < 5.0:
		comment += " Quality issues requiring rework have been documented."
	case s.CostControl < 5.0:
		comment += " Budget overruns on multiple work packages."
	case s.SafetyPerformance < 5.0:
		comment += " Safety protocol compliance needs immediate improvement."
	}
	return comment
}
