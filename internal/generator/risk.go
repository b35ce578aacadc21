package generator

import (
	"fmt"
	"strings"

	"github.com/Rana718/arcadia/internal/dataset"
)

const riskWindowDays = 180

// OverallRisk is the fixed weighted composite of the seven risk categories.
func OverallRisk(s dataset.RiskScores) float64 {
	return round1(0.20*s.Financial + 0.20*s.Operational + 0.15*s.Compliance +
		0.10*s.Geopolitical + 0.10*s.Environmental + 0.10*s.Social + 0.15*s.Governance)
}

// RiskAssessments scores min(n, suppliers) distinct suppliers.
func (g *Generator) RiskAssessments(n int) []dataset.RiskAssessment {
	suppliers := g.sample(g.universe.SupplierNames(), n)
	now := g.now()

	out := make([]dataset.RiskAssessment, len(suppliers))
	for i, supplier := range suppliers {
		assessed := now.Add(-days(riskWindowDays)).Add(days(g.intBetween(0, riskWindowDays)))

		scores := dataset.RiskScores{
			Financial:     g.score(5.2, 1.8),
			Operational:   g.score(4.8, 1.5),
			Compliance:    g.score(4.5, 1.7),
			Geopolitical:  g.score(4.2, 1.3),
			Environmental: g.score(4.0, 1.6),
			Social:        g.score(3.8, 1.4),
			Governance:    g.score(3.5, 1.5),
		}
		r := dataset.RiskAssessment{
			Supplier:                 supplier,
			AssessmentDate:           assessed,
			Tier:                     g.universe.TierOf(supplier).Label(),
			Scores:                   scores,
			Overall:                  OverallRisk(scores),
			MaterialDelayProbability: g.score(6.2, 1.7),
			ScheduleImpact:           g.score(5.8, 1.8),
			QualityConsistency:       g.score(4.9, 1.5),
			FinancialStability:       g.score(5.5, 1.6),
			SafetyCompliance:         g.score(4.2, 1.9),
		}
		r.Notes = riskNotes(r, g.fullRiskTieBreak)
		out[i] = r
	}
	return out
}

func (g *Generator) RiskTable(n int) *dataset.Table {
	return dataset.FromRecords(dataset.RiskSchema, g.RiskAssessments(n))
}

type riskCategory struct {
	name     string
	score    func(dataset.RiskAssessment) float64
	sentence string
}

// Order matters: it is both the note order and the tie-break order.
// Only the first three categories carry an elevated-score sentence.
var riskCategories = []riskCategory{
	{"financial", func(r dataset.RiskAssessment) float64 { return r.Scores.Financial },
		"Financial stability concerns due to overextended project commitments."},
	{"operational", func(r dataset.RiskAssessment) float64 { return r.Scores.Operational },
		"History of materials delivery delays affecting project timelines."},
	{"compliance", func(r dataset.RiskAssessment) float64 { return r.Scores.Compliance },
		"Previous permit compliance issues identified in regulatory reviews."},
	{"geopolitical", func(r dataset.RiskAssessment) float64 { return r.Scores.Geopolitical }, ""},
	{"environmental", func(r dataset.RiskAssessment) float64 { return r.Scores.Environmental }, ""},
	{"social", func(r dataset.RiskAssessment) float64 { return r.Scores.Social }, ""},
	{"governance", func(r dataset.RiskAssessment) float64 { return r.Scores.Governance }, ""},
}

const safetyNote = "Multiple safety incidents reported in past 12 months."

// riskNotes writes a sentence for each elevated financial, operational or compliance score and
// for elevated safety compliance, otherwise a monitoring note for the highest category.
// The tie-break covers the first five categories unless all is set.
func riskNotes(r dataset.RiskAssessment, all bool) string {
	var notes []string
	for _, c := range riskCategories {
		if c.sentence != "" && c.score(r) > 7 {
			notes = append(notes, c.sentence)
		}
	}
	if r.SafetyCompliance > 7 {
		notes = append(notes, safetyNote)
	}
	if len(notes) > 0 {
		return strings.Join(notes, " ")
	}

	candidates := riskCategories[:5]
	if all {
		candidates = riskCategories
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.score(r) > top.score(r) {
			top = c
		}
	}
	return fmt.Sprintf("Monitor %s risk indicators for potential changes.", top.name)
}
