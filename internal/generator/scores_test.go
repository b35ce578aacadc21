package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

func inRange(t *testing.T, name string, v float64) {
	t.Helper()
	assert.GreaterOrEqual(t, v, 1.0, name)
	assert.LessOrEqual(t, v, 10.0, name)
	assert.Equal(t, v, math.Round(v*10)/10, "%s not rounded to one decimal", name)
}

func TestRiskAssessments(t *testing.T) {
	g := newTestGenerator(21)
	records := g.RiskAssessments(200)
	require.Len(t, records, 46, "clamped to the supplier pool")

	seen := map[string]bool{}
	for _, r := range records {
		assert.False(t, seen[r.Supplier], "duplicate supplier %s", r.Supplier)
		seen[r.Supplier] = true

		s := r.Scores
		for name, v := range map[string]float64{
			"financial": s.Financial, "operational": s.Operational, "compliance": s.Compliance,
			"geopolitical": s.Geopolitical, "environmental": s.Environmental, "social": s.Social,
			"governance": s.Governance, "material_delay": r.MaterialDelayProbability,
			"schedule_impact": r.ScheduleImpact, "quality": r.QualityConsistency,
			"financial_stability": r.FinancialStability, "safety": r.SafetyCompliance,
		} {
			inRange(t, name, v)
		}

		want := math.Round((0.20*s.Financial+0.20*s.Operational+0.15*s.Compliance+
			0.10*s.Geopolitical+0.10*s.Environmental+0.10*s.Social+0.15*s.Governance)*10) / 10
		assert.InDelta(t, want, r.Overall, 1e-9)
		assert.GreaterOrEqual(t, r.Overall, 1.0)
		assert.LessOrEqual(t, r.Overall, 10.0)

		assert.Equal(t, g.Universe().TierOf(r.Supplier).Label(), r.Tier)
		assert.NotEmpty(t, r.Notes)
		assert.False(t, r.AssessmentDate.After(fixedNow))
		assert.False(t, r.AssessmentDate.Before(fixedNow.Add(-days(180))))
	}
}

func TestRiskScenarioFiveRows(t *testing.T) {
	tbl := newTestGenerator(22).RiskTable(5)
	require.Equal(t, 5, tbl.Len())

	prime := map[string]bool{}
	for _, s := range refdata.Default().Top(5) {
		prime[s] = true
	}
	for i := 0; i < tbl.Len(); i++ {
		overall, ok := tbl.Float(i, "overall_risk")
		require.True(t, ok)
		assert.GreaterOrEqual(t, overall, 1.0)
		assert.LessOrEqual(t, overall, 10.0)
		if prime[tbl.Text(i, "supplier")] {
			assert.Equal(t, "Tier 1 (Prime)", tbl.Text(i, "tier"))
		}
	}
}

func TestRiskNotes(t *testing.T) {
	base := dataset.RiskAssessment{Scores: dataset.RiskScores{
		Financial: 3, Operational: 3, Compliance: 3, Geopolitical: 3, Environmental: 3, Social: 3, Governance: 3,
	}, SafetyCompliance: 3}

	t.Run("elevated categories", func(t *testing.T) {
		r := base
		r.Scores.Financial = 8.1
		r.SafetyCompliance = 7.5
		notes := riskNotes(r, false)
		assert.Contains(t, notes, "Financial stability concerns")
		assert.Contains(t, notes, "safety incidents")
		assert.NotContains(t, notes, "Monitor")
	})

	t.Run("exactly seven is not elevated", func(t *testing.T) {
		r := base
		r.Scores.Operational = 7.0
		assert.Equal(t, "Monitor operational risk indicators for potential changes.", riskNotes(r, false))
	})

	t.Run("ties go to the earlier category", func(t *testing.T) {
		r := base
		r.Scores.Compliance = 6
		r.Scores.Environmental = 6
		assert.Equal(t, "Monitor compliance risk indicators for potential changes.", riskNotes(r, false))
	})

	t.Run("elevated secondary categories only get a monitoring note", func(t *testing.T) {
		r := base
		r.Scores.Geopolitical = 8
		assert.Equal(t, "Monitor geopolitical risk indicators for potential changes.", riskNotes(r, false))

		r = base
		r.Scores.Governance = 9.2
		assert.Equal(t, "Monitor financial risk indicators for potential changes.", riskNotes(r, false))
		assert.Equal(t, "Monitor governance risk indicators for potential changes.", riskNotes(r, true))
	})

	t.Run("social and governance excluded by default", func(t *testing.T) {
		r := base
		r.Scores.Governance = 6.9
		assert.Equal(t, "Monitor financial risk indicators for potential changes.", riskNotes(r, false))
		assert.Equal(t, "Monitor governance risk indicators for potential changes.", riskNotes(r, true))
	})
}

func TestFullRiskTieBreakOption(t *testing.T) {
	records := newTestGenerator(23, WithFullRiskTieBreak()).RiskAssessments(46)
	for _, r := range records {
		if strings.HasPrefix(r.Notes, "Monitor") {
			assert.Equal(t, riskNotes(r, true), r.Notes)
		}
	}
}

func TestPerformanceEvaluations(t *testing.T) {
	g := newTestGenerator(31)
	records := g.PerformanceEvaluations(46)
	require.Len(t, records, 46)

	profiles := map[refdata.Tier]string{
		refdata.TierPrime:     GeneralContractor,
		refdata.TierMajorSub:  SpecialtyContractor,
		refdata.TierSpecialty: MaterialSupplier,
	}

	seen := map[string]bool{}
	for _, r := range records {
		assert.False(t, seen[r.Supplier])
		seen[r.Supplier] = true

		s := r.Scores
		for name, v := range map[string]float64{
			"schedule": s.ScheduleAdherence, "quality": s.WorkQuality, "cost": s.CostControl,
			"safety": s.SafetyPerformance, "documentation": s.Documentation,
			"communication": s.Communication, "resolution": s.ProblemResolution,
		} {
			inRange(t, name, v)
		}
		want := 0.20*s.ScheduleAdherence + 0.20*s.WorkQuality + 0.15*s.CostControl +
			0.15*s.SafetyPerformance + 0.10*s.Documentation + 0.10*s.Communication + 0.10*s.ProblemResolution
		assert.InDelta(t, want, r.Overall, 0.05+1e-9)

		tier := g.Universe().TierOf(r.Supplier)
		assert.Equal(t, profiles[tier], r.SupplierType)
		p := tierProfiles[tier]
		assert.GreaterOrEqual(t, r.AnnualSpend, p.spendLo)
		assert.LessOrEqual(t, r.AnnualSpend, p.spendHi)
		assert.GreaterOrEqual(t, r.ActiveProjects, p.projectsLo)
		assert.LessOrEqual(t, r.ActiveProjects, p.projectsHi)
		assert.Contains(t, p.relationships, r.RelationshipLength)
		assert.Contains(t, evaluators, r.Evaluator)
		assert.Contains(t, g.Universe().CategoryNames(), r.Category)
	}
}

func TestPerformanceComments(t *testing.T) {
	good := dataset.PerformanceScores{
		ScheduleAdherence: 9, WorkQuality: 9, CostControl: 9, SafetyPerformance: 9,
		Documentation: 9, Communication: 9, ProblemResolution: 9,
	}

	tests := []struct {
		name    string
		overall float64
		mutate  func(*dataset.PerformanceScores)
		want    string
	}{
		{"exceptional", 8.5, nil, "Exceptional performer across all categories."},
		{"strong", 7.5, nil, "Strong performance with consistent quality."},
		{"meets", 6.0, nil, "Meets expectations with some areas for improvement."},
		{"issues", 4.0, nil, "Several performance issues identified requiring attention."},
		{"concerns", 3.9, nil, "Significant performance concerns across multiple areas."},
		{"first weak dimension only", 6.5, func(s *dataset.PerformanceScores) {
			s.WorkQuality = 4.9
			s.SafetyPerformance = 2
		}, "Meets expectations with some areas for improvement. Quality issues requiring rework have been documented."},
		{"schedule wins", 6.5, func(s *dataset.PerformanceScores) {
			s.ScheduleAdherence = 4
			s.CostControl = 4
		}, "Meets expectations with some areas for improvement. Persistent schedule delays affecting project timeline."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			if tt.mutate != nil {
				tt.mutate(&s)
			}
			assert.Equal(t, tt.want, performanceComments(tt.overall, s))
		})
	}
}
