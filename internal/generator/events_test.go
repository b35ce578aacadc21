package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/arcadia/internal/dataset"
)

func TestContracts(t *testing.T) {
	g := newTestGenerator(41)
	records := g.Contracts(300)
	require.Len(t, records, 300)

	perSupplier := map[string]int{}
	for _, c := range records {
		perSupplier[c.Supplier]++
		assert.True(t, c.EndDate.After(c.StartDate))
		assert.Equal(t, ContractStatus(c.StartDate, c.EndDate, fixedNow), c.Status)
		switch {
		case c.EndDate.Before(fixedNow):
			assert.Equal(t, ContractExpired, c.Status)
		case c.StartDate.After(fixedNow):
			assert.Equal(t, ContractPending, c.Status)
		default:
			assert.Equal(t, ContractActive, c.Status)
		}
		assert.Greater(t, c.Value, 0.0)
		assert.Contains(t, []int{30, 60, 90}, c.NoticePeriodDays)
		assert.Contains(t, contractTypes, c.Type)
		assert.True(t, strings.HasSuffix(c.Name, " Agreement"), c.Name)
		assert.NotEmpty(t, c.Description)

		duration := c.EndDate.Sub(c.StartDate)
		assert.GreaterOrEqual(t, duration, days(180))
		assert.LessOrEqual(t, duration, days(1095))
	}

	repeated := false
	for _, n := range perSupplier {
		if n > 1 {
			repeated = true
		}
	}
	assert.True(t, repeated, "suppliers are drawn with replacement")
}

func TestContractScenarioEmpty(t *testing.T) {
	tbl := newTestGenerator(42).ContractTable(0)
	assert.Equal(t, 0, tbl.Len())
	assert.Len(t, tbl.Columns, 11)
}

func TestContractStatus(t *testing.T) {
	now := fixedNow
	assert.Equal(t, ContractExpired, ContractStatus(now.AddDate(-2, 0, 0), now.AddDate(0, 0, -1), now))
	assert.Equal(t, ContractPending, ContractStatus(now.AddDate(0, 0, 1), now.AddDate(1, 0, 0), now))
	assert.Equal(t, ContractActive, ContractStatus(now, now.AddDate(1, 0, 0), now))
	assert.Equal(t, ContractActive, ContractStatus(now.AddDate(-1, 0, 0), now, now))
}

func TestInferContractCategory(t *testing.T) {
	first := func(items []string) string { return items[0] }
	last := func(items []string) string { return items[len(items)-1] }

	tests := []struct {
		supplier string
		pick     func([]string) string
		want     string
	}{
		{"Turner Construction", first, "General Construction"},
		{"Gilbane Building", last, "Construction Management"},
		{"Acme Steel", first, "Material Supply"},
		{"Ready Concrete Co", first, "Material Supply"},
		{"Bay Materials", first, "Material Supply"},
		{"Volt Electric", first, "MEP Services"},
		{"Rapid Plumbing", first, "MEP Services"},
		{"Mechanical Partners", first, "MEP Services"},
		{"AECOM", first, "Specialty Services"},
		{"AECOM", last, "Equipment Rental"},
		{"Steel Construction", first, "General Construction"},
	}
	for _, tt := range tests {
		t.Run(tt.supplier, func(t *testing.T) {
			assert.Equal(t, tt.want, InferContractCategory(tt.supplier, tt.pick))
		})
	}
}

func TestContractDescription(t *testing.T) {
	assert.Equal(t, "Fixed price contract for Consulting services on project.", contractDescription("Fixed Price", "Consulting"))
	assert.Equal(t, "Design-Build contract covering all design and construction services.", contractDescription("Design-Build", "x"))
	assert.Equal(t, "Standard IDIQ agreement for MEP Services services.", contractDescription("IDIQ", "MEP Services"))
}

func TestRiskAlerts(t *testing.T) {
	g := newTestGenerator(51)
	records := g.RiskAlerts(400)
	require.Len(t, records, 400)

	statuses := map[string][]string{
		"young": {"Open", "Acknowledged"},
	}
	for _, a := range records {
		assert.Contains(t, severities, a.Severity)
		assert.Contains(t, impactBySeverity[a.Severity].values, a.ProjectImpact)
		assert.Contains(t, g.Universe().AlertTypes(), a.AlertType)
		assert.NotEmpty(t, a.Description)
		assert.NotContains(t, a.Description, "requires attention", "every known type has its own template")

		age := fixedNow.Sub(a.Date)
		assert.LessOrEqual(t, age, days(90))
		assert.Greater(t, age, time.Duration(0))
		if age < days(7) {
			assert.Contains(t, statuses["young"], a.Status)
		} else {
			assert.Contains(t, []string{"Open", "Acknowledged", "Resolved"}, a.Status)
		}
	}
}

func TestAlertDescriptionFallback(t *testing.T) {
	g := newTestGenerator(52)
	assert.Equal(t, "Alert: Meteor Strike requires attention for project risk management.",
		g.alertDescription("Meteor Strike", "AECOM"))
	assert.Contains(t, g.alertDescription("Financial Stability", "AECOM"), "AECOM")
}

func TestCatalogs(t *testing.T) {
	g := newTestGenerator(61)

	opps := g.Opportunities()
	require.Len(t, opps, 10)
	for _, o := range opps {
		assert.NotEmpty(t, o.Steps)
		assert.Contains(t, g.Universe().CategoryNames(), o.Category)
	}

	assert.Len(t, g.Improvements(), 10)
	turner := g.ImprovementsFor("Turner Construction")
	require.Len(t, turner, 1)
	assert.Equal(t, "Schedule Compliance Improvement", turner[0].Title)
	assert.Empty(t, g.ImprovementsFor("turner construction"))

	turner[0].Steps[0] = "mutated"
	assert.NotEqual(t, "mutated", g.ImprovementsFor("Turner Construction")[0].Steps[0])

	tbl := g.OpportunityTable()
	steps := tbl.Value(0, "steps").([]string)
	assert.Len(t, steps, 4)
}

func TestTimelineScenario(t *testing.T) {
	g := newTestGenerator(71)
	milestones := g.Timeline("Turner Construction")
	require.GreaterOrEqual(t, len(milestones), 2+5+1)
	require.LessOrEqual(t, len(milestones), 2+14+1)

	assert.Equal(t, "Initial Qualification", milestones[0].Title)
	assert.Equal(t, "First Project Award", milestones[1].Title)
	assert.Regexp(t, `\$\d+\.\dM$`, milestones[1].Description)

	last := milestones[len(milestones)-1]
	assert.LessOrEqual(t, fixedNow.Sub(last.Date), days(7))
	assert.Contains(t, []string{"Strategy Discussion", "Performance Improvement Plan", "Contract Renewal Discussion"}, last.Title)

	for i, m := range milestones {
		assert.Equal(t, "Turner Construction", m.Supplier)
		if i > 0 {
			assert.False(t, m.Date.Before(milestones[i-1].Date))
		}
	}

	start := fixedNow.Sub(milestones[0].Date)
	assert.GreaterOrEqual(t, start, days(1095))
	assert.LessOrEqual(t, start, days(1825))
	gap := milestones[1].Date.Sub(milestones[0].Date)
	assert.GreaterOrEqual(t, gap, days(30))
	assert.LessOrEqual(t, gap, days(90))
}

func TestTimelineRandomSupplier(t *testing.T) {
	g := newTestGenerator(72)
	tbl := g.TimelineTable("")
	require.Greater(t, tbl.Len(), 0)
	supplier := tbl.Text(0, "supplier")
	_, ok := g.Universe().Lookup(supplier)
	assert.True(t, ok)
	assert.Equal(t, []string{supplier}, tbl.Distinct("supplier"))
}

func TestTimelineEventOverrides(t *testing.T) {
	g := newTestGenerator(73)
	for i := 0; i < 500; i++ {
		m := g.timelineEvent(fixedNow, g.Universe().Projects())
		switch m.Title {
		case "Performance Review":
			assert.Contains(t, m.Description, "/100")
		case "Project Completion":
			assert.True(t, strings.HasPrefix(m.Description, "Completed "))
			if strings.Contains(m.Description, "on time and within budget") {
				assert.Equal(t, "Positive", m.Impact)
			}
			if strings.Contains(m.Description, "with delays and budget overruns") {
				assert.Equal(t, "Negative", m.Impact)
			}
		case "Risk Assessment":
			if strings.HasSuffix(m.Description, "Low") {
				assert.Equal(t, "Positive", m.Impact)
			}
			if strings.HasSuffix(m.Description, "Critical") || strings.HasSuffix(m.Description, "High") {
				assert.Equal(t, "Negative", m.Impact)
			}
		}
	}
}

func TestEventDatesDegrade(t *testing.T) {
	g := newTestGenerator(74)

	assert.Empty(t, g.eventDates(fixedNow, fixedNow.Add(-days(1)), 10))
	assert.Empty(t, g.eventDates(fixedNow, fixedNow, 10))

	narrow := g.eventDates(fixedNow, fixedNow.Add(days(3)), 10)
	assert.Len(t, narrow, 4)

	wide := g.eventDates(fixedNow, fixedNow.Add(days(400)), 10)
	assert.Len(t, wide, 10)
	seen := map[time.Time]bool{}
	for _, d := range wide {
		assert.False(t, seen[d])
		seen[d] = true
	}
}

func TestTimelineRowShape(t *testing.T) {
	tbl := newTestGenerator(75).TimelineTable("AECOM")
	assert.Equal(t, dataset.TimelineSchema.ColumnNames(), tbl.ColumnNames())
}
