package generator

import (
	"fmt"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/refdata"
)

const alertWindowDays = 90

var (
	severities      = []string{"Low", "Medium", "High", "Critical"}
	severityWeights = []float64{0.2, 0.4, 0.3, 0.1}
)

type weightedSet struct {
	values  []string
	weights []float64
}

var impactBySeverity = map[string]weightedSet{
	"Critical": {[]string{"Major", "Severe"}, []float64{0.3, 0.7}},
	"High":     {[]string{"Moderate", "Major"}, []float64{0.4, 0.6}},
	"Medium":   {[]string{"Minor", "Moderate"}, []float64{0.5, 0.5}},
	"Low":      {[]string{"Minimal", "Minor"}, []float64{0.7, 0.3}},
}

// alertStatus skews older alerts toward resolved.
func (g *Generator) alertStatus(ageDays int) string {
	switch {
	case ageDays < 7:
		return g.weightedChoice([]string{"Open", "Acknowledged"}, []float64{0.8, 0.2})
	case ageDays < 21:
		return g.weightedChoice([]string{"Open", "Acknowledged", "Resolved"}, []float64{0.3, 0.5, 0.2})
	default:
		return g.weightedChoice([]string{"Open", "Acknowledged", "Resolved"}, []float64{0.1, 0.3, 0.6})
	}
}

func (g *Generator) alertDescription(alertType, supplier string) string {
	switch alertType {
	case refdata.AlertMaterialPriceIncrease:
		return fmt.Sprintf("%s prices have increased by %d%% due to market conditions, affecting project budget.",
			g.randomSubcategory(), g.intBetween(5, 29))
	case refdata.AlertDeliveryDelay:
		return fmt.Sprintf("%s delivery delayed by %d days, potentially impacting project schedule.",
			g.randomSubcategory(), g.intBetween(5, 44))
	case refdata.AlertLaborShortage:
		trade := g.choice([]string{"Electrical", "Plumbing", "Carpentry", "Masonry", "Steel", "Concrete"})
		return fmt.Sprintf("Shortage of %s workers reported, may cause schedule delays and increased labor costs.", trade)
	case refdata.AlertPermitIssue:
		permit := g.choice([]string{"Building", "Electrical", "Plumbing", "Environmental", "Occupancy"})
		return fmt.Sprintf("%s permit approval delayed due to regulatory requirements, affecting project timeline.", permit)
	case refdata.AlertWeatherImpact:
		weather := g.choice([]string{"Heavy rain", "Snow", "High winds", "Extreme temperatures", "Flooding"})
		return fmt.Sprintf("%s forecast for next %d days, may impact outdoor construction activities.", weather, g.intBetween(2, 9))
	case refdata.AlertSafetyIncident:
		incident := g.choice([]string{"Fall", "Struck-by", "Electrical", "Equipment", "Material handling"})
		return fmt.Sprintf("%s incident reported on site, triggering safety review and potential work stoppage.", incident)
	case refdata.AlertQualityDefect:
		item := g.choice([]string{"Concrete placement", "Steel connections", "MEP installation", "Finishes", "Building envelope"})
		return fmt.Sprintf("Quality issues identified with %s, requiring rework and potentially delaying subsequent activities.", item)
	case refdata.AlertContractDispute:
		issue := g.choice([]string{"Change order pricing", "Schedule extension", "Scope interpretation", "Payment timing"})
		return fmt.Sprintf("Contractual disagreement regarding %s requires resolution to avoid project impacts.", issue)
	case refdata.AlertDesignChange:
		element := g.choice([]string{"Structural", "Architectural", "MEP", "Site", "Interior"})
		return fmt.Sprintf("Late %s design modifications requested, requiring schedule adjustment and cost evaluation.", element)
	case refdata.AlertRegulatoryCompliance:
		rule := g.choice([]string{"OSHA reporting", "Stormwater permit", "Prevailing wage", "Fire code", "ADA accessibility"})
		return fmt.Sprintf("%s requirements under review, %d open findings must be closed before next inspection.", rule, g.intBetween(1, 6))
	case refdata.AlertFinancialStability:
		return fmt.Sprintf("Financial monitoring indicates potential liquidity concerns for %s, increasing performance risk.", supplier)
	case refdata.AlertEnvironmentalIssue:
		issue := g.choice([]string{"Soil contamination", "Dust control", "Noise limits", "Runoff", "Asbestos abatement"})
		return fmt.Sprintf("%s concern raised by site inspection, remediation may add %d days to schedule.", issue, g.intBetween(3, 20))
	case refdata.AlertSupplyChainDisruption:
		material := g.choice([]string{"Steel", "Lumber", "Concrete", "HVAC equipment", "Electrical components", "Glass"})
		return fmt.Sprintf("Global supply chain issues affecting %s availability, requiring sourcing alternatives.", material)
	default:
		return fmt.Sprintf("Alert: %s requires attention for project risk management.", alertType)
	}
}

func (g *Generator) randomSubcategory() string {
	return g.choice(g.universe.Subcategories(g.choice(g.universe.CategoryNames())))
}

// RiskAlerts generates n alerts from the last 90 days; suppliers repeat.
func (g *Generator) RiskAlerts(n int) []dataset.RiskAlert {
	if n < 0 {
		n = 0
	}
	suppliers := g.universe.SupplierNames()
	alertTypes := g.universe.AlertTypes()
	projects := g.universe.Projects()
	now := g.now()
	start := now.Add(-days(alertWindowDays))

	out := make([]dataset.RiskAlert, n)
	for i := range out {
		supplier := g.choice(suppliers)
		date := start.Add(days(g.intBetween(0, alertWindowDays-1)))
		alertType := g.choice(alertTypes)
		severity := g.weightedChoice(severities, severityWeights)
		impact := impactBySeverity[severity]

		out[i] = dataset.RiskAlert{
			Supplier:      supplier,
			Date:          date,
			AlertType:     alertType,
			Description:   g.alertDescription(alertType, supplier),
			Severity:      severity,
			Status:        g.alertStatus(int(now.Sub(date).Hours() / 24)),
			Project:       g.choice(projects),
			ProjectImpact: g.weightedChoice(impact.values, impact.weights),
		}
	}
	return out
}

func (g *Generator) AlertTable(n int) *dataset.Table {
	return dataset.FromRecords(dataset.AlertSchema, g.RiskAlerts(n))
}
