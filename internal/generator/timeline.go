package generator

import (
	"fmt"
	"sort"
	"time"

	"github.com/Rana718/arcadia/internal/dataset"
)

const candidateEventDates = 30

type timelineEvent struct {
	title       string
	description string
	category    string
	impacts     []string
	weights     []float64
}

var timelineEvents = []timelineEvent{
	{"Performance Review", "Completed quarterly performance review", "Performance",
		[]string{"Positive", "Neutral", "Negative"}, []float64{0.6, 0.3, 0.1}},
	{"Contract Renewal", "Renewed master agreement for additional term", "Contract",
		[]string{"Positive"}, []float64{1.0}},
	{"Contract Amendment", "Amended contract terms for scope adjustment", "Contract",
		[]string{"Neutral", "Positive", "Negative"}, []float64{0.5, 0.3, 0.2}},
	{"Price Negotiation", "Completed price negotiation for upcoming projects", "Contract",
		[]string{"Positive", "Neutral", "Negative"}, []float64{0.5, 0.3, 0.2}},
	{"Project Completion", "Successfully completed project on schedule", "Project",
		[]string{"Positive", "Neutral"}, []float64{0.8, 0.2}},
	{"Schedule Issue", "Addressed schedule delay on active project", "Project",
		[]string{"Negative", "Neutral"}, []float64{0.7, 0.3}},
	{"Quality Review", "Conducted quality review of completed work", "Project",
		[]string{"Positive", "Neutral", "Negative"}, []float64{0.5, 0.3, 0.2}},
	{"Change Order", "Processed change order for scope modification", "Project",
		[]string{"Neutral", "Negative", "Positive"}, []float64{0.6, 0.3, 0.1}},
	{"Risk Assessment", "Updated supplier risk assessment", "Risk",
		[]string{"Neutral", "Negative", "Positive"}, []float64{0.6, 0.3, 0.1}},
	{"Safety Incident", "Addressed safety incident on project site", "Risk",
		[]string{"Negative", "Neutral"}, []float64{0.8, 0.2}},
	{"Financial Review", "Completed financial stability review", "Risk",
		[]string{"Positive", "Neutral", "Negative"}, []float64{0.5, 0.3, 0.2}},
}

// Timeline builds a supplier relationship history, oldest first. An empty supplier picks
// one at random.
func (g *Generator) Timeline(supplier string) []dataset.Milestone {
	if supplier == "" {
		supplier = g.choice(g.universe.SupplierNames())
	}
	projects := g.universe.Projects()
	now := g.now()

	start := now.Add(-days(g.intBetween(1095, 1825)))
	award := start.Add(days(g.intBetween(30, 90)))

	milestones := []dataset.Milestone{
		{
			Date:        start,
			Title:       "Initial Qualification",
			Description: fmt.Sprintf("Completed supplier qualification process for %s", supplier),
			Category:    "Relationship",
			Impact:      "Positive",
		},
		{
			Date:  award,
			Title: "First Project Award",
			Description: fmt.Sprintf("Awarded %s project with estimated value of $%.1fM",
				g.choice(projects), float64(g.intBetween(5, 50))/10),
			Category: "Contract",
			Impact:   "Positive",
		},
	}

	for _, date := range g.eventDates(award.Add(days(30)), now.Add(-days(7)), g.intBetween(5, 14)) {
		milestones = append(milestones, g.timelineEvent(date, projects))
	}
	milestones = append(milestones, g.recentEvent(now, supplier))

	sort.SliceStable(milestones, func(i, j int) bool { return milestones[i].Date.Before(milestones[j].Date) })
	for i := range milestones {
		milestones[i].Supplier = supplier
	}
	return milestones
}

func (g *Generator) TimelineTable(supplier string) *dataset.Table {
	return dataset.FromRecords(dataset.TimelineSchema, g.Timeline(supplier))
}

// eventDates picks want distinct dates out of evenly spaced candidates. A window that is
// empty or too narrow yields fewer dates.
func (g *Generator) eventDates(from, to time.Time, want int) []time.Time {
	if !to.After(from) {
		return nil
	}
	periods := candidateEventDates
	if span := int(to.Sub(from).Hours() / 24); span+1 < periods {
		periods = span + 1
	}
	candidates := evenlySpaced(from, to, periods)
	if want > len(candidates) {
		want = len(candidates)
	}

	picked := make([]time.Time, want)
	for i, idx := range g.rand.Perm(len(candidates))[:want] {
		picked[i] = candidates[idx]
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Before(picked[j]) })
	return picked
}

func (g *Generator) timelineEvent(date time.Time, projects []string) dataset.Milestone {
	ev := timelineEvents[g.rand.Intn(len(timelineEvents))]
	m := dataset.Milestone{
		Date:        date,
		Title:       ev.title,
		Description: ev.description,
		Category:    ev.category,
		Impact:      g.weightedChoice(ev.impacts, ev.weights),
	}

	switch ev.title {
	case "Performance Review":
		score := g.intBetween(60, 95)
		m.Description = fmt.Sprintf("Quarterly performance review completed with score of %d/100", score)
		switch {
		case score >= 85:
			m.Impact = "Positive"
		case score >= 70:
			m.Impact = "Neutral"
		default:
			m.Impact = "Negative"
		}

	case "Project Completion":
		project := g.choice(projects)
		onTime, onBudget := g.chance(0.7), g.chance(0.7)
		switch {
		case onTime && onBudget:
			m.Description = fmt.Sprintf("Completed %s on time and within budget", project)
			m.Impact = "Positive"
		case onTime:
			m.Description = fmt.Sprintf("Completed %s on time but over budget", project)
			m.Impact = "Neutral"
		case onBudget:
			m.Description = fmt.Sprintf("Completed %s within budget but delayed", project)
			m.Impact = "Neutral"
		default:
			m.Description = fmt.Sprintf("Completed %s with delays and budget overruns", project)
			m.Impact = "Negative"
		}

	case "Risk Assessment":
		level := g.choice([]string{"Low", "Medium", "High", "Critical"})
		m.Description = fmt.Sprintf("Updated risk assessment - current level: %s", level)
		switch level {
		case "Low":
			m.Impact = "Positive"
		case "Medium":
			m.Impact = "Neutral"
		default:
			m.Impact = "Negative"
		}
	}
	return m
}

func (g *Generator) recentEvent(now time.Time, supplier string) dataset.Milestone {
	date := now.Add(-days(g.intBetween(1, 7)))
	recent := []dataset.Milestone{
		{
			Title:       "Strategy Discussion",
			Description: fmt.Sprintf("Met with %s leadership to discuss future partnership opportunities", supplier),
			Category:    "Relationship",
			Impact:      "Positive",
		},
		{
			Title:       "Performance Improvement Plan",
			Description: fmt.Sprintf("Initiated performance improvement plan for %s in response to recent issues", supplier),
			Category:    "Performance",
			Impact:      "Neutral",
		},
		{
			Title:       "Contract Renewal Discussion",
			Description: fmt.Sprintf("Began contract renewal discussions with %s for upcoming term", supplier),
			Category:    "Contract",
			Impact:      "Neutral",
		},
	}
	m := recent[g.rand.Intn(len(recent))]
	m.Date = date
	return m
}
