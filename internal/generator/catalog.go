package generator

import "github.com/Rana718/arcadia/internal/dataset"

var opportunities = []dataset.Opportunity{
	{
		Title:              "Bundle Structural Material Orders",
		Description:        "Consolidate structural steel and concrete orders across multiple projects to achieve volume discounts.",
		SavingsPotential:   8.5,
		Complexity:         2,
		AnnualSpend:        3800000,
		Category:           "Structural Materials",
		ImplementationTime: "1-3 months",
		Steps: []string{
			"Identify upcoming projects requiring similar materials",
			"Develop consolidated order schedule",
			"Negotiate volume-based pricing with suppliers",
			"Implement shared storage and logistics",
		},
	},
	{
		Title:              "Standardize MEP System Specifications",
		Description:        "Implement standard specifications for mechanical, electrical, and plumbing systems to reduce customization costs.",
		SavingsPotential:   6.2,
		Complexity:         3,
		AnnualSpend:        2900000,
		Category:           "MEP Systems",
		ImplementationTime: "3-6 months",
		Steps: []string{
			"Audit current MEP specifications across projects",
			"Identify standardization opportunities with minimal impact",
			"Develop standard specification library",
			"Train design and procurement teams on new standards",
		},
	},
	{
		Title:              "Early Procurement of Long-Lead Items",
		Description:        "Implement early procurement strategy for long-lead construction items to avoid expedite fees and market price increases.",
		SavingsPotential:   5.8,
		Complexity:         2,
		AnnualSpend:        1500000,
		Category:           "Building Envelope",
		ImplementationTime: "1-2 months",
		Steps: []string{
			"Identify critical long-lead items across projects",
			"Create early procurement schedule aligned with project timelines",
			"Negotiate early commitment discounts",
			"Secure storage arrangements for early deliveries",
		},
	},
	{
		Title:              "Regional Supplier Development",
		Description:        "Develop local/regional supplier relationships to reduce logistics costs and lead times.",
		SavingsPotential:   4.5,
		Complexity:         4,
		AnnualSpend:        2200000,
		Category:           "Finishes",
		ImplementationTime: "6-12 months",
		Steps: []string{
			"Map current supply chain geography",
			"Identify potential regional suppliers",
			"Qualify suppliers through assessment process",
			"Develop phased transition plan to regional sources",
		},
	},
	{
		Title:              "Construction Equipment Pooling",
		Description:        "Implement equipment pooling across multiple projects to increase utilization and reduce rental costs.",
		SavingsPotential:   12.5,
		Complexity:         3,
		AnnualSpend:        1800000,
		Category:           "Sitework & Foundations",
		ImplementationTime: "2-4 months",
		Steps: []string{
			"Audit current equipment utilization and costs",
			"Develop cross-project equipment scheduling system",
			"Negotiate revised rental terms with providers",
			"Implement tracking and logistics for equipment movement",
		},
	},
	{
		Title:              "Safety Equipment Standardization",
		Description:        "Standardize safety equipment across projects and negotiate enterprise pricing.",
		SavingsPotential:   7.2,
		Complexity:         1,
		AnnualSpend:        780000,
		Category:           "Safety Equipment",
		ImplementationTime: "1-2 months",
		Steps: []string{
			"Review current safety equipment specifications",
			"Develop standard safety equipment catalog",
			"Negotiate enterprise pricing with suppliers",
			"Implement inspection and replacement program",
		},
	},
	{
		Title:              "Value Engineering for Sitework",
		Description:        "Implement systematic value engineering process for sitework and foundation design to reduce material and labor costs.",
		SavingsPotential:   9.5,
		Complexity:         3,
		AnnualSpend:        3100000,
		Category:           "Sitework & Foundations",
		ImplementationTime: "3-6 months",
		Steps: []string{
			"Establish value engineering team with design and construction expertise",
			"Develop VE review process for all projects over $5M",
			"Create database of successful VE solutions",
			"Implement tracking system for VE savings",
		},
	},
	{
		Title:              "Bulk Purchase of Finishing Materials",
		Description:        "Establish annual bulk purchase agreements for high-volume finishing materials like paint, flooring, and drywall.",
		SavingsPotential:   6.8,
		Complexity:         2,
		AnnualSpend:        1650000,
		Category:           "Finishes",
		ImplementationTime: "2-3 months",
		Steps: []string{
			"Analyze annual usage quantities for finishing materials",
			"Identify storage and logistics requirements",
			"Negotiate annual supply agreements with tiered pricing",
			"Develop material allocation system for projects",
		},
	},
	{
		Title:              "Prefabrication Strategy",
		Description:        "Implement prefabrication approach for repetitive building elements to reduce on-site labor and improve quality.",
		SavingsPotential:   11.2,
		Complexity:         4,
		AnnualSpend:        4200000,
		Category:           "Structural Materials",
		ImplementationTime: "6-12 months",
		Steps: []string{
			"Identify high-potential prefabrication opportunities",
			"Engage design team for prefab-friendly design modifications",
			"Develop logistics plan for prefab components",
			"Establish quality control process for prefabricated elements",
		},
	},
	{
		Title:              "Design Standardization Program",
		Description:        "Implement design standardization for repeatable building elements across projects to reduce engineering and material costs.",
		SavingsPotential:   8.7,
		Complexity:         5,
		AnnualSpend:        2800000,
		Category:           "MEP Systems",
		ImplementationTime: "9-18 months",
		Steps: []string{
			"Conduct portfolio analysis of recent projects",
			"Identify common design elements with standardization potential",
			"Develop standard design library and specification guides",
			"Create training program for design and procurement teams",
		},
	},
}

var improvements = []dataset.Improvement{
	{
		Supplier:    "Turner Construction",
		Title:       "Schedule Compliance Improvement",
		Description: "Implement detailed milestone tracking and weekly progress reviews to improve schedule adherence.",
		Category:    "Schedule Performance",
		Impact:      "High",
		Effort:      "Medium",
		Savings:     425000,
		Steps: []string{
			"Establish detailed milestone tracking system",
			"Implement weekly progress reviews with accountability",
			"Develop early warning indicators for schedule risks",
			"Create incentive program tied to milestone achievement",
		},
	},
	{
		Supplier:    "Bechtel Corp",
		Title:       "Quality Control Enhancement",
		Description: "Develop standardized QC protocols and inspection checklists to reduce rework and improve first-time quality.",
		Category:    "Quality Management",
		Impact:      "Medium",
		Effort:      "Medium",
		Savings:     320000,
		Steps: []string{
			"Audit current quality performance and issues",
			"Develop standardized inspection checklists by trade",
			"Implement phased inspection process",
			"Train field supervisors on quality standards",
		},
	},
	{
		Supplier:    "Suffolk Construction",
		Title:       "Cost Reporting Improvement",
		Description: "Implement real-time cost reporting and variance analysis to improve cost control performance.",
		Category:    "Cost Control",
		Impact:      "High",
		Effort:      "High",
		Savings:     580000,
		Steps: []string{
			"Evaluate current cost reporting practices",
			"Implement digital cost tracking system",
			"Develop variance analysis protocol",
			"Train project teams on cost control methods",
		},
	},
	{
		Supplier:    "Clark Construction Group",
		Title:       "Safety Program Enhancement",
		Description: "Develop comprehensive safety training and monitoring program to improve safety performance metrics.",
		Category:    "Safety Performance",
		Impact:      "High",
		Effort:      "Medium",
		Savings:     275000,
		Steps: []string{
			"Conduct safety performance assessment",
			"Develop targeted training for high-risk activities",
			"Implement daily safety briefings and inspections",
			"Create near-miss reporting system",
		},
	},
	{
		Supplier:    "DPR Construction",
		Title:       "Documentation Standardization",
		Description: "Standardize project documentation processes and templates to improve completeness and timeliness.",
		Category:    "Documentation",
		Impact:      "Medium",
		Effort:      "Low",
		Savings:     180000,
		Steps: []string{
			"Audit current documentation practices",
			"Develop standardized document templates",
			"Implement digital document management system",
			"Train teams on documentation requirements",
		},
	},
	{
		Supplier:    "Skanska USA",
		Title:       "Communication Protocol Implementation",
		Description: "Establish formal communication protocols and escalation paths to improve responsiveness and clarity.",
		Category:    "Communication",
		Impact:      "Medium",
		Effort:      "Low",
		Savings:     150000,
		Steps: []string{
			"Define communication requirements by project role",
			"Establish response time standards",
			"Implement communication plan template",
			"Create escalation path for critical issues",
		},
	},
	{
		Supplier:    "Whiting-Turner",
		Title:       "Issue Resolution Process",
		Description: "Implement structured issue tracking and resolution process to improve problem-solving efficiency.",
		Category:    "Problem Resolution",
		Impact:      "High",
		Effort:      "Medium",
		Savings:     340000,
		Steps: []string{
			"Develop issue categorization system",
			"Implement issue tracking database",
			"Establish resolution timeframes by issue type",
			"Create weekly issue review process",
		},
	},
	{
		Supplier:    "Fluor Corp",
		Title:       "BIM Implementation",
		Description: "Expand use of Building Information Modeling to improve coordination and reduce field conflicts.",
		Category:    "Quality Management",
		Impact:      "High",
		Effort:      "High",
		Savings:     650000,
		Steps: []string{
			"Assess current BIM capabilities",
			"Develop BIM execution plan template",
			"Train project teams on clash detection",
			"Implement model-based coordination meetings",
		},
	},
	{
		Supplier:    "Gilbane Building",
		Title:       "Lean Construction Methods",
		Description: "Implement lean construction methodologies to reduce waste and improve production efficiency.",
		Category:    "Schedule Performance",
		Impact:      "High",
		Effort:      "High",
		Savings:     520000,
		Steps: []string{
			"Analyze workflow and identify waste sources",
			"Implement pull planning for project scheduling",
			"Develop last planner system for field operations",
			"Create continuous improvement process",
		},
	},
	{
		Supplier:    "Kiewit Corporation",
		Title:       "Procurement Planning Enhancement",
		Description: "Improve procurement planning and tracking to prevent material-related delays and cost overruns.",
		Category:    "Cost Control",
		Impact:      "Medium",
		Effort:      "Medium",
		Savings:     380000,
		Steps: []string{
			"Develop comprehensive procurement schedule template",
			"Implement submittal tracking system",
			"Create material expediting process",
			"Establish early warning system for procurement risks",
		},
	},
}

// Opportunities returns the static savings-opportunity catalog.
func (g *Generator) Opportunities() []dataset.Opportunity {
	return cloneOpportunities(opportunities)
}

func (g *Generator) Improvements() []dataset.Improvement {
	return cloneImprovements(improvements)
}

// ImprovementsFor filters the improvement catalog by exact supplier name.
func (g *Generator) ImprovementsFor(supplier string) []dataset.Improvement {
	out := []dataset.Improvement{}
	for _, imp := range improvements {
		if imp.Supplier == supplier {
			out = append(out, imp)
		}
	}
	return cloneImprovements(out)
}

func (g *Generator) OpportunityTable() *dataset.Table {
	return dataset.FromRecords(dataset.OpportunitySchema, g.Opportunities())
}

func (g *Generator) ImprovementTable() *dataset.Table {
	return dataset.FromRecords(dataset.ImprovementSchema, g.Improvements())
}

func cloneOpportunities(in []dataset.Opportunity) []dataset.Opportunity {
	out := make([]dataset.Opportunity, len(in))
	for i, o := range in {
		o.Steps = append([]string(nil), o.Steps...)
		out[i] = o
	}
	return out
}

func cloneImprovements(in []dataset.Improvement) []dataset.Improvement {
	out := make([]dataset.Improvement, len(in))
	for i, imp := range in {
		imp.Steps = append([]string(nil), imp.Steps...)
		out[i] = imp
	}
	return out
}
