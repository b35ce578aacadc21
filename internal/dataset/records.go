package dataset

import "time"

type SpendRecord struct {
	Date          time.Time
	InvoiceNumber string
	Supplier      string
	Category      string
	Subcategory   string
	Project       string
	Amount        float64
	PaymentTerms  string
	FiscalYear    int
	FiscalQuarter int
	Description   string
}

func (r SpendRecord) Row() Row {
	return Row{
		"date":           r.Date,
		"invoice_number": r.InvoiceNumber,
		"supplier":       r.Supplier,
		"category":       r.Category,
		"subcategory":    r.Subcategory,
		"project":        r.Project,
		"amount":         r.Amount,
		"payment_terms":  r.PaymentTerms,
		"fiscal_year":    int64(r.FiscalYear),
		"fiscal_quarter": int64(r.FiscalQuarter),
		"description":    r.Description,
	}
}

// RiskScores holds the seven core risk categories on a 1-10 scale.
type RiskScores struct {
	Financial     float64
	Operational   float64
	Compliance    float64
	Geopolitical  float64
	Environmental float64
	Social        float64
	Governance    float64
}

type RiskAssessment struct {
	Supplier       string
	AssessmentDate time.Time
	Tier           string
	Scores         RiskScores
	Overall        float64

	MaterialDelayProbability float64
	ScheduleImpact           float64
	QualityConsistency       float64
	FinancialStability       float64
	SafetyCompliance         float64

	Notes string
}

func (r RiskAssessment) Row() Row {
	return Row{
		"supplier":                   r.Supplier,
		"assessment_date":            r.AssessmentDate,
		"tier":                       r.Tier,
		"financial_risk":             r.Scores.Financial,
		"operational_risk":           r.Scores.Operational,
		"compliance_risk":            r.Scores.Compliance,
		"geopolitical_risk":          r.Scores.Geopolitical,
		"environmental_risk":         r.Scores.Environmental,
		"social_risk":                r.Scores.Social,
		"governance_risk":            r.Scores.Governance,
		"overall_risk":               r.Overall,
		"material_delay_probability": r.MaterialDelayProbability,
		"schedule_impact":            r.ScheduleImpact,
		"quality_consistency":        r.QualityConsistency,
		"financial_stability":        r.FinancialStability,
		"safety_compliance":          r.SafetyCompliance,
		"notes":                      r.Notes,
	}
}

// PerformanceScores holds the seven evaluation dimensions on a 1-10 scale.
type PerformanceScores struct {
	ScheduleAdherence float64
	WorkQuality       float64
	CostControl       float64
	SafetyPerformance float64
	Documentation     float64
	Communication     float64
	ProblemResolution float64
}

type PerformanceEvaluation struct {
	Supplier           string
	SupplierType       string
	Category           string
	EvaluationDate     time.Time
	Scores             PerformanceScores
	Overall            float64
	RelationshipLength string
	AnnualSpend        float64
	ActiveProjects     int
	Comments           string
	Evaluator          string
}

func (r PerformanceEvaluation) Row() Row {
	return Row{
		"supplier":            r.Supplier,
		"supplier_type":       r.SupplierType,
		"category":            r.Category,
		"evaluation_date":     r.EvaluationDate,
		"schedule_adherence":  r.Scores.ScheduleAdherence,
		"work_quality":        r.Scores.WorkQuality,
		"cost_control":        r.Scores.CostControl,
		"safety_performance":  r.Scores.SafetyPerformance,
		"documentation":       r.Scores.Documentation,
		"communication":       r.Scores.Communication,
		"problem_resolution":  r.Scores.ProblemResolution,
		"overall_score":       r.Overall,
		"relationship_length": r.RelationshipLength,
		"annual_spend":        r.AnnualSpend,
		"active_projects":     int64(r.ActiveProjects),
		"comments":            r.Comments,
		"evaluator":           r.Evaluator,
	}
}

type Contract struct {
	Name             string
	Supplier         string
	Type             string
	StartDate        time.Time
	EndDate          time.Time
	Value            float64
	Status           string
	Category         string
	AutoRenewal      bool
	NoticePeriodDays int
	Description      string
}

func (r Contract) Row() Row {
	return Row{
		"name":               r.Name,
		"supplier":           r.Supplier,
		"type":               r.Type,
		"start_date":         r.StartDate,
		"end_date":           r.EndDate,
		"value":              r.Value,
		"status":             r.Status,
		"category":           r.Category,
		"auto_renewal":       r.AutoRenewal,
		"notice_period_days": int64(r.NoticePeriodDays),
		"description":        r.Description,
	}
}

type RiskAlert struct {
	Supplier      string
	Date          time.Time
	AlertType     string
	Description   string
	Severity      string
	Status        string
	Project       string
	ProjectImpact string
}

func (r RiskAlert) Row() Row {
	return Row{
		"supplier":       r.Supplier,
		"date":           r.Date,
		"alert_type":     r.AlertType,
		"description":    r.Description,
		"severity":       r.Severity,
		"status":         r.Status,
		"project":        r.Project,
		"project_impact": r.ProjectImpact,
	}
}

type Opportunity struct {
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description" yaml:"description"`
	SavingsPotential   float64  `json:"savings_potential" yaml:"savings_potential"`
	Complexity         int      `json:"complexity" yaml:"complexity"`
	AnnualSpend        float64  `json:"annual_spend" yaml:"annual_spend"`
	Category           string   `json:"category" yaml:"category"`
	ImplementationTime string   `json:"implementation_time" yaml:"implementation_time"`
	Steps              []string `json:"steps" yaml:"steps"`
}

func (r Opportunity) Row() Row {
	return Row{
		"title":               r.Title,
		"description":         r.Description,
		"savings_potential":   r.SavingsPotential,
		"complexity":          int64(r.Complexity),
		"annual_spend":        r.AnnualSpend,
		"category":            r.Category,
		"implementation_time": r.ImplementationTime,
		"steps":               append([]string(nil), r.Steps...),
	}
}

type Improvement struct {
	Supplier    string   `json:"supplier" yaml:"supplier"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Impact      string   `json:"impact" yaml:"impact"`
	Effort      string   `json:"effort" yaml:"effort"`
	Savings     float64  `json:"savings" yaml:"savings"`
	Steps       []string `json:"steps" yaml:"steps"`
}

func (r Improvement) Row() Row {
	return Row{
		"supplier":    r.Supplier,
		"title":       r.Title,
		"description": r.Description,
		"category":    r.Category,
		"impact":      r.Impact,
		"effort":      r.Effort,
		"savings":     r.Savings,
		"steps":       append([]string(nil), r.Steps...),
	}
}

// Milestone is one dated event on a supplier relationship timeline.
type Milestone struct {
	Date        time.Time
	Title       string
	Description string
	Category    string
	Impact      string
	Supplier    string
}

func (r Milestone) Row() Row {
	return Row{
		"date":        r.Date,
		"title":       r.Title,
		"description": r.Description,
		"category":    r.Category,
		"impact":      r.Impact,
		"supplier":    r.Supplier,
	}
}
