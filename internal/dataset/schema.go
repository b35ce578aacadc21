package dataset

import (
	"errors"
	"fmt"
)

var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset names consumed by the dashboard and the API.
const (
	SpendData       = "spend_data"
	RiskData        = "risk_data"
	PerformanceData = "performance_data"
	Contracts       = "contracts"
	RiskAlerts      = "risk_alerts"
	OpportunityData = "opportunity_data"
	ImprovementData = "improvement_data"
	TimelineData    = "timeline_data"
	Suppliers       = "suppliers"
	Categories      = "categories"
)

type Schema struct {
	Name    string
	Columns []Column
}

func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

func (s Schema) Kind(col string) (Kind, bool) {
	for _, c := range s.Columns {
		if c.Name == col {
			return c.Kind, true
		}
	}
	return "", false
}

func text(name string) Column { return Column{Name: name, Kind: KindText} }
func float(name string) Column { return Column{Name: name, Kind: KindFloat} }
func integer(name string) Column { return Column{Name: name, Kind: KindInt} }
func date(name string) Column { return Column{Name: name, Kind: KindDate} }
func boolean(name string) Column { return Column{Name: name, Kind: KindBool} }
func list(name string) Column { return Column{Name: name, Kind: KindList} }

var SpendSchema = Schema{Name: SpendData, Columns: []Column{
	date("date"), text("invoice_number"), text("supplier"), text("category"),
	text("subcategory"), text("project"), float("amount"), text("payment_terms"),
	integer("fiscal_year"), integer("fiscal_quarter"), text("description"),
}}

var RiskSchema = Schema{Name: RiskData, Columns: []Column{
	text("supplier"), date("assessment_date"), text("tier"),
	float("financial_risk"), float("operational_risk"), float("compliance_risk"),
	float("geopolitical_risk"), float("environmental_risk"), float("social_risk"),
	float("governance_risk"), float("overall_risk"),
	float("material_delay_probability"), float("schedule_impact"), float("quality_consistency"),
	float("financial_stability"), float("safety_compliance"), text("notes"),
}}

var PerformanceSchema = Schema{Name: PerformanceData, Columns: []Column{
	text("supplier"), text("supplier_type"), text("category"), date("evaluation_date"),
	float("schedule_adherence"), float("work_quality"), float("cost_control"),
	float("safety_performance"), float("documentation"), float("communication"),
	float("problem_resolution"), float("overall_score"), text("relationship_length"),
	float("annual_spend"), integer("active_projects"), text("comments"), text("evaluator"),
}}

var ContractSchema = Schema{Name: Contracts, Columns: []Column{
	text("name"), text("supplier"), text("type"), date("start_date"), date("end_date"),
	float("value"), text("status"), text("category"), boolean("auto_renewal"),
	integer("notice_period_days"), text("description"),
}}

var AlertSchema = Schema{Name: RiskAlerts, Columns: []Column{
	text("supplier"), date("date"), text("alert_type"), text("description"),
	text("severity"), text("status"), text("project"), text("project_impact"),
}}

var OpportunitySchema = Schema{Name: OpportunityData, Columns: []Column{
	text("title"), text("description"), float("savings_potential"), integer("complexity"),
	float("annual_spend"), text("category"), text("implementation_time"), list("steps"),
}}

var ImprovementSchema = Schema{Name: ImprovementData, Columns: []Column{
	text("supplier"), text("title"), text("description"), text("category"),
	text("impact"), text("effort"), float("savings"), list("steps"),
}}

var TimelineSchema = Schema{Name: TimelineData, Columns: []Column{
	date("date"), text("title"), text("description"), text("category"),
	text("impact"), text("supplier"),
}}

var SupplierSchema = Schema{Name: Suppliers, Columns: []Column{
	text("name"), text("tier"), integer("position"),
}}

var CategorySchema = Schema{Name: Categories, Columns: []Column{
	text("name"), list("subcategories"), float("weight"),
}}

var schemas = []Schema{
	SpendSchema, RiskSchema, PerformanceSchema, ContractSchema, AlertSchema,
	OpportunitySchema, ImprovementSchema, TimelineSchema, SupplierSchema, CategorySchema,
}

// Names lists every dataset in the order the bundle reports them.
func Names() []string {
	names := make([]string, len(schemas))
	for i, s := range schemas {
		names[i] = s.Name
	}
	return names
}

func Lookup(name string) (Schema, error) {
	for _, s := range schemas {
		if s.Name == name {
			return s, nil
		}
	}
	return Schema{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
}
