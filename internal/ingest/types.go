package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rana718/arcadia/internal/dataset"
)

var ErrUnknownDataType = errors.New("unknown data type")

// DataType is the declared kind of an uploaded file. The order is the detection order.
type DataType int

const (
	SpendData DataType = iota
	SupplierInformation
	RiskAssessment
	SupplierPerformance
	ContractData
	ESGRiskAssessment
)

type spec struct {
	name     string
	table    string
	required []string
	dates    []string
	numeric  []string // must parse when present
	optional []string // numeric, blanked when unparseable
	ints     []string
	bools    []string

	fingerprints [][]string
	template     []string
	example      []string
}

var riskScores = []string{
	"financial_risk", "operational_risk", "compliance_risk", "geopolitical_risk",
	"environmental_risk", "social_risk", "governance_risk", "overall_risk",
}

var performanceScores = []string{
	"schedule_adherence", "work_quality", "cost_control", "safety_performance",
	"documentation", "communication", "problem_resolution", "overall_score",
}

var esgScores = []string{
	"environmental_score", "carbon_footprint", "water_usage", "waste_management",
	"social_score", "labor_practices", "community_impact", "health_safety",
	"governance_score", "ethics_compliance", "transparency", "overall_esg_score",
}

var specs = []spec{
	SpendData: {
		name:         "Spend Data",
		table:        dataset.SpendData,
		required:     []string{"date", "supplier", "category", "amount"},
		dates:        []string{"date"},
		numeric:      []string{"amount"},
		fingerprints: [][]string{{"date", "supplier", "category", "amount"}},
		template: []string{"date", "supplier", "category", "subcategory", "project", "amount",
			"invoice_number", "payment_terms", "description"},
		example: []string{"2025-01-15", "Supplier Name", "Material Category", "Material Subcategory",
			"Project Name", "1000.00", "INV-12345", "Net 30", "Material description"},
	},
	SupplierInformation: {
		name:         "Supplier Information",
		table:        dataset.Suppliers,
		required:     []string{"name", "category"},
		optional:     []string{"annual_spend"},
		fingerprints: [][]string{{"name", "category", "tier"}},
		template: []string{"name", "category", "tier", "status", "segment", "annual_spend",
			"relationship_start", "contact_name", "contact_email", "location"},
		example: []string{"Supplier Name", "Primary Category", "Tier 1 (Prime)", "active", "strategic",
			"1000000", "2025-01-15", "Contact Name", "email@example.com", "City, State"},
	},
	RiskAssessment: {
		name:     "Risk Assessment",
		table:    dataset.RiskData,
		required: []string{"supplier", "assessment_date"},
		dates:    []string{"assessment_date"},
		optional: riskScores,
		fingerprints: [][]string{
			{"supplier", "assessment_date", "overall_risk"},
			{"financial_risk", "operational_risk"},
		},
		template: append(append([]string{"supplier", "assessment_date"}, riskScores...), "notes"),
		example: []string{"Supplier Name", "2025-01-15", "5.0", "5.0", "5.0", "5.0", "5.0", "5.0", "5.0", "5.0",
			"Assessment notes"},
	},
	SupplierPerformance: {
		name:     "Supplier Performance",
		table:    dataset.PerformanceData,
		required: []string{"supplier", "evaluation_date"},
		dates:    []string{"evaluation_date"},
		optional: append(append([]string{}, performanceScores...), "annual_spend"),
		fingerprints: [][]string{
			{"supplier", "evaluation_date", "overall_score"},
			{"schedule_adherence", "work_quality"},
		},
		template: append(append([]string{"supplier", "evaluation_date"}, performanceScores...), "evaluator", "comments"),
		example: []string{"Supplier Name", "2025-01-15", "7.0", "7.0", "7.0", "7.0", "7.0", "7.0", "7.0", "7.0",
			"Evaluator Name", "Evaluation comments"},
	},
	ContractData: {
		name:         "Contract Data",
		table:        dataset.Contracts,
		required:     []string{"name", "supplier", "start_date", "end_date"},
		dates:        []string{"start_date", "end_date"},
		optional:     []string{"value"},
		ints:         []string{"notice_period_days"},
		bools:        []string{"auto_renewal"},
		fingerprints: [][]string{{"name", "supplier", "start_date", "end_date"}},
		template: []string{"name", "supplier", "type", "start_date", "end_date", "value", "status",
			"description", "category", "auto_renewal", "notice_period_days"},
		example: []string{"Contract Name", "Supplier Name", "Fixed Price", "2025-01-15", "2026-01-15", "1000000",
			"active", "Contract description", "Contract category", "false", "30"},
	},
	ESGRiskAssessment: {
		name:         "ESG Risk Assessment",
		table:        "esg_risk_data",
		required:     []string{"supplier", "assessment_date"},
		dates:        []string{"assessment_date"},
		optional:     append(append([]string{}, esgScores...), riskScores...),
		fingerprints: [][]string{{"environmental_risk", "social_risk", "governance_risk"}},
		template:     append(append([]string{"supplier", "assessment_date"}, esgScores...), "notes"),
		example: []string{"Supplier Name", "2025-01-15", "7.0", "6.5", "7.5", "7.0", "7.0", "7.0", "6.5", "7.5",
			"7.0", "7.0", "7.5", "7.0", "Assessment notes"},
	},
}

func DataTypes() []DataType {
	out := make([]DataType, len(specs))
	for i := range specs {
		out[i] = DataType(i)
	}
	return out
}

func (d DataType) valid() bool {
	return d >= 0 && int(d) < len(specs)
}

func (d DataType) String() string {
	if !d.valid() {
		return fmt.Sprintf("DataType(%d)", int(d))
	}
	return specs[d].name
}

// Table is the dataset name a parsed upload is reported under.
func (d DataType) Table() string {
	if !d.valid() {
		return ""
	}
	return specs[d].table
}

func (d DataType) RequiredColumns() []string {
	if !d.valid() {
		return nil
	}
	return append([]string(nil), specs[d].required...)
}

func ParseDataType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	for i, sp := range specs {
		if strings.EqualFold(sp.name, s) {
			return DataType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, s)
}

// Detect guesses a data type from column names, case-insensitively.
// Types are tried in declaration order; the first matching fingerprint wins.
func Detect(columns []string) (DataType, bool) {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[strings.ToLower(strings.TrimSpace(c))] = true
	}

	for i, sp := range specs {
		for _, fp := range sp.fingerprints {
			if containsAll(have, fp) {
				return DataType(i), true
			}
		}
	}
	return 0, false
}

func containsAll(have map[string]bool, want []string) bool {
	for _, w := range want {
		if !have[w] {
			return false
		}
	}
	return true
}
