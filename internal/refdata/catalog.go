package refdata

// Construction reference lists. Order is load-bearing: supplier position drives tiering
// and the 80/20 spend concentration.

var defaultSuppliers = []string{
	"Turner Construction", "Bechtel Corp", "Fluor Corp", "Kiewit Corporation",
	"Suffolk Construction", "McCarthy Building", "Skanska USA", "Clark Construction Group",
	"Whiting-Turner", "DPR Construction", "Gilbane Building", "JE Dunn Construction",
	"AECOM", "Hensel Phelps", "PCL Construction", "Swinerton", "Holder Construction",
	"Mortenson", "Hathaway Dinwiddie", "Walsh Group", "Clayco", "Ryan Companies",
	"Balfour Beatty US", "Lendlease", "Brasfield & Gorrie", "Granite Construction",
	"Webcor Builders", "Robins & Morton", "CBG Building Company", "Structure Tone",
	"Hunt Construction", "Barton Malow", "HITT Contracting", "Hoffman Construction",
	"Sundt Construction", "Adolfson & Peterson", "W. M. Jordan",
	"Shawmut Design and Construction", "Messer Construction", "Gray Construction",
	"The Beck Group", "JLG Architects", "Alberici Constructors", "Yates Construction",
	"Consigli Construction", "Layton Construction",
}

var defaultProjects = []string{
	"Downtown Highrise Tower", "Metro Transit Hub", "Waterfront Plaza",
	"Medical Center Expansion", "University Science Building", "Municipal Water Treatment",
	"Highway 101 Widening", "Airport Terminal Expansion", "Office Park Development",
	"Shopping Center Renovation", "Resort Hotel Construction", "Public Library Complex",
	"Industrial Park Warehouses", "Residential Tower", "Suburban Hospital",
	"School District Modernization", "Data Center Complex", "Sports Stadium Upgrade",
	"Civic Center Renovation", "Mixed-Use Development", "Affordable Housing Project",
	"Retirement Community", "Manufacturing Plant", "Corporate Campus",
	"Utility Infrastructure",
}

const (
	StructuralMaterials = "Structural Materials"
	MEPSystems          = "MEP Systems"
	BuildingEnvelope    = "Building Envelope"
	Finishes            = "Finishes"
	SiteworkFoundations = "Sitework & Foundations"
	SafetyEquipment     = "Safety Equipment"
)

var defaultCategories = []Category{
	{Name: StructuralMaterials, Weight: 0.30, Subcategories: []string{
		"Concrete", "Rebar", "Structural Steel", "Lumber", "Pre-Cast Elements", "Bridge Components",
	}},
	{Name: MEPSystems, Weight: 0.25, Subcategories: []string{
		"HVAC Units", "Electrical Equipment", "Plumbing Fixtures", "Fire Suppression", "Building Automation",
	}},
	{Name: BuildingEnvelope, Weight: 0.20, Subcategories: []string{
		"Curtain Wall", "Roofing Systems", "Windows", "Doors", "Insulation", "Waterproofing",
	}},
	{Name: Finishes, Weight: 0.15, Subcategories: []string{
		"Flooring", "Drywall", "Ceiling Systems", "Paint", "Millwork", "Tile", "Carpet",
	}},
	{Name: SiteworkFoundations, Weight: 0.08, Subcategories: []string{
		"Earthwork", "Paving", "Utilities", "Landscaping", "Foundations", "Retaining Walls",
	}},
	{Name: SafetyEquipment, Weight: 0.02, Subcategories: []string{
		"Fall Protection", "PPE", "Traffic Safety", "Confined Space", "Fire Safety",
	}},
}

// Alert types, in catalog order.
const (
	AlertMaterialPriceIncrease = "Material Price Increase"
	AlertDeliveryDelay         = "Delivery Delay"
	AlertLaborShortage         = "Labor Shortage"
	AlertPermitIssue           = "Permit Issue"
	AlertWeatherImpact         = "Weather Impact"
	AlertSafetyIncident        = "Safety Incident"
	AlertQualityDefect         = "Quality Defect"
	AlertContractDispute       = "Contract Dispute"
	AlertDesignChange          = "Design Change"
	AlertRegulatoryCompliance  = "Regulatory Compliance"
	AlertFinancialStability    = "Financial Stability"
	AlertEnvironmentalIssue    = "Environmental Issue"
	AlertSupplyChainDisruption = "Supply Chain Disruption"
)

var alertTypes = []string{
	AlertMaterialPriceIncrease, AlertDeliveryDelay, AlertLaborShortage, AlertPermitIssue,
	AlertWeatherImpact, AlertSafetyIncident, AlertQualityDefect, AlertContractDispute,
	AlertDesignChange, AlertRegulatoryCompliance, AlertFinancialStability,
	AlertEnvironmentalIssue, AlertSupplyChainDisruption,
}

var invoicePrefixes = []string{"INV", "CI", "BLD", "CNST", "PROJ"}

var paymentTerms = []string{"Net 30", "Net 45", "Net 60"}
