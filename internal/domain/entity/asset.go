package entity

// Canonical field names of the asset registry.
const (
	FieldCategory         = "Category"
	FieldAssetName        = "Asset Name"
	FieldAssetCode        = "Asset Code"
	FieldUnit             = "Unit"
	FieldQuantity         = "Quantity"
	FieldStatus           = "Status"
	FieldUnitCost         = "Unit Cost"
	FieldTotalValue       = "Total Value"
	FieldExpectedLife     = "Expected Life"
	FieldCurrentAge       = "Current Age"
	FieldFunctionalQty    = "Functional Qty"
	FieldNonFunctionalQty = "Non-Functional Qty"
)

// Asset status enum values.
const (
	StatusFunctional    = "Functional"
	StatusNonFunctional = "Non-Functional"
	StatusUnknown       = "Unknown"
)

// Canonical field names of the damage-report and estimation sheets.
const (
	FieldCaseNo          = "Case No"
	FieldLocation        = "Location"
	FieldReportDate      = "Report Date"
	FieldReportedBy      = "Reported By"
	FieldQuantityDamaged = "Quantity Damaged"
	FieldEstTotal        = "Total"
	FieldEstVAT          = "VAT"
	FieldEstGrandTotal   = "Grand Total"
	FieldEstimatedBy     = "Estimated By"
)

// Damage-report status enum values.
const (
	ReportStatusPending   = "Pending"
	ReportStatusEstimated = "Estimated"
)

// AssetRegistrySchema declares the canonical asset-inventory columns.
//
// Field order is matching priority, not display order: the more specific
// fields come first so that, e.g., a "Unit Cost" column is claimed before
// the bare "Unit" field gets a chance to substring-match it.
func AssetRegistrySchema() Schema {
	return Schema{Fields: []FieldDef{
		{
			Name:          FieldCategory,
			Kind:          KindFreeText,
			MatchKeywords: []string{"category"},
		},
		{
			Name:          FieldAssetName,
			Kind:          KindFreeText,
			MatchKeywords: []string{"assetname", "subsystem", "name"},
			Required:      true,
		},
		{
			Name:          FieldAssetCode,
			Kind:          KindFreeText,
			MatchKeywords: []string{"assetcode", "code"},
		},
		{
			Name:          FieldQuantity,
			Kind:          KindIntegerQuantity,
			MatchKeywords: []string{"quantity", "qty"},
			Required:      true,
		},
		{
			Name:          FieldFunctionalQty,
			Kind:          KindIntegerQuantity,
			MatchKeywords: []string{"functionalqty", "functionalquantity", "functional"},
		},
		{
			Name:          FieldNonFunctionalQty,
			Kind:          KindIntegerQuantity,
			MatchKeywords: []string{"non-functionalqty", "nonfunctionalqty", "non-functionalquantity", "nonfunctional"},
		},
		{
			Name:          FieldUnitCost,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"unitcost", "unitprice", "rate", "cost"},
			Required:      true,
		},
		{
			Name:          FieldTotalValue,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"totalvalue", "value", "total"},
		},
		{
			Name:          FieldUnit,
			Kind:          KindFreeText,
			MatchKeywords: []string{"unit", "uom"},
		},
		{
			Name:          FieldStatus,
			Kind:          KindEnumStatus,
			MatchKeywords: []string{"status", "condition"},
			EnumValues:    []string{StatusFunctional, StatusNonFunctional},
			EnumFallback:  StatusUnknown,
		},
		{
			Name:          FieldExpectedLife,
			Kind:          KindIntegerQuantity,
			MatchKeywords: []string{"expectedlife", "lifespan", "life"},
		},
		{
			Name:          FieldCurrentAge,
			Kind:          KindIntegerQuantity,
			MatchKeywords: []string{"currentage", "age"},
		},
	}}
}

// DamageReportSchema declares the incident-report columns.
func DamageReportSchema() Schema {
	return Schema{Fields: []FieldDef{
		{
			Name:          FieldCaseNo,
			Kind:          KindFreeText,
			MatchKeywords: []string{"caseno", "casenumber", "case"},
			Required:      true,
		},
		{
			Name:          FieldAssetName,
			Kind:          KindFreeText,
			MatchKeywords: []string{"assetname", "asset", "name"},
			Required:      true,
		},
		{
			Name:          FieldLocation,
			Kind:          KindFreeText,
			MatchKeywords: []string{"location", "loc"},
		},
		{
			Name:          FieldReportDate,
			Kind:          KindFreeText,
			MatchKeywords: []string{"reportdate", "date"},
		},
		{
			Name:          FieldReportedBy,
			Kind:          KindFreeText,
			MatchKeywords: []string{"reportedby", "reporter"},
		},
		{
			Name:          FieldStatus,
			Kind:          KindEnumStatus,
			MatchKeywords: []string{"status"},
			Required:      true,
			EnumValues:    []string{ReportStatusPending, ReportStatusEstimated},
			EnumFallback:  ReportStatusPending,
		},
	}}
}

// EstimationSchema declares the cost-estimation columns.
func EstimationSchema() Schema {
	return Schema{Fields: []FieldDef{
		{
			Name:          FieldCaseNo,
			Kind:          KindFreeText,
			MatchKeywords: []string{"caseno", "casenumber", "case"},
			Required:      true,
		},
		{
			Name:          FieldQuantityDamaged,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"quantitydamaged", "qtydamaged", "quantity", "qty"},
		},
		{
			Name:          FieldEstTotal,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"total"},
		},
		{
			Name:          FieldEstVAT,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"vat", "tax"},
		},
		{
			Name:          FieldEstGrandTotal,
			Kind:          KindDecimalCurrency,
			MatchKeywords: []string{"grandtotal", "grand"},
		},
		{
			Name:          FieldEstimatedBy,
			Kind:          KindFreeText,
			MatchKeywords: []string{"estimatedby", "engineer"},
		},
	}}
}

// Estimation is a finalized cost evaluation for a damage case.
type Estimation struct {
	CaseNo          string
	AssetName       string
	QuantityDamaged float64
	UnitCost        float64
	Total           float64
	VAT             float64
	GrandTotal      float64
	EstimatedBy     string
}
