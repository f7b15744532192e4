package constants

// Worksheet name defaults
const (
	DefaultAssetRegistrySheet = "AssetRegistry"
	DefaultDamageReportsSheet = "DamageReports"
	DefaultEstimationsSheet   = "Estimations"
)

// Estimation constants
const (
	// DefaultVATRate applied on top of the damage total (fraction).
	DefaultVATRate = 0.15
)
