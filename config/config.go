package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yourusername/asset-sheet-service/internal/domain/constants"
)

// Config is the application configuration.
type Config struct {
	// Google Sheets transport
	SpreadsheetID   string
	CredentialsFile string

	// Local workbook transport; used instead of Google Sheets when set
	XLSXFile string

	// Worksheet names
	AssetRegistrySheet string
	DamageReportsSheet string
	EstimationsSheet   string

	// Optional write-back audit store
	AuditDBDSN string

	VATRate float64
	DryRun  bool
}

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		SpreadsheetID:      strings.TrimSpace(os.Getenv("SPREADSHEET_ID")),
		CredentialsFile:    strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_FILE")),
		XLSXFile:           strings.TrimSpace(os.Getenv("XLSX_FILE")),
		AssetRegistrySheet: getEnvDefault("ASSET_REGISTRY_SHEET", constants.DefaultAssetRegistrySheet),
		DamageReportsSheet: getEnvDefault("DAMAGE_REPORTS_SHEET", constants.DefaultDamageReportsSheet),
		EstimationsSheet:   getEnvDefault("ESTIMATIONS_SHEET", constants.DefaultEstimationsSheet),
		AuditDBDSN:         strings.TrimSpace(os.Getenv("AUDIT_DB_DSN")),
		VATRate:            getEnvFloat("VAT_RATE", constants.DefaultVATRate),
		DryRun:             getEnvBool("DRY_RUN", false),
	}

	if cfg.XLSXFile == "" {
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID is empty (or set XLSX_FILE for a local workbook)")
		}
		if cfg.CredentialsFile == "" {
			return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE is empty (service-account JSON path)")
		}
	}
	if cfg.VATRate < 0 || cfg.VATRate >= 1 {
		return nil, fmt.Errorf("VAT_RATE must be a fraction in [0,1), got %v", cfg.VATRate)
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
