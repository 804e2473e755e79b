package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Compliance statuses
	ComplianceStatusCompliant    = "COMPLIANT"
	ComplianceStatusWarning      = "WARNING"
	ComplianceStatusNonCompliant = "NON_COMPLIANT"

	// Urgency levels
	UrgencyStandard = "standard"
	UrgencyExpress  = "express"
	UrgencyPremium  = "premium"

	// Service types
	ServiceTypeStandard = "standard"
	ServiceTypeLuxury   = "luxury"

	// Assignment status values
	AssignmentCompletedStatus = "COMPLETED"

	// Currencies
	GBPCurrency = "GBP"
)
