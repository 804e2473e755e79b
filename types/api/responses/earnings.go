package responses

import (
	"time"

	"github.com/swifthaul/swifthaul-api/types/business"
)

// EarningsCalculationResult is the discriminated outcome of a settlement
// calculation. A rejected calculation has Success=false, a nil Breakdown and
// a non-empty Errors list; a successful-but-concerning one has Success=true
// and a non-empty Warnings list.
type EarningsCalculationResult struct {
	Success          bool                        `json:"success"`
	Breakdown        *business.EarningsBreakdown `json:"breakdown,omitempty"`
	Warnings         []string                    `json:"warnings"`
	Errors           []string                    `json:"errors,omitempty"`
	ComplianceStatus string                      `json:"compliance_status"`
	Currency         string                      `json:"currency"`
	CalculatedAt     time.Time                   `json:"calculated_at"`
}
