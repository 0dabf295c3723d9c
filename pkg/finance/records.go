package finance

import "time"

// Status values mirror the snapshot records delivered by the store feed.
const (
	MilestonePending   = "pending"
	MilestoneActive    = "active"
	MilestoneInReview  = "in_review"
	MilestoneCompleted = "completed"
)

const (
	PaymentPending   = "pending"
	PaymentEscrowed  = "escrowed"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

const (
	PaymentTypeFixed  = "fixed"
	PaymentTypeHourly = "hourly"
)

// MilestoneRecord is a read-only milestone snapshot.
type MilestoneRecord struct {
	ID     string
	Title  string
	Amount float64
	Status string
}

// PaymentRecord is a read-only payment snapshot.
type PaymentRecord struct {
	ID          string
	ContractID  string
	MilestoneID string
	Gross       float64
	Currency    string
	Status      string
	CreatedAt   time.Time
}

// ContractRecord is the slice of a contract the financial core needs.
// TotalAmount is terms.amount and is authoritative for the residual
// pending computation even when milestone sums disagree.
type ContractRecord struct {
	ContractID  string
	TotalAmount float64
	Currency    string
	PaymentType string
	Milestones  []MilestoneRecord
}

// Warning codes.
const (
	WarnDataQuality      = "data_quality"
	WarnMissingReference = "missing_reference"
)

// Warning flags an inconsistent record without failing the computation.
// A malformed milestone or an unreconciled payment contributes zero to
// the sums and is reported here so the caller can render a badge instead
// of crashing the page.
type Warning struct {
	Code    string `json:"code"`
	Ref     string `json:"ref,omitempty"`
	Message string `json:"message"`
}

func dataQuality(ref, message string) Warning {
	return Warning{Code: WarnDataQuality, Ref: ref, Message: message}
}

func missingReference(ref, message string) Warning {
	return Warning{Code: WarnMissingReference, Ref: ref, Message: message}
}
