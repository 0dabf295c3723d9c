package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/worklane/worklane-go/pkg/finance"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusEscrowed  Status = "escrowed"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

var ErrInvalidTransition = errors.New("invalid payment status transition")

// transitions: pending -> escrowed -> completed on the happy path,
// failed/refunded on exception paths. Completed and refunded records
// are immutable.
var transitions = map[Status][]Status{
	StatusPending:   {StatusEscrowed, StatusFailed},
	StatusEscrowed:  {StatusCompleted, StatusFailed, StatusRefunded},
	StatusCompleted: {StatusRefunded},
	StatusFailed:    {},
	StatusRefunded:  {},
}

// Payment is one monetary transfer tied to a contract and, for
// milestone-based work, to one milestone.
type Payment struct {
	ID          string    `gorm:"primaryKey;column:payment_id;size:36" json:"id"`
	ContractID  string    `gorm:"column:contract_id;size:36;index;not null" json:"contract_id"`
	MilestoneID *string   `gorm:"column:milestone_id;size:36;index" json:"milestone_id,omitempty"`
	Gross       float64   `gorm:"column:gross;not null" json:"gross"`
	Currency    string    `gorm:"column:currency;size:3;default:'USD';not null" json:"currency"`
	Status      Status    `gorm:"column:status;size:20;default:'pending';not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsTerminal reports whether no further transition exists. Completed is
// not listed: a completed payment can still be refunded.
func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusRefunded
}

// Transition moves the payment to a new status, leaving it untouched on
// failure.
func (p *Payment) Transition(to Status) error {
	for _, next := range transitions[p.Status] {
		if next == to {
			p.Status = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, to)
}

// Record projects the payment into the read-only snapshot shape the
// financial core consumes.
func (p *Payment) Record() finance.PaymentRecord {
	record := finance.PaymentRecord{
		ID:         p.ID,
		ContractID: p.ContractID,
		Gross:      p.Gross,
		Currency:   p.Currency,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
	}
	if p.MilestoneID != nil {
		record.MilestoneID = *p.MilestoneID
	}
	return record
}

// Records converts a payment slice for the aggregator.
func Records(payments []Payment) []finance.PaymentRecord {
	records := make([]finance.PaymentRecord, 0, len(payments))
	for i := range payments {
		records = append(records, payments[i].Record())
	}
	return records
}
