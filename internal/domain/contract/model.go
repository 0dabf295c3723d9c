package contract

import (
	"time"

	"github.com/worklane/worklane-go/pkg/finance"
)

type PaymentType string

const (
	PaymentTypeFixed  PaymentType = "fixed"
	PaymentTypeHourly PaymentType = "hourly"
)

// Terms are agreed at offer time and frozen once the contract goes
// active. Amount is the total contracted value for fixed-price work.
type Terms struct {
	Amount              float64    `gorm:"column:amount;not null" json:"amount"`
	Currency            string     `gorm:"column:currency;size:3;default:'USD';not null" json:"currency"`
	PaymentType         string     `gorm:"column:payment_type;size:10;not null" json:"payment_type"`
	StartDate           time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate             *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	WorkingHoursPerWeek *int       `gorm:"column:working_hours_per_week" json:"working_hours_per_week,omitempty"`
}

// Milestone is a payable unit of work owned by its contract. IDs are
// unique within the contract only; milestones never exist on their own.
type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
}

// Contract is one client–freelancer engagement for one project.
// Milestones are embedded as a jsonb document, matching the snapshot
// shape upstream feeds deliver.
type Contract struct {
	ContractID   string      `gorm:"primaryKey;column:contract_id;size:36" json:"contract_id"`
	ProjectID    string      `gorm:"column:project_id;size:36;index;not null" json:"project_id"`
	ClientID     uint        `gorm:"column:client_id;index;not null" json:"client_id"`
	FreelancerID uint        `gorm:"column:freelancer_id;index;not null" json:"freelancer_id"`
	Terms        Terms       `gorm:"embedded;embeddedPrefix:terms_" json:"terms"`
	Status       Status      `gorm:"column:status;size:30;default:'pending_acceptance';not null" json:"status"`
	Progress     int         `gorm:"column:progress;default:0" json:"progress"`
	Milestones   []Milestone `gorm:"column:milestones;serializer:json;type:jsonb" json:"milestones"`
	CreatedAt    time.Time   `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) IsFixedPrice() bool {
	return c.Terms.PaymentType == string(PaymentTypeFixed)
}

// Record projects the contract into the read-only snapshot shape the
// financial core consumes.
func (c *Contract) Record() finance.ContractRecord {
	milestones := make([]finance.MilestoneRecord, 0, len(c.Milestones))
	for _, m := range c.Milestones {
		milestones = append(milestones, finance.MilestoneRecord{
			ID:     m.ID,
			Title:  m.Title,
			Amount: m.Amount,
			Status: m.Status,
		})
	}
	return finance.ContractRecord{
		ContractID:  c.ContractID,
		TotalAmount: c.Terms.Amount,
		Currency:    c.Terms.Currency,
		PaymentType: c.Terms.PaymentType,
		Milestones:  milestones,
	}
}
