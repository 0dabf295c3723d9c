package contract

import "github.com/worklane/worklane-go/pkg/types"

type MilestoneInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description,omitempty"`
	Amount      float64         `json:"amount" binding:"required"`
	DueDate     *types.FlexTime `json:"due_date,omitempty"`
}

type CreateContractDTO struct {
	ProjectID           string           `json:"project_id" binding:"required"`
	FreelancerID        uint             `json:"freelancer_id" binding:"required"`
	Amount              float64          `json:"amount" binding:"required,gt=0"`
	Currency            string           `json:"currency,omitempty"`
	PaymentType         string           `json:"payment_type" binding:"required,oneof=fixed hourly"`
	StartDate           types.FlexTime   `json:"start_date" binding:"required"`
	EndDate             *types.FlexTime  `json:"end_date,omitempty"`
	WorkingHoursPerWeek *int             `json:"working_hours_per_week,omitempty"`
	Milestones          []MilestoneInput `json:"milestones,omitempty"`
}

type TransitionDTO struct {
	Reason string `json:"reason,omitempty"`
}

type UpdateProgressDTO struct {
	Progress int `json:"progress" binding:"min=0,max=100"`
}
