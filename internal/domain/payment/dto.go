package payment

type FundMilestoneDTO struct {
	ContractID  string   `json:"contract_id" binding:"required"`
	MilestoneID *string  `json:"milestone_id,omitempty"`
	Gross       *float64 `json:"gross,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}
