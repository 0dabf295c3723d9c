package response

import "github.com/worklane/worklane-go/pkg/finance"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ContractView pairs a contract with its financial breakdown and any
// data-quality warnings flagged while computing it.
type ContractView struct {
	Contract  interface{}       `json:"contract"`
	Breakdown finance.Breakdown `json:"breakdown"`
	Warnings  []finance.Warning `json:"warnings,omitempty"`
}

// DashboardResponse is the shape both role dashboards render: one card
// per contract plus a portfolio summary.
type DashboardResponse struct {
	Contracts []ContractView    `json:"contracts"`
	Summary   finance.Rollup    `json:"summary"`
	Warnings  []finance.Warning `json:"warnings,omitempty"`
}
