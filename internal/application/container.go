package application

import (
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/finance"
)

type Services struct {
	User      *UserService
	Contract  *ContractService
	Payment   *PaymentService
	Dashboard *DashboardService
	Audit     *AuditService
}

func New(repos *repository.Repos, rates finance.RateTable) *Services {
	agg := finance.NewAggregator(rates)
	return &Services{
		User:      NewUserService(repos),
		Contract:  NewContractService(repos),
		Payment:   NewPaymentService(repos),
		Dashboard: NewDashboardService(repos, agg),
		Audit:     NewAuditService(repos),
	}
}
