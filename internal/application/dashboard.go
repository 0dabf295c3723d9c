package application

import (
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/finance"
	"github.com/worklane/worklane-go/pkg/response"
)

// DashboardService is the read side every dashboard goes through. All
// money math is delegated to the one aggregator so the client page, the
// freelancer page, and the payment history can never disagree about
// what "pending" means.
type DashboardService struct {
	Repos *repository.Repos
	Agg   *finance.Aggregator
}

func NewDashboardService(repos *repository.Repos, agg *finance.Aggregator) *DashboardService {
	return &DashboardService{Repos: repos, Agg: agg}
}

// ClientDashboard renders per-contract breakdowns for a client plus a
// spend rollup in reportingCurrency.
func (s *DashboardService) ClientDashboard(clientID uint, reportingCurrency string) (*response.DashboardResponse, error) {
	contracts, err := s.Repos.Contract.ListContractsByClient(clientID)
	if err != nil {
		return nil, err
	}
	return s.assemble(contracts, reportingCurrency)
}

// FreelancerDashboard renders the freelancer's contract list with
// progress and an earnings rollup.
func (s *DashboardService) FreelancerDashboard(freelancerID uint, reportingCurrency string) (*response.DashboardResponse, error) {
	contracts, err := s.Repos.Contract.ListContractsByFreelancer(freelancerID)
	if err != nil {
		return nil, err
	}
	return s.assemble(contracts, reportingCurrency)
}

// PaymentHistory lists every payment across a user's contracts, newest
// contract first, for the payments page.
func (s *DashboardService) PaymentHistory(userID uint, role string) ([]payment.Payment, error) {
	var contracts []contract.Contract
	var err error
	if role == "freelancer" {
		contracts, err = s.Repos.Contract.ListContractsByFreelancer(userID)
	} else {
		contracts, err = s.Repos.Contract.ListContractsByClient(userID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(contracts))
	for _, ct := range contracts {
		ids = append(ids, ct.ContractID)
	}
	return s.Repos.Payment.ListPaymentsByContracts(ids)
}

func (s *DashboardService) assemble(contracts []contract.Contract, reportingCurrency string) (*response.DashboardResponse, error) {
	ids := make([]string, 0, len(contracts))
	records := make([]finance.ContractRecord, 0, len(contracts))
	for i := range contracts {
		ids = append(ids, contracts[i].ContractID)
		records = append(records, contracts[i].Record())
	}

	payments, err := s.Repos.Payment.ListPaymentsByContracts(ids)
	if err != nil {
		return nil, err
	}
	paymentRecords := payment.Records(payments)

	resp := &response.DashboardResponse{
		Contracts: make([]response.ContractView, 0, len(contracts)),
	}
	for i := range contracts {
		breakdown, warnings := s.Agg.Breakdown(records[i], paymentRecords)
		resp.Contracts = append(resp.Contracts, response.ContractView{
			Contract:  contracts[i],
			Breakdown: breakdown,
			Warnings:  warnings,
		})
	}

	rollup, warnings := s.Agg.PortfolioRollup(records, paymentRecords, reportingCurrency)
	resp.Summary = rollup
	resp.Warnings = warnings
	return resp, nil
}
