package application

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/utils"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrMilestoneNotFound = errors.New("milestone not found on contract")
)

type PaymentService struct {
	Repos *repository.Repos
}

func NewPaymentService(repos *repository.Repos) *PaymentService {
	return &PaymentService{Repos: repos}
}

// FundMilestone creates a payment for a contract and moves it straight
// into escrow. For milestone-based funding the amount and currency
// default to the milestone's; hourly contracts fund ad hoc amounts.
func (s *PaymentService) FundMilestone(c *gin.Context, input payment.FundMilestoneDTO) (*payment.Payment, error) {
	ct, err := s.Repos.Contract.GetContractByID(input.ContractID)
	if err != nil {
		return nil, ErrContractNotFound
	}
	if ct.Status != contract.StatusActive {
		return nil, ErrContractNotActive
	}

	gross := 0.0
	if input.Gross != nil {
		gross = *input.Gross
	}
	currency := input.Currency
	if currency == "" {
		currency = ct.Terms.Currency
	}

	if input.MilestoneID != nil {
		found := false
		for _, m := range ct.Milestones {
			if m.ID == *input.MilestoneID {
				if input.Gross == nil {
					gross = m.Amount
				}
				found = true
				break
			}
		}
		if !found {
			return nil, ErrMilestoneNotFound
		}
	}

	p := &payment.Payment{
		ID:          uuid.NewString(),
		ContractID:  ct.ContractID,
		MilestoneID: input.MilestoneID,
		Gross:       gross,
		Currency:    currency,
		Status:      payment.StatusPending,
	}
	if err := s.Repos.Payment.CreatePayment(p); err != nil {
		return nil, err
	}

	// Funding succeeds synchronously here; real charge capture is the
	// payment provider's problem, outside this service.
	if err := p.Transition(payment.StatusEscrowed); err != nil {
		return nil, err
	}
	if err := s.Repos.Payment.UpdatePayment(p); err != nil {
		return nil, err
	}

	go utils.LogAuditWithConsole(c, "fund", "payment", p.ID, nil, p, "", s.Repos.Audit)
	return p, nil
}

func (s *PaymentService) GetPayment(id string) (*payment.Payment, error) {
	p, err := s.Repos.Payment.GetPaymentByID(id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	return &p, nil
}

func (s *PaymentService) ListByContract(contractID string) ([]payment.Payment, error) {
	return s.Repos.Payment.ListPaymentsByContract(contractID)
}

// Release moves an escrowed payment to completed.
func (s *PaymentService) Release(c *gin.Context, id string) (*payment.Payment, error) {
	return s.transition(c, id, payment.StatusCompleted, "release")
}

// Fail marks a pending or escrowed payment as failed.
func (s *PaymentService) Fail(c *gin.Context, id string) (*payment.Payment, error) {
	return s.transition(c, id, payment.StatusFailed, "fail")
}

// Refund reverses an escrowed or completed payment.
func (s *PaymentService) Refund(c *gin.Context, id string) (*payment.Payment, error) {
	return s.transition(c, id, payment.StatusRefunded, "refund")
}

func (s *PaymentService) transition(c *gin.Context, id string, to payment.Status, action string) (*payment.Payment, error) {
	p, err := s.Repos.Payment.GetPaymentByID(id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	old := p
	if err := p.Transition(to); err != nil {
		return nil, err
	}
	if err := s.Repos.Payment.UpdatePayment(&p); err != nil {
		return nil, err
	}

	go utils.LogAuditWithConsole(c, action, "payment", p.ID, old, p, "", s.Repos.Audit)
	return &p, nil
}
