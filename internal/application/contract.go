package application

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrContractNotActive = errors.New("contract is not active")
	ErrProgressDerived   = errors.New("progress is derived from milestones for fixed-price contracts")
)

type ContractService struct {
	Repos *repository.Repos
}

func NewContractService(repos *repository.Repos) *ContractService {
	return &ContractService{Repos: repos}
}

// CreateContract records a client's offer. The contract starts in
// pending_acceptance; milestones get contract-scoped ids and start
// pending. A milestone sum that disagrees with the contracted amount is
// accepted but logged, matching how offers arrive from the wizard.
func (s *ContractService) CreateContract(c *gin.Context, clientID uint, input contract.CreateContractDTO) (*contract.Contract, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	ct := &contract.Contract{
		ContractID:   uuid.NewString(),
		ProjectID:    input.ProjectID,
		ClientID:     clientID,
		FreelancerID: input.FreelancerID,
		Status:       contract.StatusPendingAcceptance,
		Terms: contract.Terms{
			Amount:              input.Amount,
			Currency:            currency,
			PaymentType:         input.PaymentType,
			StartDate:           input.StartDate.Time,
			WorkingHoursPerWeek: input.WorkingHoursPerWeek,
		},
	}
	if input.EndDate != nil {
		end := input.EndDate.Time
		ct.Terms.EndDate = &end
	}

	var milestoneSum float64
	for _, m := range input.Milestones {
		due := m.DueDate
		milestone := contract.Milestone{
			ID:          uuid.NewString(),
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			Status:      contract.MilestonePending,
		}
		if due != nil {
			d := due.Time
			milestone.DueDate = &d
		}
		ct.Milestones = append(ct.Milestones, milestone)
		milestoneSum += m.Amount
	}
	if ct.IsFixedPrice() && len(ct.Milestones) > 0 && math.Abs(milestoneSum-ct.Terms.Amount) > 0.01 {
		log.Printf("contract %s: milestones sum to %.2f but terms amount is %.2f",
			ct.ContractID, milestoneSum, ct.Terms.Amount)
	}

	if err := s.Repos.Contract.CreateContract(ct); err != nil {
		return nil, err
	}

	go utils.LogAuditWithConsole(c, "create", "contract", ct.ContractID, nil, ct, "", s.Repos.Audit)
	return ct, nil
}

func (s *ContractService) GetContract(id string) (*contract.Contract, error) {
	ct, err := s.Repos.Contract.GetContractByID(id)
	if err != nil {
		return nil, ErrContractNotFound
	}
	return &ct, nil
}

func (s *ContractService) ListContracts() ([]contract.Contract, error) {
	return s.Repos.Contract.ListContracts()
}

// ListContractsForUser scopes the contract list to the caller's side of
// the marketplace. Admins get the full list.
func (s *ContractService) ListContractsForUser(userID uint, role string) ([]contract.Contract, error) {
	switch role {
	case "freelancer":
		return s.Repos.Contract.ListContractsByFreelancer(userID)
	case "client":
		return s.Repos.Contract.ListContractsByClient(userID)
	default:
		return s.Repos.Contract.ListContracts()
	}
}

// Transition applies a caller-invoked status change and audits it. The
// state machine rejects anything outside the transition table and the
// contract row is only written on success.
func (s *ContractService) Transition(c *gin.Context, id string, to contract.Status, reason string) (*contract.Contract, error) {
	ct, err := s.Repos.Contract.GetContractByID(id)
	if err != nil {
		return nil, ErrContractNotFound
	}

	old := ct
	if err := ct.Transition(to); err != nil {
		return nil, err
	}

	if err := s.Repos.Contract.UpdateContract(&ct); err != nil {
		return nil, err
	}

	go utils.LogAuditWithConsole(c, "transition", "contract", ct.ContractID, old, ct, reason, s.Repos.Audit)
	return &ct, nil
}

// UpdateProgress stores externally supplied progress. Only hourly and
// zero-milestone contracts take it; fixed-price progress is derived.
func (s *ContractService) UpdateProgress(c *gin.Context, id string, progress int) (*contract.Contract, error) {
	ct, err := s.Repos.Contract.GetContractByID(id)
	if err != nil {
		return nil, ErrContractNotFound
	}
	if ct.IsFixedPrice() && len(ct.Milestones) > 0 {
		return nil, ErrProgressDerived
	}
	if ct.Status != contract.StatusActive {
		return nil, ErrContractNotActive
	}

	old := ct
	ct.Progress = progress
	if err := s.Repos.Contract.UpdateContract(&ct); err != nil {
		return nil, err
	}

	go utils.LogAuditWithConsole(c, "progress", "contract", ct.ContractID, old, ct, "", s.Repos.Audit)
	return &ct, nil
}

// TransitionMilestone advances one milestone. Approving a milestone
// (-> completed) also releases its escrowed payment when one exists.
func (s *ContractService) TransitionMilestone(c *gin.Context, contractID, milestoneID, to string) (*contract.Contract, error) {
	ct, err := s.Repos.Contract.GetContractByID(contractID)
	if err != nil {
		return nil, ErrContractNotFound
	}
	if ct.Status != contract.StatusActive {
		return nil, ErrContractNotActive
	}

	old := ct
	if err := ct.TransitionMilestone(milestoneID, to); err != nil {
		return nil, err
	}

	// The escrow release and the milestone update must land together:
	// a released payment with the milestone still in_review is money
	// the freelancer sees that the contract does not.
	tx := s.Repos.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var released *payment.Payment
	if to == contract.MilestoneCompleted {
		p, err := s.releaseEscrow(tx, ct.ContractID, milestoneID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		released = p
	}

	if err := s.Repos.Contract.WithTx(tx).UpdateContract(&ct); err != nil {
		tx.Rollback()
		return nil, err
	}

	if res := tx.Commit(); res.Error != nil {
		return nil, fmt.Errorf("transaction commit failed: %w", res.Error)
	}

	if released != nil {
		go utils.LogAuditWithConsole(c, "release", "payment", released.ID, nil, *released, milestoneID, s.Repos.Audit)
	}
	go utils.LogAuditWithConsole(c, "milestone_"+to, "contract", ct.ContractID, old, ct, milestoneID, s.Repos.Audit)
	return &ct, nil
}

// releaseEscrow completes the escrowed payment backing a milestone,
// writing through the caller's transaction. An unfunded milestone is
// not an error; the client simply approved work before funding it.
func (s *ContractService) releaseEscrow(tx *gorm.DB, contractID, milestoneID string) (*payment.Payment, error) {
	p, err := s.Repos.Payment.WithTx(tx).GetEscrowedPaymentForMilestone(contractID, milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := p.Transition(payment.StatusCompleted); err != nil {
		return nil, fmt.Errorf("release escrow for milestone %s: %w", milestoneID, err)
	}
	if err := s.Repos.Payment.WithTx(tx).UpdatePayment(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
