package application_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/internal/repository/mock"
	"github.com/worklane/worklane-go/pkg/utils"
	"gorm.io/gorm"
)

func setupPaymentMocks(t *testing.T) (*application.PaymentService,
	*mock.MockContractRepo,
	*mock.MockPaymentRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockContract := mock.NewMockContractRepo(ctrl)
	mockPayment := mock.NewMockPaymentRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Contract: mockContract,
		Payment:  mockPayment,
		Audit:    mockAudit,
	}

	svc := application.NewPaymentService(repos)
	c, _ := gin.CreateTestContext(nil)

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}

	return svc, mockContract, mockPayment, c
}

func ptrString(s string) *string { return &s }

func ptrFloat(f float64) *float64 { return &f }

func TestFundMilestone(t *testing.T) {
	t.Run("defaults amount and currency from milestone", func(t *testing.T) {
		svc, mockContract, mockPayment, c := setupPaymentMocks(t)

		ct := fixedPriceContract(contract.StatusActive)
		mockContract.EXPECT().GetContractByID("ct-1").Return(ct, nil)
		mockPayment.EXPECT().CreatePayment(gomock.Any()).Return(nil)
		mockPayment.EXPECT().UpdatePayment(gomock.Any()).Return(nil)

		p, err := svc.FundMilestone(c, payment.FundMilestoneDTO{
			ContractID:  "ct-1",
			MilestoneID: ptrString("m-2"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 2000.0, p.Gross)
		assert.Equal(t, "USD", p.Currency)
		assert.Equal(t, payment.StatusEscrowed, p.Status)
		assert.Equal(t, "ct-1", p.ContractID)
	})

	t.Run("hourly funding with explicit amount", func(t *testing.T) {
		svc, mockContract, mockPayment, c := setupPaymentMocks(t)

		ct := fixedPriceContract(contract.StatusActive)
		ct.Terms.PaymentType = string(contract.PaymentTypeHourly)
		ct.Milestones = nil
		mockContract.EXPECT().GetContractByID("ct-1").Return(ct, nil)
		mockPayment.EXPECT().CreatePayment(gomock.Any()).Return(nil)
		mockPayment.EXPECT().UpdatePayment(gomock.Any()).Return(nil)

		p, err := svc.FundMilestone(c, payment.FundMilestoneDTO{
			ContractID: "ct-1",
			Gross:      ptrFloat(450),
			Currency:   "EUR",
		})
		assert.NoError(t, err)
		assert.Equal(t, 450.0, p.Gross)
		assert.Equal(t, "EUR", p.Currency)
		assert.Nil(t, p.MilestoneID)
	})

	t.Run("inactive contract rejected", func(t *testing.T) {
		svc, mockContract, _, c := setupPaymentMocks(t)

		ct := fixedPriceContract(contract.StatusPendingAcceptance)
		mockContract.EXPECT().GetContractByID("ct-1").Return(ct, nil)

		_, err := svc.FundMilestone(c, payment.FundMilestoneDTO{
			ContractID:  "ct-1",
			MilestoneID: ptrString("m-1"),
		})
		assert.ErrorIs(t, err, application.ErrContractNotActive)
	})

	t.Run("unknown milestone rejected", func(t *testing.T) {
		svc, mockContract, _, c := setupPaymentMocks(t)

		ct := fixedPriceContract(contract.StatusActive)
		mockContract.EXPECT().GetContractByID("ct-1").Return(ct, nil)

		_, err := svc.FundMilestone(c, payment.FundMilestoneDTO{
			ContractID:  "ct-1",
			MilestoneID: ptrString("m-9"),
		})
		assert.ErrorIs(t, err, application.ErrMilestoneNotFound)
	})
}

func TestPaymentTransitions(t *testing.T) {
	escrowed := payment.Payment{
		ID:         "pay-1",
		ContractID: "ct-1",
		Gross:      2000,
		Currency:   "USD",
		Status:     payment.StatusEscrowed,
	}

	t.Run("release", func(t *testing.T) {
		svc, _, mockPayment, c := setupPaymentMocks(t)

		mockPayment.EXPECT().GetPaymentByID("pay-1").Return(escrowed, nil)
		mockPayment.EXPECT().UpdatePayment(gomock.Any()).Return(nil)

		p, err := svc.Release(c, "pay-1")
		assert.NoError(t, err)
		assert.Equal(t, payment.StatusCompleted, p.Status)
	})

	t.Run("refund completed payment", func(t *testing.T) {
		svc, _, mockPayment, c := setupPaymentMocks(t)

		done := escrowed
		done.Status = payment.StatusCompleted
		mockPayment.EXPECT().GetPaymentByID("pay-1").Return(done, nil)
		mockPayment.EXPECT().UpdatePayment(gomock.Any()).Return(nil)

		p, err := svc.Refund(c, "pay-1")
		assert.NoError(t, err)
		assert.Equal(t, payment.StatusRefunded, p.Status)
	})

	t.Run("refund failed payment rejected", func(t *testing.T) {
		svc, _, mockPayment, c := setupPaymentMocks(t)

		failed := escrowed
		failed.Status = payment.StatusFailed
		mockPayment.EXPECT().GetPaymentByID("pay-1").Return(failed, nil)

		_, err := svc.Refund(c, "pay-1")
		assert.ErrorIs(t, err, payment.ErrInvalidTransition)
	})

	t.Run("unknown payment", func(t *testing.T) {
		svc, _, mockPayment, c := setupPaymentMocks(t)

		mockPayment.EXPECT().GetPaymentByID("nope").Return(payment.Payment{}, gorm.ErrRecordNotFound)

		_, err := svc.Fail(c, "nope")
		assert.ErrorIs(t, err, application.ErrPaymentNotFound)
	})
}
