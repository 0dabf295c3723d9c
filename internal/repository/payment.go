package repository

import (
	"github.com/worklane/worklane-go/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	CreatePayment(p *payment.Payment) error
	GetPaymentByID(id string) (payment.Payment, error)
	UpdatePayment(p *payment.Payment) error
	ListPaymentsByContract(contractID string) ([]payment.Payment, error)
	ListPaymentsByContracts(contractIDs []string) ([]payment.Payment, error)
	GetEscrowedPaymentForMilestone(contractID, milestoneID string) (payment.Payment, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{db: db}
}

func (r *DBPaymentRepo) CreatePayment(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) GetPaymentByID(id string) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.Where("payment_id = ?", id).First(&p).Error
	return p, err
}

func (r *DBPaymentRepo) UpdatePayment(p *payment.Payment) error {
	return r.db.Save(p).Error
}

func (r *DBPaymentRepo) ListPaymentsByContract(contractID string) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.Where("contract_id = ?", contractID).Order("create_at ASC").Find(&payments).Error
	return payments, err
}

func (r *DBPaymentRepo) ListPaymentsByContracts(contractIDs []string) ([]payment.Payment, error) {
	if len(contractIDs) == 0 {
		return nil, nil
	}
	var payments []payment.Payment
	err := r.db.Where("contract_id IN ?", contractIDs).Order("create_at ASC").Find(&payments).Error
	return payments, err
}

func (r *DBPaymentRepo) GetEscrowedPaymentForMilestone(contractID, milestoneID string) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.
		Where("contract_id = ? AND milestone_id = ? AND status = ?", contractID, milestoneID, payment.StatusEscrowed).
		Order("create_at DESC").
		First(&p).Error
	return p, err
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{db: tx}
}
