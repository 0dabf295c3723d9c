package repository

import (
	"github.com/worklane/worklane-go/internal/domain/contract"
	"gorm.io/gorm"
)

type ContractRepo interface {
	CreateContract(c *contract.Contract) error
	GetContractByID(id string) (contract.Contract, error)
	UpdateContract(c *contract.Contract) error
	ListContracts() ([]contract.Contract, error)
	ListContractsByClient(clientID uint) ([]contract.Contract, error)
	ListContractsByFreelancer(freelancerID uint) ([]contract.Contract, error)
	ListContractsUpdatedSince(since int64) ([]contract.Contract, error)
	WithTx(tx *gorm.DB) ContractRepo
}

type DBContractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) *DBContractRepo {
	return &DBContractRepo{db: db}
}

func (r *DBContractRepo) CreateContract(c *contract.Contract) error {
	return r.db.Create(c).Error
}

func (r *DBContractRepo) GetContractByID(id string) (contract.Contract, error) {
	var c contract.Contract
	err := r.db.Where("contract_id = ?", id).First(&c).Error
	return c, err
}

func (r *DBContractRepo) UpdateContract(c *contract.Contract) error {
	return r.db.Save(c).Error
}

func (r *DBContractRepo) ListContracts() ([]contract.Contract, error) {
	var contracts []contract.Contract
	err := r.db.Order("create_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) ListContractsByClient(clientID uint) ([]contract.Contract, error) {
	var contracts []contract.Contract
	err := r.db.Where("client_id = ?", clientID).Order("create_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) ListContractsByFreelancer(freelancerID uint) ([]contract.Contract, error) {
	var contracts []contract.Contract
	err := r.db.Where("freelancer_id = ?", freelancerID).Order("create_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) ListContractsUpdatedSince(since int64) ([]contract.Contract, error) {
	var contracts []contract.Contract
	err := r.db.Where("update_at > to_timestamp(?)", since).Order("update_at ASC").Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) WithTx(tx *gorm.DB) ContractRepo {
	if tx == nil {
		return r
	}
	return &DBContractRepo{db: tx}
}
