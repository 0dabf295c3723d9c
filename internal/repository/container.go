package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Contract ContractRepo
	Payment  PaymentRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Contract: NewContractRepo(db),
		Payment:  NewPaymentRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}
