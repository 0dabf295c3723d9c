package repository

import (
	"time"

	"github.com/worklane/worklane-go/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	CreateLog(entry *audit.AuditLog) error
	ListLogs(limit int) ([]audit.AuditLog, error)
	ListLogsByResource(resourceType, resourceID string) ([]audit.AuditLog, error)
	DeleteLogsBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) ListLogs(limit int) ([]audit.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []audit.AuditLog
	err := r.db.Order("create_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) ListLogsByResource(resourceType, resourceID string) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := r.db.
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("create_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) DeleteLogsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("create_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
