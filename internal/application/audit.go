package application

import (
	"time"

	"github.com/worklane/worklane-go/internal/domain/audit"
	"github.com/worklane/worklane-go/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) ListLogs(limit int) ([]audit.AuditLog, error) {
	return s.Repos.Audit.ListLogs(limit)
}

func (s *AuditService) ListLogsByResource(resourceType, resourceID string) ([]audit.AuditLog, error) {
	return s.Repos.Audit.ListLogsByResource(resourceType, resourceID)
}

func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.Repos.Audit.DeleteLogsBefore(cutoff)
}
