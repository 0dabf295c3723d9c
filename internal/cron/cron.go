package cron

import (
	"log"
	"time"

	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/config"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		days := config.AuditRetentionDays
		log.Printf("Starting background cleanup task (retention: %d days)", days)

		// Run immediately on startup
		if _, err := auditService.CleanupOldLogs(days); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			deleted, err := auditService.CleanupOldLogs(days)
			if err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Printf("Audit log cleanup completed, removed %d entries", deleted)
			}
		}
	}()
}
