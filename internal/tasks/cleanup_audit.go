package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

const defaultAuditRetentionDays = 30

// AuditEventCleaner deletes old audit events and reports how many are left.
type AuditEventCleaner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
	CountEvents() (int64, error)
}

// CleanupReporter is told the outcome of every sweep. May be nil.
type CleanupReporter interface {
	LogCleanup(description string, err error)
}

// CleanupAuditEventsTask removes audit events older than the configured retention period.
type CleanupAuditEventsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit cleanup tasks.
func (t CleanupAuditEventsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_audit_events",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupAuditEventsProcessor creates a processor function for CleanupAuditEventsTask.
func CleanupAuditEventsProcessor(cleaner AuditEventCleaner, reporter CleanupReporter) backlite.QueueProcessor[CleanupAuditEventsTask] {
	return func(ctx context.Context, task CleanupAuditEventsTask) error {
		if cleaner == nil {
			return fmt.Errorf("audit event cleaner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = defaultAuditRetentionDays
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := cleaner.DeleteOldEvents(retention)
		if err != nil {
			err = fmt.Errorf("cleanup audit events: %w", err)
			if reporter != nil {
				reporter.LogCleanup("Audit cleanup failed", err)
			}
			return err
		}

		msg := fmt.Sprintf("Cleaned up %d audit events older than %d days", deleted, retentionDays)
		if remaining, err := cleaner.CountEvents(); err != nil {
			log.Printf("[TASK] Failed to count remaining audit events: %v", err)
		} else {
			msg += fmt.Sprintf(", %d remaining", remaining)
		}
		log.Printf("[TASK] %s", msg)
		if reporter != nil {
			reporter.LogCleanup(msg, nil)
		}
		return nil
	}
}

// NewCleanupAuditEventsQueue creates a backlite queue for audit cleanup tasks.
func NewCleanupAuditEventsQueue(cleaner AuditEventCleaner, reporter CleanupReporter) backlite.Queue {
	return backlite.NewQueue(CleanupAuditEventsProcessor(cleaner, reporter))
}
