package audit

import (
	"log"
	"sync"
	"time"

	"github.com/mrlokans/booklist/internal/database/audit"
	"github.com/mrlokans/booklist/internal/entities"
)

// CatalogAction names a catalog mutation recorded in the audit trail.
type CatalogAction string

const (
	ActionBookCreate CatalogAction = "book_create"
	ActionBookUpdate CatalogAction = "book_update"
	ActionBookDelete CatalogAction = "book_delete"
)

// RequestMeta identifies the HTTP request that triggered an event.
type RequestMeta struct {
	RequestID string
	IPAddress string
	UserAgent string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Flush blocks until every event queued with LogAsync has been written.
func (s *Service) Flush() {
	s.wg.Wait()
}

// LogCatalog records a create, update or delete against the catalog.
// entityID may be nil when the record was never identified (failed create).
func (s *Service) LogCatalog(action CatalogAction, meta RequestMeta, entityID *uint, description string, err error) {
	event := &entities.AuditEvent{
		RequestID:   meta.RequestID,
		EventType:   entities.AuditEventCatalog,
		Action:      string(action),
		Description: truncate(description, 500),
		EntityType:  "book",
		EntityID:    entityID,
		IPAddress:   meta.IPAddress,
		UserAgent:   truncate(meta.UserAgent, 500),
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogCleanup records a retention sweep.
func (s *Service) LogCleanup(description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCleanup,
		Action:      "audit_cleanup",
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// CountEvents returns the number of stored audit events.
func (s *Service) CountEvents() (int64, error) {
	return s.repo.CountEvents()
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	return s.repo.DeleteOldEvents(retention)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
