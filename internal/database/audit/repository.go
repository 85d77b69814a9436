package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// CountEvents returns the number of stored audit events.
func (r *Repository) CountEvents() (int64, error) {
	var total int64
	err := r.db.Model(&entities.AuditEvent{}).Count(&total).Error
	return total, err
}

// DeleteOldEvents removes audit events older than the retention period.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(retention time.Duration) (int64, error) {
	olderThan := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}
