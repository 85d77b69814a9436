package http

import (
	"github.com/mrlokans/booklist/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore   BookStore
	BookCounter BookCounter
	Database    *database.Database

	// Audit trail (optional)
	AuditLogger    AuditLogger
	PayloadAuditor PayloadAuditor

	// Application info
	Version string
}
