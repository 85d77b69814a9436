package http

import (
	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/entities"
)

// BookStore is the persistence surface the catalog endpoints need.
type BookStore interface {
	List() ([]entities.Book, error)
	Create(book *entities.Book) error
	Update(id uint, fields entities.Book) (*entities.Book, error)
	Delete(id uint) error
}

// BookCounter reports the catalog size for health checks.
type BookCounter interface {
	Count() (int64, error)
}

// AuditLogger records catalog mutations.
type AuditLogger interface {
	LogCatalog(action audit.CatalogAction, meta audit.RequestMeta, entityID *uint, description string, err error)
}

// PayloadAuditor keeps a copy of raw request payloads.
type PayloadAuditor interface {
	SaveJSON(data any) (string, error)
}
