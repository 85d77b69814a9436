package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/entities"
)

// BooksController serves the catalog CRUD surface under /books.
type BooksController struct {
	store    BookStore
	auditLog AuditLogger
	payloads PayloadAuditor
	now      func() time.Time
}

// NewBooksController creates the controller. auditLog and payloads may be nil.
func NewBooksController(store BookStore, auditLog AuditLogger, payloads PayloadAuditor) *BooksController {
	return &BooksController{
		store:    store,
		auditLog: auditLog,
		payloads: payloads,
		now:      time.Now,
	}
}

// ListBooks returns every record in store order.
// GET /books
func (bc *BooksController) ListBooks(c *gin.Context) {
	all, err := bc.store.List()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, all)
}

// CreateBook persists the body as a new record and returns it with its id.
// POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	book, err := bc.bindBook(c)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	if err := bc.store.Create(&book); err != nil {
		bc.logAudit(c, audit.ActionBookCreate, nil, fmt.Sprintf("Create book %q", book.Title), err)
		respondInternalError(c, err, "create book")
		return
	}

	id := book.ID
	bc.logAudit(c, audit.ActionBookCreate, &id, fmt.Sprintf("Created book %q", book.Title), nil)
	c.JSON(http.StatusOK, book)
}

// UpdateBook replaces title, author and year of an existing record.
// Responds with null when the id does not exist.
// PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	book, err := bc.bindBook(c)
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	updated, err := bc.store.Update(id, book)
	if errors.Is(err, books.ErrBookNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		bc.logAudit(c, audit.ActionBookUpdate, &id, fmt.Sprintf("Update book %d", id), err)
		respondInternalError(c, err, "update book")
		return
	}

	bc.logAudit(c, audit.ActionBookUpdate, &id, fmt.Sprintf("Updated book %d to %q", id, updated.Title), nil)
	c.JSON(http.StatusOK, updated)
}

// DeleteBook removes a record. Missing ids are confirmed all the same.
// DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	if err := bc.store.Delete(id); err != nil {
		bc.logAudit(c, audit.ActionBookDelete, &id, fmt.Sprintf("Delete book %d", id), err)
		respondInternalError(c, err, "delete book")
		return
	}

	bc.logAudit(c, audit.ActionBookDelete, &id, fmt.Sprintf("Deleted book %d", id), nil)
	respondSuccess(c, "Book deleted")
}

// bindBook decodes the request body. An empty body is an empty record.
func (bc *BooksController) bindBook(c *gin.Context) (entities.Book, error) {
	var book entities.Book

	raw, err := c.GetRawData()
	if err != nil {
		return book, fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &book); err != nil {
			return book, fmt.Errorf("decode book: %w", err)
		}
		if bc.payloads != nil {
			if _, err := bc.payloads.SaveJSON(json.RawMessage(raw)); err != nil {
				log.Printf("Failed to save audit payload: %v", err)
			}
		}
	}

	book.ID = 0
	book.ApplyDefaults(bc.now())
	return book, nil
}

func (bc *BooksController) logAudit(c *gin.Context, action audit.CatalogAction, id *uint, description string, err error) {
	if bc.auditLog == nil {
		return
	}
	bc.auditLog.LogCatalog(action, requestMeta(c), id, description, err)
}
