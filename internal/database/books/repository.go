// Package books provides database operations for catalog book records.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	all, err := repo.List()
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/entities"
)

// ErrBookNotFound is returned by Update when no record matches the identifier.
var ErrBookNotFound = errors.New("book not found")

// Repository handles all book record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every record in store order.
func (r *Repository) List() ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.Find(&books).Error
	return books, err
}

// Create persists a new record. The store assigns book.ID.
func (r *Repository) Create(book *entities.Book) error {
	book.ID = 0
	return r.db.Create(book).Error
}

// Update replaces title, author and year of the record with the given id.
// Returns ErrBookNotFound and leaves the store untouched if it does not exist.
func (r *Repository) Update(id uint, fields entities.Book) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	book.Title = fields.Title
	book.Author = fields.Author
	book.Year = fields.Year

	if err := r.db.Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes the record with the given id. Deleting a missing id is not an error.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// Count returns the number of stored records.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Book{}).Count(&n).Error
	return n, err
}
