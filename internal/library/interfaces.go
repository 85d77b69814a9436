package library

import (
	"context"

	"github.com/mrlokans/booklist/internal/catalog"
)

// Catalog is the remote book service.
type Catalog interface {
	List(ctx context.Context) ([]catalog.Book, error)
	Create(ctx context.Context, book catalog.Book) (*catalog.Book, error)
	Update(ctx context.Context, id int64, book catalog.Book) (*catalog.Book, error)
	Delete(ctx context.Context, id int64) error
}

// LocalStore is the on-device fallback list.
type LocalStore interface {
	Load() ([]catalog.Book, error)
	Append(book catalog.Book) error
	Replace(id int64, input catalog.Book) (bool, error)
	Remove(id int64) error
}

// View presents the book list to the user.
type View interface {
	// Show replaces the displayed list.
	Show(books []catalog.Book)
	// Append adds one record to the end of the displayed list.
	Append(book catalog.Book)
	// ResetForm clears the add form.
	ResetForm()
	// Alert notifies the user of an input problem.
	Alert(message string)
}

// Input is what the user enters for a new or edited record.
type Input struct {
	Title  string
	Author string
	Year   int
}

// Prompter collects edit input for a record. It must honour ctx and return
// ErrCancelled when the user backs out.
type Prompter interface {
	PromptEdit(ctx context.Context, id int64) (Input, error)
}
