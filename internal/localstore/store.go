// Package localstore keeps the client's fallback copy of the book list on disk.
//
// Records live as a JSON array under a fixed key, one file per key inside the
// store directory. Nothing here talks to the catalog service; entries written
// while offline stay local.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mrlokans/booklist/internal/catalog"
)

// StorageKey is the key the book list is stored under.
const StorageKey = "books"

// Store is a directory-backed JSON store for the local book list.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file holding the book list.
func (s *Store) Path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

// Load reads the stored list. A missing file is an empty list.
func (s *Store) Load() ([]catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save overwrites the stored list.
func (s *Store) Save(books []catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(books)
}

// Append adds a record to the end of the list.
func (s *Store) Append(book catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(books, book))
}

// Replace overwrites title, author and year of the record with the given id.
// The id itself is kept. Reports false when no record matched.
func (s *Store) Replace(id int64, input catalog.Book) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range books {
		if books[i].ID == id {
			input.ID = id
			books[i] = input
			return true, s.save(books)
		}
	}
	return false, nil
}

// Remove drops every record with the given id.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return err
	}

	kept := books[:0]
	for _, b := range books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	return s.save(kept)
}

func (s *Store) load() ([]catalog.Book, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return []catalog.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}

	var books []catalog.Book
	if len(data) > 0 {
		if err := json.Unmarshal(data, &books); err != nil {
			return nil, fmt.Errorf("failed to decode local store %s: %w", s.Path(), err)
		}
	}
	if books == nil {
		books = []catalog.Book{}
	}
	return books, nil
}

func (s *Store) save(books []catalog.Book) error {
	if books == nil {
		books = []catalog.Book{}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create local store directory: %w", err)
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, StorageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write local store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write local store: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace local store: %w", err)
	}
	return nil
}
