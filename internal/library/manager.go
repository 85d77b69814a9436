// Package library mediates user actions between the view, the catalog
// service and the local fallback store.
//
// Every action tries the catalog service first. When that call fails for any
// reason the action is applied to the local store instead. Records created
// while offline keep their timestamp ids and are never pushed to the server.
package library

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/booklist/internal/catalog"
)

// Source tells which store an action was served from.
type Source string

const (
	SourceServer Source = "server"
	SourceLocal  Source = "local"
)

// Manager runs render/add/edit/remove against the catalog with local fallback.
type Manager struct {
	catalog  Catalog
	local    LocalStore
	view     View
	prompter Prompter
	now      func() time.Time
}

func NewManager(c Catalog, local LocalStore, view View, prompter Prompter) *Manager {
	return &Manager{
		catalog:  c,
		local:    local,
		view:     view,
		prompter: prompter,
		now:      time.Now,
	}
}

// SetClock overrides the time source used for default years and local ids.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Render shows the server list, or the local list when the server cannot be reached.
func (m *Manager) Render(ctx context.Context) (Source, error) {
	books, err := m.catalog.List(ctx)
	if err == nil {
		m.view.Show(books)
		return SourceServer, nil
	}

	log.Printf("Error fetching books: %v", err)
	return SourceLocal, m.renderLocal()
}

// Add creates a record. The returned book carries the server id, or a
// timestamp id when it was stored locally.
func (m *Manager) Add(ctx context.Context, input Input) (catalog.Book, Source, error) {
	if input.Title == "" || input.Author == "" {
		m.view.Alert(alertAddMissingFields)
		return catalog.Book{}, "", ErrMissingFields
	}

	book := m.toBook(input)

	created, err := m.catalog.Create(ctx, book)
	if err == nil {
		m.view.Append(*created)
		m.view.ResetForm()
		return *created, SourceServer, nil
	}

	log.Printf("Error adding book: %v", err)

	book.ID = m.now().UnixMilli()
	if err := m.local.Append(book); err != nil {
		return catalog.Book{}, SourceLocal, fmt.Errorf("failed to store book locally: %w", err)
	}
	m.view.Append(book)
	return book, SourceLocal, nil
}

// Edit prompts for new values and replaces the record with the given id.
func (m *Manager) Edit(ctx context.Context, id int64) (Source, error) {
	input, err := m.prompter.PromptEdit(ctx, id)
	if err != nil {
		return "", err
	}
	if input.Title == "" || input.Author == "" {
		m.view.Alert(alertEditMissingFields)
		return "", ErrMissingFields
	}

	book := m.toBook(input)

	_, err = m.catalog.Update(ctx, id, book)
	if err == nil {
		return m.Render(ctx)
	}

	log.Printf("Error editing book %d: %v", id, err)

	found, err := m.local.Replace(id, book)
	if err != nil {
		return SourceLocal, fmt.Errorf("failed to update local book %d: %w", id, err)
	}
	if !found {
		log.Printf("Book %d not found in local store", id)
	}
	return SourceLocal, m.renderLocal()
}

// Remove deletes the record with the given id.
func (m *Manager) Remove(ctx context.Context, id int64) (Source, error) {
	err := m.catalog.Delete(ctx, id)
	if err == nil {
		return m.Render(ctx)
	}

	log.Printf("Error deleting book %d: %v", id, err)

	if err := m.local.Remove(id); err != nil {
		return SourceLocal, fmt.Errorf("failed to remove local book %d: %w", id, err)
	}
	return SourceLocal, m.renderLocal()
}

func (m *Manager) renderLocal() error {
	books, err := m.local.Load()
	if err != nil {
		return fmt.Errorf("failed to load local books: %w", err)
	}
	m.view.Show(books)
	return nil
}

func (m *Manager) toBook(input Input) catalog.Book {
	year := input.Year
	if year == 0 {
		year = m.now().Year()
	}
	return catalog.Book{
		Title:  input.Title,
		Author: input.Author,
		Year:   year,
	}
}
