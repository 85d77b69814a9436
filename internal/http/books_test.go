package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/entities"
)

type recordedAudit struct {
	action   audit.CatalogAction
	meta     audit.RequestMeta
	entityID *uint
	err      error
}

type fakeAuditLogger struct {
	mu     sync.Mutex
	events []recordedAudit
}

func (f *fakeAuditLogger) LogCatalog(action audit.CatalogAction, meta audit.RequestMeta, entityID *uint, description string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedAudit{action: action, meta: meta, entityID: entityID, err: err})
}

type fakePayloadAuditor struct {
	saved []string
}

func (f *fakePayloadAuditor) SaveJSON(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	f.saved = append(f.saved, string(raw))
	return "payload.json", nil
}

// failingStore simulates a store that rejects every operation.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) List() ([]entities.Book, error)                     { return nil, errStoreDown }
func (failingStore) Create(*entities.Book) error                        { return errStoreDown }
func (failingStore) Update(uint, entities.Book) (*entities.Book, error) { return nil, errStoreDown }
func (failingStore) Delete(uint) error                                  { return errStoreDown }
func (failingStore) Count() (int64, error)                              { return 0, errStoreDown }

func setupBooksTest(t *testing.T) (*gin.Engine, *books.Repository, *fakeAuditLogger) {
	t.Helper()

	db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := books.NewRepository(db.DB)
	auditLog := &fakeAuditLogger{}

	router := NewRouter(RouterConfig{
		BookStore:   repo,
		Database:    db,
		AuditLogger: auditLog,
		Version:     "test",
	})
	return router, repo, auditLog
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBooks(t *testing.T, w *httptest.ResponseRecorder) []entities.Book {
	t.Helper()
	var list []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestBooksController_ListBooks(t *testing.T) {
	t.Run("returns empty array when no books", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodGet, "/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns books in store order", func(t *testing.T) {
		router, repo, _ := setupBooksTest(t)
		require.NoError(t, repo.Create(&entities.Book{Title: "Second Foundation", Author: "Asimov", Year: 1953}))
		require.NoError(t, repo.Create(&entities.Book{Title: "Dune", Author: "Herbert", Year: 1965}))

		w := doRequest(router, http.MethodGet, "/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		list := decodeBooks(t, w)
		require.Len(t, list, 2)
		assert.Equal(t, "Second Foundation", list[0].Title)
		assert.Equal(t, "Dune", list[1].Title)
	})
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("returns stored record with assigned id", func(t *testing.T) {
		router, _, auditLog := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","year":1965}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var created map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Dune", created["title"])
		assert.Equal(t, "Herbert", created["author"])
		assert.Equal(t, float64(1965), created["year"])
		assert.NotZero(t, created["id"])

		require.Len(t, auditLog.events, 1)
		assert.Equal(t, audit.ActionBookCreate, auditLog.events[0].action)
		assert.NotEmpty(t, auditLog.events[0].meta.RequestID)
		assert.NoError(t, auditLog.events[0].err)
	})

	t.Run("created record appears in list", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{"title":"Emma","author":"Austen","year":1815}`)
		require.Equal(t, http.StatusOK, w.Code)
		var created entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		list := decodeBooks(t, doRequest(router, http.MethodGet, "/books", ""))
		assert.Contains(t, list, created)
	})

	t.Run("ignores client supplied id", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{"id":1718000000000,"title":"Offline","author":"Me","year":2024}`)
		require.Equal(t, http.StatusOK, w.Code)

		var created entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEqual(t, uint(1718000000000), created.ID)
	})

	t.Run("stores absent fields as empty with current year", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{}`)
		require.Equal(t, http.StatusOK, w.Code)

		var created entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "", created.Title)
		assert.Equal(t, "", created.Author)
		assert.Equal(t, time.Now().Year(), created.Year)
	})

	t.Run("accepts empty body", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body is a generic server error", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{"title":`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", w.Body.String())
	})

	t.Run("string year is a generic server error and stores nothing", func(t *testing.T) {
		router, repo, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","year":"1999"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", w.Body.String())
		count, err := repo.Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("saves raw payload when auditor configured", func(t *testing.T) {
		payloads := &fakePayloadAuditor{}
		db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "books.db"))
		require.NoError(t, err)
		defer db.Close()

		router := NewRouter(RouterConfig{BookStore: books.NewRepository(db.DB), PayloadAuditor: payloads})

		w := doRequest(router, http.MethodPost, "/books", `{"title":"Raw","author":"Payload","year":2000}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, payloads.saved, 1)
		assert.JSONEq(t, `{"title":"Raw","author":"Payload","year":2000}`, payloads.saved[0])
	})
}

func TestBooksController_UpdateBook(t *testing.T) {
	t.Run("replaces fields of existing record", func(t *testing.T) {
		router, repo, auditLog := setupBooksTest(t)
		book := &entities.Book{Title: "Old", Author: "Author", Year: 1990}
		require.NoError(t, repo.Create(book))

		w := doRequest(router, http.MethodPut, "/books/"+itoa(book.ID), `{"title":"New","author":"Writer","year":2001}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var updated entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, entities.Book{ID: book.ID, Title: "New", Author: "Writer", Year: 2001}, updated)

		list := decodeBooks(t, doRequest(router, http.MethodGet, "/books", ""))
		require.Len(t, list, 1)
		assert.Equal(t, updated, list[0])

		require.Len(t, auditLog.events, 1)
		assert.Equal(t, audit.ActionBookUpdate, auditLog.events[0].action)
	})

	t.Run("returns null for unknown id and leaves store unchanged", func(t *testing.T) {
		router, repo, auditLog := setupBooksTest(t)
		book := &entities.Book{Title: "Keep", Author: "Author", Year: 1990}
		require.NoError(t, repo.Create(book))

		w := doRequest(router, http.MethodPut, "/books/999", `{"title":"Ghost","author":"Nobody","year":2001}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())

		list := decodeBooks(t, doRequest(router, http.MethodGet, "/books", ""))
		require.Len(t, list, 1)
		assert.Equal(t, *book, list[0])
		assert.Empty(t, auditLog.events)
	})

	t.Run("unparseable id is a generic server error", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodPut, "/books/not-an-id", `{"title":"X"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", w.Body.String())
	})
}

func TestBooksController_DeleteBook(t *testing.T) {
	t.Run("removes record", func(t *testing.T) {
		router, repo, auditLog := setupBooksTest(t)
		keep := &entities.Book{Title: "Keep"}
		drop := &entities.Book{Title: "Drop"}
		require.NoError(t, repo.Create(keep))
		require.NoError(t, repo.Create(drop))

		w := doRequest(router, http.MethodDelete, "/books/"+itoa(drop.ID), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Book deleted"}`, w.Body.String())

		list := decodeBooks(t, doRequest(router, http.MethodGet, "/books", ""))
		require.Len(t, list, 1)
		assert.Equal(t, keep.ID, list[0].ID)

		require.Len(t, auditLog.events, 1)
		require.NotNil(t, auditLog.events[0].entityID)
		assert.Equal(t, drop.ID, *auditLog.events[0].entityID)
	})

	t.Run("confirms deletion of unknown id", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodDelete, "/books/12345", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Book deleted"}`, w.Body.String())
	})

	t.Run("unparseable id is a generic server error", func(t *testing.T) {
		router, _, _ := setupBooksTest(t)

		w := doRequest(router, http.MethodDelete, "/books/abc", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBooksController_StoreFailures(t *testing.T) {
	auditLog := &fakeAuditLogger{}
	router := NewRouter(RouterConfig{BookStore: failingStore{}, AuditLogger: auditLog})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"list", http.MethodGet, "/books", ""},
		{"create", http.MethodPost, "/books", `{"title":"A","author":"B","year":2000}`},
		{"update", http.MethodPut, "/books/1", `{"title":"A","author":"B","year":2000}`},
		{"delete", http.MethodDelete, "/books/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "Internal Server Error", w.Body.String())
			assert.NotContains(t, w.Body.String(), errStoreDown.Error())
		})
	}

	// list is not a mutation; create, update and delete are audited as failures
	require.Len(t, auditLog.events, 3)
	for _, ev := range auditLog.events {
		assert.ErrorIs(t, ev.err, errStoreDown)
	}
}

func TestRouter_PingAndHealth(t *testing.T) {
	router, _, _ := setupBooksTest(t)

	w := doRequest(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version": "test"`)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
