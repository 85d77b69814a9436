package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booklist/internal/catalog"
	"github.com/mrlokans/booklist/internal/localstore"
)

func newTestCommand(t *testing.T, serverURL string, args ...string) (*BooksCommand, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := &BooksCommand{
		ServerURL: serverURL,
		LocalDir:  t.TempDir(),
		Timeout:   time.Second,
		Format:    FormatText,
		Stdin:     strings.NewReader(""),
		Stdout:    &out,
		Stderr:    &errOut,
	}
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &out, &errOut
}

func deadServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

func TestBooksCommand_ParseFlags(t *testing.T) {
	t.Run("missing action", func(t *testing.T) {
		cmd := &BooksCommand{Stderr: io.Discard}
		assert.Error(t, cmd.ParseFlags(nil))
	})

	t.Run("unknown action", func(t *testing.T) {
		cmd := &BooksCommand{Stderr: io.Discard}
		assert.Error(t, cmd.ParseFlags([]string{"sync"}))
	})

	t.Run("edit requires id", func(t *testing.T) {
		cmd := &BooksCommand{Stderr: io.Discard}
		assert.Error(t, cmd.ParseFlags([]string{"edit"}))
	})

	t.Run("add flags", func(t *testing.T) {
		cmd := &BooksCommand{Stderr: io.Discard, Format: FormatText}
		require.NoError(t, cmd.ParseFlags([]string{"add", "-title", "Dune", "-author", "Herbert", "-year", "1965", "-format", "json"}))

		assert.Equal(t, ActionAdd, cmd.Action)
		assert.Equal(t, "Dune", cmd.Title)
		assert.Equal(t, "Herbert", cmd.Author)
		assert.Equal(t, 1965, cmd.Year)
		assert.Equal(t, FormatJSON, cmd.Format)
	})
}

func TestBooksCommand_ListFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"title":"Dune","author":"Herbert","year":1965},{"id":2,"title":"Emma","author":"Austen","year":1815}]`)
	}))
	defer server.Close()

	cmd, out, errOut := newTestCommand(t, server.URL, "list")

	require.NoError(t, cmd.run(context.Background()))

	newGoldie(t).Assert(t, "list_text", out.Bytes())
	assert.Empty(t, errOut.String())
}

func TestBooksCommand_ListFallsBackToLocal(t *testing.T) {
	cmd, out, errOut := newTestCommand(t, deadServerURL(), "list")
	require.NoError(t, localstore.New(cmd.LocalDir).Save(sampleBooks))

	require.NoError(t, cmd.run(context.Background()))

	newGoldie(t).Assert(t, "list_text", out.Bytes())
	assert.Contains(t, errOut.String(), "unreachable")
}

func TestBooksCommand_AddOffline(t *testing.T) {
	cmd, out, _ := newTestCommand(t, deadServerURL(), "add", "-title", "Dune", "-author", "Herbert", "-year", "1965")

	require.NoError(t, cmd.run(context.Background()))

	stored, err := localstore.New(cmd.LocalDir).Load()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Dune", stored[0].Title)
	assert.NotZero(t, stored[0].ID)
	assert.True(t, strings.HasPrefix(out.String(), "Added ["))
}

func TestBooksCommand_AddMissingFields(t *testing.T) {
	cmd, _, errOut := newTestCommand(t, deadServerURL(), "add", "-title", "Dune")

	err := cmd.run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, errOut.String(), "Please fill out both fields.")
}

func TestBooksCommand_EditOfflineWithFlags(t *testing.T) {
	cmd, _, _ := newTestCommand(t, deadServerURL(), "edit", "-id", "1", "-title", "B", "-author", "C")
	store := localstore.New(cmd.LocalDir)
	require.NoError(t, store.Save([]catalog.Book{{ID: 1, Title: "A"}}))

	require.NoError(t, cmd.run(context.Background()))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "B", stored[0].Title)
	assert.Equal(t, int64(1), stored[0].ID)
}

func TestBooksCommand_EditOfflineWithPartialFlags(t *testing.T) {
	cmd, _, errOut := newTestCommand(t, deadServerURL(), "edit", "-id", "1", "-title", "B", "-year", "1999")
	cmd.Stdin = strings.NewReader("AuthorX\n")
	store := localstore.New(cmd.LocalDir)
	require.NoError(t, store.Save([]catalog.Book{{ID: 1, Title: "A", Author: "Z", Year: 1900}}))

	require.NoError(t, cmd.run(context.Background()))

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []catalog.Book{{ID: 1, Title: "B", Author: "AuthorX", Year: 1999}}, stored)
	assert.Contains(t, errOut.String(), "Enter new author: ")
	assert.NotContains(t, errOut.String(), "Enter new title: ")
}

func TestBooksCommand_EditCancelledPrompt(t *testing.T) {
	cmd, _, errOut := newTestCommand(t, deadServerURL(), "edit", "-id", "1")

	require.NoError(t, cmd.run(context.Background()))

	assert.Contains(t, errOut.String(), "Edit cancelled.")
}

func TestBooksCommand_RemoveOnServer(t *testing.T) {
	var deleted string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = r.URL.Path
			_, _ = io.WriteString(w, `{"message":"Book deleted"}`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	defer server.Close()

	cmd, out, _ := newTestCommand(t, server.URL, "remove", "-id", "5")

	require.NoError(t, cmd.run(context.Background()))

	assert.Equal(t, "/books/5", deleted)
	newGoldie(t).Assert(t, "empty_text", out.Bytes())
}
