package interfaces

// This file contains compile-time interface implementation checks.
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/catalog"
	"github.com/mrlokans/booklist/internal/cli"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/http"
	"github.com/mrlokans/booklist/internal/library"
	"github.com/mrlokans/booklist/internal/localstore"
	"github.com/mrlokans/booklist/internal/scheduler"
	"github.com/mrlokans/booklist/internal/tasks"
)

// =============================================================================
// Catalog Service
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)
var _ http.BookCounter = (*books.Repository)(nil)

// AuditLogger / PayloadAuditor implementations
var _ http.AuditLogger = (*audit.Service)(nil)
var _ http.PayloadAuditor = (*audit.Auditor)(nil)

// =============================================================================
// Client Sync Layer
// =============================================================================

var _ library.Catalog = (*catalog.Client)(nil)
var _ library.LocalStore = (*localstore.Store)(nil)
var _ library.View = (*cli.ConsoleView)(nil)
var _ library.Prompter = (*cli.LinePrompter)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ tasks.CleanupReporter = (*audit.Service)(nil)
var _ scheduler.CleanupEnqueuer = (*tasks.Client)(nil)
