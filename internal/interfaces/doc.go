// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Catalog Service
//
//   - BookStore: Book persistence behind the REST endpoints (internal/http/stores.go)
//   - AuditLogger: Records every create/update/delete (internal/http/stores.go)
//   - PayloadAuditor: Dumps raw request bodies when AUDIT_DIR is set (internal/http/stores.go)
//
// ## Client Sync Layer
//
//   - Catalog: Remote book service (internal/library/interfaces.go)
//   - LocalStore: On-device fallback list (internal/library/interfaces.go)
//   - View: Presentation of the list, form and alerts (internal/library/interfaces.go)
//   - Prompter: Cancellable edit input (internal/library/interfaces.go)
//
// ## Background Tasks
//
//   - AuditEventCleaner / CleanupReporter: Audit retention (internal/tasks/cleanup_audit.go)
//   - CleanupEnqueuer: Cron-triggered enqueueing (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Front End
//
// The sync layer does not know how books are displayed. To add one (e.g. a TUI):
//
//  1. Implement View and Prompter:
//
//     type TUIView struct { list *tview.List }
//
//     func (v *TUIView) Show(books []catalog.Book)
//     func (v *TUIView) Append(book catalog.Book)
//     func (v *TUIView) ResetForm()
//     func (v *TUIView) Alert(message string)
//
//     var _ library.View = (*TUIView)(nil)
//
//  2. Build a manager with library.NewManager and call Render/Add/Edit/Remove.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
