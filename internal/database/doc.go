// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── books/           # Book record CRUD
//	└── audit/           # Audit event persistence and retention
//
// A single Database is opened at startup and closed on shutdown. Domain
// repositories are built on top of its *gorm.DB:
//
//	db, err := database.NewDatabase("./booklist.db")
//	defer db.Close()
//
//	booksRepo := books.NewRepository(db.DB)
//	all, err := booksRepo.List()
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
