package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./booklist.db"

	// DefaultServerURL is where the client expects the catalog service
	DefaultServerURL = "http://localhost:3000"

	// DefaultLocalDir holds the client's local fallback store
	DefaultLocalDir = "./.booklist"
)
