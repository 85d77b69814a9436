package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/booklist/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Books   *int64            `json:"books,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports database reachability and the catalog size.
type HealthController struct {
	db      *database.Database
	books   BookCounter
	version string
}

// NewHealthController creates the controller. db and books may be nil.
func NewHealthController(db *database.Database, books BookCounter, version string) *HealthController {
	return &HealthController{
		db:      db,
		books:   books,
		version: version,
	}
}

// GET /health
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	healthy := true

	if h.db == nil {
		checks["database"] = "not configured"
	} else if err := h.db.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	var books *int64
	if h.books != nil && healthy {
		if count, err := h.books.Count(); err != nil {
			checks["catalog"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["catalog"] = "ok"
			books = &count
		}
	}

	response := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Books:   books,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, response)
}
