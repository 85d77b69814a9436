package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())

	health := NewHealthController(cfg.Database, cfg.BookCounter, cfg.Version)
	booksController := NewBooksController(cfg.BookStore, cfg.AuditLogger, cfg.PayloadAuditor)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	router.GET("/books", booksController.ListBooks)
	router.POST("/books", booksController.CreateBook)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	return router
}
