package http

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// internalErrorBody is the only error body the catalog ever returns.
const internalErrorBody = "Internal Server Error"

// SuccessResponse is a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondInternalError logs the error and sends a plain 500.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, internalErrorBody)
}

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// parseIDParam extracts an unsigned integer ID from URL parameters.
func parseIDParam(c *gin.Context, paramName string) (uint, error) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", paramName, idStr, err)
	}
	return uint(id), nil
}
