// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/greeting"
	"github.com/sebasr/greeting-service/internal/models"
)

// GreetingHandler handles POST / with a {"name": ...} body.
// The body is parsed as JSON whatever its Content-Type.
func GreetingHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reject(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		reject(c, http.StatusBadRequest, "Invalid JSON payload", fmt.Errorf("%w: %v", models.ErrInvalidPayload, err))
		return
	}

	req, err := models.ParseGreetingRequest(raw)
	if err != nil {
		reject(c, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	name, err := req.NameValue()
	if err != nil {
		reject(c, http.StatusBadRequest, "Missing required field: name", err)
		return
	}

	c.JSON(http.StatusOK, models.GreetingResponse{
		Greeting: greeting.Greet(name),
	})
}

// reject writes an error body and records err on the context for the access log
func reject(c *gin.Context, status int, message string, err error) {
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{Error: message})
}
