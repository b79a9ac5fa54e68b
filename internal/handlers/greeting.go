// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/greeting"
	"github.com/sebasr/greeting-service/internal/models"
)

// jsonContentType matches the content type gin uses for c.JSON
const jsonContentType = "application/json; charset=utf-8"

// Greeter produces a numbered greeting for a name
type Greeter interface {
	Greet(name string) models.Greeting
}

// GreetingHandler handles greeting requests
type GreetingHandler struct {
	greeter Greeter
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greeter Greeter) *GreetingHandler {
	return &GreetingHandler{
		greeter: greeter,
	}
}

// Greet returns a greeting for the "name" query parameter
// GET /greeting?name=Alice
func (h *GreetingHandler) Greet(c *gin.Context) {
	// Only an absent parameter falls back to the default; "?name=" greets the empty string
	name, ok := c.GetQuery("name")
	if !ok {
		name = greeting.DefaultName
	}

	g := h.greeter.Greet(name)

	c.Data(http.StatusOK, jsonContentType, g.Encode())
}
