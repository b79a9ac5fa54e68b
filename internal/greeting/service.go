package greeting

import (
	"fmt"

	"github.com/sebasr/greeting-service/internal/models"
)

const (
	// DefaultName is substituted when the caller supplies no name
	DefaultName = "World"

	// Template is the message format; %s is replaced by the name
	Template = "Hello, %s!"
)

// Service builds greetings numbered by a shared Counter
type Service struct {
	counter *Counter
}

// NewService creates a greeting service backed by counter.
// All services built from the same counter share one sequence.
func NewService(counter *Counter) *Service {
	return &Service{counter: counter}
}

// Greet returns the next greeting for name. The name is used verbatim,
// including the empty string.
func (s *Service) Greet(name string) models.Greeting {
	return models.NewGreeting(s.counter.Next(), fmt.Sprintf(Template, name))
}
