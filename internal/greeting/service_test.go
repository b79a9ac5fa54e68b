package greeting

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Greet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "default name", input: DefaultName, expected: "Hello, World!"},
		{name: "simple name", input: "Alice", expected: "Hello, Alice!"},
		{name: "empty name", input: "", expected: "Hello, !"},
		{name: "name with spaces", input: "John Doe", expected: "Hello, John Doe!"},
		{name: "format verbs are not interpreted", input: "%s %d %%", expected: "Hello, %s %d %%!"},
		{name: "special characters", input: `<script>"&'`, expected: `Hello, <script>"&'!`},
		{name: "unicode", input: "世界", expected: "Hello, 世界!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&Counter{})

			g := svc.Greet(tt.input)

			assert.Equal(t, int64(1), g.ID())
			assert.Equal(t, tt.expected, g.Content())
			assert.Equal(t, "Hello, "+tt.input+"!", g.Content())
		})
	}
}

func TestService_GreetScenario(t *testing.T) {
	svc := NewService(&Counter{})

	first := svc.Greet(DefaultName)
	second := svc.Greet("Alice")
	third := svc.Greet("")

	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, "Hello, World!", first.Content())
	assert.Equal(t, int64(2), second.ID())
	assert.Equal(t, "Hello, Alice!", second.Content())
	assert.Equal(t, int64(3), third.ID())
	assert.Equal(t, "Hello, !", third.Content())
}

func TestService_GreetIsNotIdempotent(t *testing.T) {
	svc := NewService(&Counter{})

	a := svc.Greet("Bob")
	b := svc.Greet("Bob")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Content(), b.Content())
}

func TestService_SharedCounter(t *testing.T) {
	counter := &Counter{}
	first := NewService(counter)
	second := NewService(counter)

	assert.Equal(t, int64(1), first.Greet("a").ID())
	assert.Equal(t, int64(2), second.Greet("b").ID())
	assert.Equal(t, int64(3), first.Greet("c").ID())
}

func TestService_GreetConcurrent(t *testing.T) {
	const numCalls = 500

	svc := NewService(&Counter{})
	seen := make(map[int64]bool, numCalls)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < numCalls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := svc.Greet("concurrent")
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[g.ID()], "duplicate id %d", g.ID())
			seen[g.ID()] = true
		}()
	}
	wg.Wait()

	require.Len(t, seen, numCalls)
	for id := int64(1); id <= numCalls; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
