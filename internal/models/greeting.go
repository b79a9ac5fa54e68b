// Package models contains the data types returned by the greeting service.
package models

import (
	"encoding/json"
	"strconv"
)

// Greeting is the value returned by the greeting endpoint.
// Fields are unexported so a Greeting cannot be changed after construction.
type Greeting struct {
	id      int64
	content string
}

// NewGreeting creates a greeting with the given id and message
func NewGreeting(id int64, content string) Greeting {
	return Greeting{id: id, content: content}
}

// ID returns the request-scoped identifier
func (g Greeting) ID() int64 {
	return g.id
}

// Content returns the formatted message
func (g Greeting) Content() string {
	return g.content
}

// Encode renders the greeting as a JSON object with exactly two fields,
// "id" and "content", in that order.
func (g Greeting) Encode() []byte {
	// json.Marshal on a string never fails; invalid UTF-8 is coerced to U+FFFD.
	content, _ := json.Marshal(g.content)

	buf := make([]byte, 0, len(content)+32)
	buf = append(buf, `{"id":`...)
	buf = strconv.AppendInt(buf, g.id, 10)
	buf = append(buf, `,"content":`...)
	buf = append(buf, content...)
	buf = append(buf, '}')
	return buf
}

// MarshalJSON implements json.Marshaler using Encode
func (g Greeting) MarshalJSON() ([]byte, error) {
	return g.Encode(), nil
}
