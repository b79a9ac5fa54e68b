// Package greeting produces numbered greetings from a process-wide counter.
package greeting

import "sync/atomic"

// Counter is a monotonic sequence shared by every request in the process.
// The zero value is ready to use and issues 1 first.
//
// The only operation is Next; the value is never read without being advanced.
// Past math.MaxInt64 the sequence wraps around to math.MinInt64, matching the
// underlying atomic add.
type Counter struct {
	n atomic.Int64
}

// Next atomically increments the counter and returns the new value
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}
