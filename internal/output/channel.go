// Package output holds the queue between shell producers and the presenter.
package output

import (
	"sync"

	"github.com/renato0307/shellbridge/internal/domain"
)

// Channel is a FIFO of chunks shared by the reader loop, connection attempts and
// Send (producers) and the presenter (single consumer). Enqueue and DrainAll are
// mutually exclusive; chunks from different producers keep their enqueue order.
type Channel struct {
	chunks []domain.Chunk
	mu     sync.Mutex
}

// NewChannel creates an empty channel
func NewChannel() *Channel {
	return &Channel{}
}

// Enqueue appends a chunk. Empty text is dropped.
func (c *Channel) Enqueue(chunk domain.Chunk) {
	if chunk.Text == "" {
		return
	}
	c.mu.Lock()
	c.chunks = append(c.chunks, chunk)
	c.mu.Unlock()
}

// DrainAll removes and returns every queued chunk in order, nil when empty.
func (c *Channel) DrainAll() []domain.Chunk {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.chunks) == 0 {
		return nil
	}
	drained := c.chunks
	c.chunks = nil
	return drained
}

// Len returns the number of queued chunks
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.chunks)
}

// Text concatenates chunk texts
func Text(chunks []domain.Chunk) string {
	n := 0
	for _, c := range chunks {
		n += len(c.Text)
	}
	buf := make([]byte, 0, n)
	for _, c := range chunks {
		buf = append(buf, c.Text...)
	}
	return string(buf)
}
