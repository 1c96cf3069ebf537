// Package secret holds credential material outside the Go heap.
//
// A Buffer is backed by an anonymous mapping that is locked against swap where the
// platform allows it and zeroed on Close. Passwords and key passphrases typed into the
// credential form live here only for the duration of one connection attempt.
package secret

import (
	"errors"
	"sync"
)

// ErrEmpty is returned when a buffer would hold no data.
var ErrEmpty = errors.New("secret: empty source")

// Buffer holds sensitive bytes. It must not be copied after creation.
// After Close any read panics. Close is idempotent.
type Buffer struct {
	closed bool
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewFromBytes copies source into protected memory and zeroes source in place.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, ErrEmpty
	}

	data, locked, err := allocate(len(source))
	if err != nil {
		return nil, err
	}
	copy(data, source)
	clear(source)

	return &Buffer{data: data, locked: locked}, nil
}

// Bytes returns the secret. The slice points into the protected region and is only
// valid until Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.data
}

// String returns a heap copy of the secret for APIs that only accept strings.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return string(b.data)
}

// Len returns the secret length, or 0 after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}
	return len(b.data)
}

// Locked reports whether the backing memory is locked against swap.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Close zeroes and releases the memory.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	clear(b.data)
	err := release(b.data, b.locked)
	b.data = nil
	return err
}
