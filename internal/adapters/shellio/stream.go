// Package shellio turns the blocking readers of a shell (an SSH channel's stdout and
// stderr, a pty master) into the non-blocking stream the reader loop polls.
package shellio

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/shellbridge/internal/logging"
)

const pumpBufferSize = 32 * 1024

// DefaultTerminator is what a pty line discipline expects for Enter
const DefaultTerminator = "\r"

// Stream buffers everything its readers produce. Writes go straight to the shell.
type Stream struct {
	buf        bytes.Buffer
	closeFn    func() error
	closeErr   error
	closeOnce  sync.Once
	done       chan struct{}
	finished   bool
	mu         sync.Mutex
	terminator string
	w          io.Writer
	wmu        sync.Mutex
}

// NewStream starts one pump per reader. closeFn releases the underlying channel
// and should unblock the readers.
func NewStream(w io.Writer, closeFn func() error, terminator string, readers ...io.Reader) *Stream {
	if terminator == "" {
		terminator = DefaultTerminator
	}
	s := &Stream{
		closeFn:    closeFn,
		done:       make(chan struct{}),
		terminator: terminator,
		w:          w,
	}

	var g errgroup.Group
	for _, r := range readers {
		g.Go(func() error { return s.pump(r) })
	}
	go func() {
		err := g.Wait()
		if err != nil {
			logging.Logger.Debug("Shell output pump stopped", "error", err)
		}
		s.mu.Lock()
		s.finished = true
		s.mu.Unlock()
		close(s.done)
	}()

	return s
}

func (s *Stream) pump(r io.Reader) error {
	chunk := make([]byte, pumpBufferSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			s.mu.Lock()
			s.buf.Write(chunk[:n])
			s.mu.Unlock()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// DataAvailable reports whether bytes are buffered or every reader has stopped
func (s *Stream) DataAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len() > 0 || s.finished
}

// ReadAvailable returns and clears the buffer. After every reader has stopped and
// the buffer is empty it returns io.EOF.
func (s *Stream) ReadAvailable() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf.Len() > 0 {
		out := bytes.Clone(s.buf.Bytes())
		s.buf.Reset()
		return out, nil
	}
	if s.finished {
		return nil, io.EOF
	}
	return nil, nil
}

// WriteLine writes line followed by the terminator in a single write
func (s *Stream) WriteLine(line string) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	_, err := io.WriteString(s.w, line+s.terminator)
	return err
}

// Done is closed when every reader has stopped
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Close runs closeFn once and returns its result on every call
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		if s.closeFn != nil {
			s.closeErr = s.closeFn()
		}
	})
	return s.closeErr
}
