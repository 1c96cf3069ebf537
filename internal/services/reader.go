package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
)

// readLoop polls conn's stream every PollInterval and forwards output as remote
// chunks. It returns when ctx is cancelled or the remote side is gone; in the
// latter case cleanup runs on another goroutine since it waits for this loop to finish.
func (s *SessionService) readLoop(ctx context.Context, conn *connection) {
	defer close(conn.done)
	defer s.activeReaders.Add(-1)

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	var carry []byte
	flush := func() {
		if len(carry) > 0 {
			conn.emit(s.output, domain.RemoteChunk(string(carry)))
			carry = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !conn.client.IsConnected() {
			flush()
			go s.remoteClosed(conn)
			return
		}
		if !conn.stream.DataAvailable() {
			continue
		}

		data, err := conn.stream.ReadAvailable()
		if len(data) > 0 {
			var text []byte
			text, carry = splitIncompleteRune(append(carry, data...))
			if len(text) > 0 {
				conn.emit(s.output, domain.RemoteChunk(string(text)))
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				flush()
				go s.remoteClosed(conn)
				return
			}
			logging.Logger.Debug("Transient read error", "error", err)
		}
	}
}

// splitIncompleteRune separates a trailing partial UTF-8 sequence from b.
// Invalid bytes are not held back.
func splitIncompleteRune(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			break
		}
		return b[:i], bytes.Clone(b[i:])
	}
	return b, nil
}
