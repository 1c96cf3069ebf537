package domain

import "fmt"

// Origin tags where a chunk came from. The output channel ignores it.
type Origin string

const (
	OriginEcho   Origin = "echo"
	OriginRemote Origin = "remote"
	OriginStatus Origin = "status"
)

// Chunk is one immutable piece of text handed to the presenter.
// Text may contain unstripped control sequences and partial escapes.
type Chunk struct {
	Origin Origin
	Text   string
}

// RemoteChunk wraps text read from the shell stream
func RemoteChunk(text string) Chunk {
	return Chunk{Origin: OriginRemote, Text: text}
}

// ConnectedChunk is emitted once a shell is open
func ConnectedChunk(host string) Chunk {
	return Chunk{Origin: OriginStatus, Text: fmt.Sprintf("\n[Connected to %s]\n", host)}
}

// ConnectionErrorChunk reports a failed connect attempt
func ConnectionErrorChunk(message string) Chunk {
	return Chunk{Origin: OriginStatus, Text: fmt.Sprintf("\n[Connection Error] %s\n", message)}
}

// DisconnectedChunk reports the end of a connection
func DisconnectedChunk() Chunk {
	return Chunk{Origin: OriginStatus, Text: "\n[Disconnected]\n"}
}

// EchoChunk is the local echo of a submitted line (remote echo is disabled)
func EchoChunk(line string) Chunk {
	return Chunk{Origin: OriginEcho, Text: fmt.Sprintf("> %s\n", line)}
}
