package ssh

import (
	"slices"

	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/shellbridge/internal/ports"
)

// ptyRequestMsg is the RFC 4254 section 6.2 "pty-req" payload. Session.RequestPty
// derives pixel sizes from cell counts, so the request is sent by hand to carry the
// exact pixel geometry.
type ptyRequestMsg struct {
	Term     string
	Columns  uint32
	Rows     uint32
	Width    uint32
	Height   uint32
	Modelist string
}

const ttyOpEnd = 0

func ptyRequestPayload(req ports.PTYRequest) []byte {
	return gossh.Marshal(ptyRequestMsg{
		Term:     req.Term,
		Columns:  uint32(req.Cols),
		Rows:     uint32(req.Rows),
		Width:    uint32(req.WidthPx),
		Height:   uint32(req.HeightPx),
		Modelist: string(encodeModes(req.Modes)),
	})
}

// encodeModes writes opcode/uint32 pairs in ascending opcode order, then TTY_OP_END
func encodeModes(modes ports.TerminalModes) []byte {
	opcodes := make([]ports.TerminalMode, 0, len(modes))
	for op := range modes {
		opcodes = append(opcodes, op)
	}
	slices.Sort(opcodes)

	out := make([]byte, 0, len(modes)*5+1)
	for _, op := range opcodes {
		v := modes[op]
		out = append(out, byte(op), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return append(out, ttyOpEnd)
}
