package ssh

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/shellbridge/internal/ports"
)

const (
	testUser     = "alice"
	testPassword = "s3cret"
)

// testServer is an in-process SSH server. Its shell greets, echoes every read
// with an "echo:" prefix and drops the connection when it reads "exit".
type testServer struct {
	addr       string
	hostSigner gossh.Signer
	ptyReqs    chan ptyRequestMsg

	mu         sync.Mutex
	authorized gossh.PublicKey
}

func newSigner(t *testing.T) (gossh.Signer, ed25519.PrivateKey) {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := gossh.NewSignerFromKey(priv)
	require.NoError(t, err)
	return signer, priv
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	hostSigner, _ := newSigner(t)
	srv := &testServer{
		hostSigner: hostSigner,
		ptyReqs:    make(chan ptyRequestMsg, 4),
	}

	config := &gossh.ServerConfig{
		PasswordCallback: func(conn gossh.ConnMetadata, password []byte) (*gossh.Permissions, error) {
			if conn.User() == testUser && string(password) == testPassword {
				return &gossh.Permissions{}, nil
			}
			return nil, errors.New("access denied")
		},
		PublicKeyCallback: func(conn gossh.ConnMetadata, key gossh.PublicKey) (*gossh.Permissions, error) {
			srv.mu.Lock()
			defer srv.mu.Unlock()
			if srv.authorized != nil && gossh.FingerprintSHA256(key) == gossh.FingerprintSHA256(srv.authorized) {
				return &gossh.Permissions{}, nil
			}
			return nil, errors.New("unknown public key")
		},
	}
	config.AddHostKey(hostSigner)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.addr = listener.Addr().String()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			netConn, err := listener.Accept()
			if err != nil {
				return
			}
			go srv.handleConn(netConn, config)
		}
	}()
	t.Cleanup(func() {
		listener.Close()
		<-done
	})

	return srv
}

func (s *testServer) authorize(key gossh.PublicKey) {
	s.mu.Lock()
	s.authorized = key
	s.mu.Unlock()
}

func (s *testServer) handleConn(netConn net.Conn, config *gossh.ServerConfig) {
	sshConn, chans, reqs, err := gossh.NewServerConn(netConn, config)
	if err != nil {
		netConn.Close()
		return
	}
	defer sshConn.Close()

	go gossh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(gossh.UnknownChannelType, "unknown channel type")
			continue
		}
		ch, requests, err := newChan.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(sshConn, ch, requests)
	}
}

func (s *testServer) handleSession(conn *gossh.ServerConn, ch gossh.Channel, requests <-chan *gossh.Request) {
	defer ch.Close()

	for req := range requests {
		switch req.Type {
		case "pty-req":
			var msg ptyRequestMsg
			ok := gossh.Unmarshal(req.Payload, &msg) == nil
			if ok {
				s.ptyReqs <- msg
			}
			if req.WantReply {
				req.Reply(ok, nil)
			}

		case "shell":
			if req.WantReply {
				req.Reply(true, nil)
			}
			ch.Write([]byte("welcome\r\n"))
			go func() {
				buf := make([]byte, 4096)
				for {
					n, err := ch.Read(buf)
					if n > 0 {
						ch.Write(append([]byte("echo:"), buf[:n]...))
						if strings.Contains(string(buf[:n]), "exit") {
							ch.SendRequest("exit-status", false, []byte{0, 0, 0, 0})
							ch.Close()
							conn.Close()
							return
						}
					}
					if err != nil {
						return
					}
				}
			}()

		default:
			if req.WantReply {
				req.Reply(false, nil)
			}
		}
	}
}

// decodeModes parses an encoded mode list
func decodeModes(list []byte) ports.TerminalModes {
	modes := ports.TerminalModes{}
	for len(list) >= 5 && list[0] != ttyOpEnd {
		v := uint32(list[1])<<24 | uint32(list[2])<<16 | uint32(list[3])<<8 | uint32(list[4])
		modes[ports.TerminalMode(list[0])] = v
		list = list[5:]
	}
	return modes
}
