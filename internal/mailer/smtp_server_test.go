package mailer

import (
	"bufio"
	"encoding/base64"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSMTPServer accepts one session on 127.0.0.1, advertises AUTH PLAIN
// only and records every command and the DATA payload.
type fakeSMTPServer struct {
	ln   net.Listener
	done chan struct{}

	mu       sync.Mutex
	commands []string
	auth     string
	data     string
}

func newFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeSMTPServer{ln: ln, done: make(chan struct{})}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *fakeSMTPServer) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *fakeSMTPServer) serve() {
	defer close(s.done)

	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	reply := func(line string) { conn.Write([]byte(line + "\r\n")) }

	reply("220 localhost ESMTP ready")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		s.record(line)

		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch verb {
		case "EHLO", "HELO":
			reply("250-localhost")
			reply("250 AUTH PLAIN")
		case "AUTH":
			fields := strings.Fields(line)
			if len(fields) < 3 {
				reply("334 ")
				resp, err := r.ReadString('\n')
				if err != nil {
					return
				}
				fields = append(fields, strings.TrimSpace(resp))
			}
			decoded, _ := base64.StdEncoding.DecodeString(fields[2])
			s.mu.Lock()
			s.auth = string(decoded)
			s.mu.Unlock()
			reply("235 2.7.0 Authentication successful")
		case "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			var b strings.Builder
			for {
				dl, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if dl == ".\r\n" {
					break
				}
				b.WriteString(dl)
			}
			s.mu.Lock()
			s.data = b.String()
			s.mu.Unlock()
			reply("250 2.0.0 queued")
		case "QUIT":
			reply("221 2.0.0 bye")
			return
		default:
			reply("250 2.0.0 OK")
		}
	}
}

func (s *fakeSMTPServer) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, line)
}

// Session waits for the client to quit and returns what was recorded.
func (s *fakeSMTPServer) Session() (commands []string, auth, data string) {
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...), s.auth, s.data
}
