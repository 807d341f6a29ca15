package logging

import (
	"io"
	"net"
	"sync"
	"time"
)

const (
	dialTimeout   = 2 * time.Second
	writeTimeout  = time.Second
	retryInterval = 5 * time.Second
)

// Shipper mirrors log output to a Logstash TCP input. Writes never block the
// caller on network trouble: while the endpoint is unreachable entries are
// dropped until the retry window elapses.
type Shipper struct {
	addr string

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

func NewShipper(addr string) *Shipper {
	return &Shipper{addr: addr}
}

// Write implements io.Writer for use with log.SetOutput.
func (s *Shipper) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}

	if s.conn == nil {
		now := time.Now()
		if !s.nextRetry.IsZero() && now.Before(s.nextRetry) {
			return len(p), nil
		}
		conn, err := net.DialTimeout("tcp", s.addr, dialTimeout)
		if err != nil {
			s.nextRetry = now.Add(retryInterval)
			return len(p), nil
		}
		s.conn = conn
		s.nextRetry = time.Time{}
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := s.conn.Write(data); err != nil {
		_ = s.conn.Close()
		s.conn = nil
		s.nextRetry = time.Now().Add(retryInterval)
	}
	return len(p), nil
}

func (s *Shipper) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
