package audio

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/logger"
)

// bandFrame is the wire format the external analyzer sends once per
// analysis tick. Field names match the browser-side FFT bridge.
type bandFrame struct {
	Bass      float64 `json:"bass"`
	Mid       float64 `json:"mid"`
	High      float64 `json:"high"`
	Transient float64 `json:"transient"`
}

// SocketSource consumes band frames from an external analyzer over a
// WebSocket connection. The read loop runs on its own goroutine and only
// ever publishes the latest frame; Sample never blocks the frame thread.
// When the connection drops, Sample reports no data and the bus degrades
// to silence until the source reconnects.
type SocketSource struct {
	url string

	mu        sync.RWMutex
	latest    Data
	connected bool
	closed    bool

	conn *websocket.Conn
}

// DialSocketSource connects to the analyzer at the given ws:// URL and
// starts the read loop.
func DialSocketSource(url string) (*SocketSource, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial audio analyzer: %w", err)
	}

	s := &SocketSource{url: url, conn: conn, connected: true}
	go s.readLoop()
	return s, nil
}

// Sample implements Source. It returns the most recent frame received
// from the analyzer, or ok=false if the connection is down.
func (s *SocketSource) Sample(elapsed float64) (Data, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return Silence, false
	}
	return s.latest, true
}

// Close shuts down the connection and stops the read loop.
func (s *SocketSource) Close() error {
	s.mu.Lock()
	s.closed = true
	s.connected = false
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}

func (s *SocketSource) readLoop() {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			s.connected = false
			closed := s.closed
			s.mu.Unlock()
			if !closed {
				logger.Warning("Audio analyzer connection lost", "url", s.url, "error", err)
				s.reconnect()
			}
			return
		}

		var frame bandFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			logger.Debug("Dropping malformed band frame", "error", err)
			continue
		}

		s.mu.Lock()
		s.latest = Data(frame).Sanitize()
		s.connected = true
		s.mu.Unlock()
	}
}

// reconnect retries the analyzer with a fixed backoff until it succeeds
// or the source is closed. The engine keeps rendering on silence while
// this runs.
func (s *SocketSource) reconnect() {
	for {
		time.Sleep(2 * time.Second)

		s.mu.RLock()
		closed := s.closed
		s.mu.RUnlock()
		if closed {
			return
		}

		conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
		if err != nil {
			continue
		}

		s.mu.Lock()
		s.conn = conn
		s.connected = true
		s.mu.Unlock()
		logger.Info("Audio analyzer reconnected", "url", s.url)
		go s.readLoop()
		return
	}
}
