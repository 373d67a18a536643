package directline

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/soyeahso/botline/internal/config"
	"github.com/soyeahso/botline/internal/logging"
)

// Stream is a live activity feed for one conversation. Reads deliver raw
// text frames; writes are used only for keepalive. Writes are serialized,
// reads must come from a single goroutine.
type Stream struct {
	conn *websocket.Conn
	log  *logging.Logger

	mu     sync.Mutex
	closed bool
}

// OpenStream dials the conversation's stream endpoint.
func OpenStream(cfg config.ServiceConfig, streamURL string, log *logging.Logger) (*Stream, error) {
	header := http.Header{}
	if cfg.Origin != "" {
		header.Set("Origin", cfg.Origin)
	}
	if cfg.UserAgent != "" {
		header.Set("User-Agent", cfg.UserAgent)
	}

	dialer := websocket.Dialer{EnableCompression: false}
	conn, resp, err := dialer.Dial(streamURL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dialing stream: %w (status %d)", err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dialing stream: %w", err)
	}

	slog := log.Sub("stream")
	slog.Info().Str("url", streamURL).Msg("stream connected")
	return &Stream{conn: conn, log: slog}, nil
}

// ReadFrame blocks until the next text frame arrives and returns its raw
// payload. An empty payload is a keepalive echo and carries no activities.
func (s *Stream) ReadFrame() ([]byte, error) {
	_, msg, err := s.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Keepalive transmits an empty frame to prevent idle-timeout disconnection.
func (s *Stream) Keepalive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	return s.conn.WriteMessage(websocket.TextMessage, []byte{})
}

// Close tears down the stream connection.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

// ErrStreamClosed is returned when writing to a closed stream.
var ErrStreamClosed = fmt.Errorf("directline: stream closed")
