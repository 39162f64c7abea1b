package relay

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultMaxFrameBytes bounds inbound frame size. Pairing frames are a few
// kilobytes of JSON at most.
const DefaultMaxFrameBytes = 64 << 10

const writeTimeout = 10 * time.Second

// ServerConfig tunes the websocket binding.
type ServerConfig struct {
	// MaxFrameBytes caps inbound frames; DefaultMaxFrameBytes when zero.
	MaxFrameBytes int64

	Logger zerolog.Logger
}

// Server exposes a Hub over websocket. One websocket connection is one
// session participant for its whole lifetime; closing the socket is the
// Leave.
//
// Route: GET /session/{code}?device={connectionID}
type Server struct {
	hub      *Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
	maxFrame int64
}

// NewServer returns a websocket binding over hub.
func NewServer(hub *Hub, cfg ServerConfig) *Server {
	maxFrame := cfg.MaxFrameBytes
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameBytes
	}
	return &Server{
		hub: hub,
		log: cfg.Logger,
		upgrader: websocket.Upgrader{
			// The session code is the admission secret; origin carries no
			// trust here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		maxFrame: maxFrame,
	}
}

// Handler returns the HTTP handler for the relay routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /session/{code}", s.handleSession)
	return mux
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	connID := r.URL.Query().Get("device")
	if code == "" || connID == "" {
		http.Error(w, "session code and device id required", http.StatusBadRequest)
		return
	}

	// uuid distinguishes sockets in logs; the device id is caller-supplied
	// and not assumed unique or honest.
	log := s.log.With().
		Str("socket", uuid.NewString()).
		Str("code", code).
		Str("device", connID).
		Logger()

	conn, err := s.hub.Join(code, connID)
	if errors.Is(err, ErrSessionFull) {
		log.Warn().Msg("join rejected, session full")
		http.Error(w, "session full", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.hub.Leave(conn)
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	ws.SetReadLimit(s.maxFrame)
	log.Info().Msg("connection joined")

	// Writer: the only goroutine writing to the socket. It pumps forwarded
	// payloads until Leave closes the delivery stream, then sends the
	// close frame (violation reports take precedence over a normal close).
	violation := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for payload := range conn.Deliveries() {
			_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Warn().Err(err).Msg("delivery write failed")
				return
			}
		}
		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		select {
		case err := <-violation:
			closeMsg = websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
		default:
		}
		_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		_ = ws.WriteMessage(websocket.CloseMessage, closeMsg)
	}()

	// Reader: forward every inbound frame to the peer.
	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("read failed")
			}
			break
		}
		if err := s.hub.Forward(code, connID, payload); err != nil {
			// Ordering violations indicate a broken caller; surface loudly
			// and drop the connection rather than soft-ignoring.
			log.Error().Err(err).Msg("forward rejected")
			violation <- err
			break
		}
	}

	s.hub.Leave(conn)
	<-done
	_ = ws.Close()
	log.Info().Int("live_sessions", s.hub.Sessions()).Msg("connection left")
}
