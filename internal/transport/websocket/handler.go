package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

// Handler upgrades page connections and feeds their clicks to sessions.
type Handler struct {
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
	ReadTimeout    time.Duration
	PingInterval   time.Duration
}

func NewHandler(sm *game.SessionManager, allowedOrigins []string, readTimeout, pingInterval time.Duration) *Handler {
	// time.NewTicker panics on a non-positive interval
	if pingInterval <= 0 || pingInterval >= readTimeout {
		pingInterval = readTimeout / 2
	}
	if pingInterval <= 0 {
		readTimeout, pingInterval = 60*time.Second, 30*time.Second
	}
	return &Handler{
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ReadTimeout:  readTimeout,
		PingInterval: pingInterval,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Printf("[WS] Rejected origin %q", origin)
		return false
	}
}

// HandleWebSocket serves GET /ws?session=<id>
func (h *Handler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Query("session")
	session, exists := h.SessionManager.GetSession(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn, session)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn, session *game.Session) {
	client := NewClient(conn)
	session.Attach(client, client)
	log.Printf("[WS] Connection attached to session %s", session.ID)

	done := make(chan struct{})
	defer func() {
		close(done)
		session.Detach(client)
		client.Close()
		log.Printf("[WS] Connection closed for session %s", session.ID)
	}()

	conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(h.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.Ping(); err != nil {
					return
				}
			}
		}
	}()

	// a fresh or reconnecting page redraws from this
	if err := client.SendMessage(StateMessage{Type: TypeState, State: session.Snapshot()}); err != nil {
		log.Printf("[WS] Failed to send state for session %s: %v", session.ID, err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Session %s disconnected unexpectedly: %v", session.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		h.processMessage(client, session, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(client *Client, session *game.Session, msg ClientMessage) {
	switch msg.Type {
	case TypeDrop:
		if msg.Column == nil {
			return
		}
		_, err := session.HandleColumnClick(*msg.Column)
		if err == nil {
			return
		}
		if game.IsGameOver(err) {
			client.SendMessage(ErrorMessage{Type: TypeMoveRejected, Message: err.Error()})
			return
		}
		log.Printf("[WS] Move failed for session %s: %v", session.ID, err)
		client.SendMessage(ErrorMessage{Type: TypeError, Message: err.Error()})

	default:
		client.SendMessage(ErrorMessage{Type: TypeError, Message: "unknown message type: " + msg.Type})
	}
}
