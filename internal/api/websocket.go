package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// wsIncoming is a chat message sent by the browser
type wsIncoming struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// wsResponse is a message sent back over the socket
type wsResponse struct {
	Type      string           `json:"type"` // connected | advice | error
	SessionID string           `json:"session_id"`
	Text      string           `json:"text,omitempty"`
	Advice    *ConsultResponse `json:"advice,omitempty"`
}

// WSHandler serves chat consultations over a WebSocket
type WSHandler struct {
	coordinator    *Coordinator
	logger         *zap.Logger
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a WebSocket chat handler. With no allowed origins every
// origin is accepted.
func NewWSHandler(coordinator *Coordinator, logger *zap.Logger, allowedOrigins []string) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	h := &WSHandler{coordinator: coordinator, logger: logger, allowedOrigins: origins}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	defaultLanguage := requestLanguage(r, "")

	if err := conn.WriteJSON(wsResponse{Type: "connected", SessionID: sessionID}); err != nil {
		h.logger.Warn("Failed to send connected message", zap.Error(err))
		return
	}

	ctx := r.Context()
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket closed unexpectedly", zap.String("session_id", sessionID), zap.Error(err))
			}
			return
		}

		var incoming wsIncoming
		if err := json.Unmarshal(message, &incoming); err != nil {
			if err := conn.WriteJSON(wsResponse{
				Type:      "error",
				SessionID: sessionID,
				Text:      "Invalid message format. Send JSON with a 'text' field.",
			}); err != nil {
				return
			}
			continue
		}

		if strings.TrimSpace(incoming.Text) == "" {
			continue
		}

		language := incoming.Language
		if language == "" {
			language = defaultLanguage
		}

		resp, err := h.coordinator.Consult(ctx, ConsultRequest{
			Query:     incoming.Text,
			Language:  language,
			SessionID: sessionID,
		})
		if err != nil {
			h.logger.Warn("Consultation failed", zap.String("session_id", sessionID), zap.Error(err))
			if err := conn.WriteJSON(wsResponse{
				Type:      "error",
				SessionID: sessionID,
				Text:      "Sorry, I'm having trouble processing your message. Please try again.",
			}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(wsResponse{Type: "advice", SessionID: sessionID, Text: resp.Advice, Advice: resp}); err != nil {
			h.logger.Warn("Failed to write to WebSocket", zap.Error(err))
			return
		}
	}
}
