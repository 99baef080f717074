package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afyabuddy/internal/models"
	"afyabuddy/internal/session"
)

func dialWS(t *testing.T, srv *httptest.Server, query string, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func newWSServer(t *testing.T, sessions session.Store, origins []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("/ws", NewWSHandler(newTestCoordinator(sessions, nil, nil), nil, origins))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestWebSocket_RoundTrip(t *testing.T) {
	sessions := session.NewMemoryStore(0, 0)
	srv := newWSServer(t, sessions, nil)
	conn := dialWS(t, srv, "?session_id=chat-1", nil)

	var connected wsResponse
	require.NoError(t, conn.ReadJSON(&connected))
	assert.Equal(t, "connected", connected.Type)
	assert.Equal(t, "chat-1", connected.SessionID)

	require.NoError(t, conn.WriteJSON(wsIncoming{Text: "I twisted my ankle"}))

	var reply wsResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "advice", reply.Type)
	assert.Equal(t, "chat-1", reply.SessionID)
	require.NotNil(t, reply.Advice)
	assert.Equal(t, "sprain", reply.Advice.Category)
	assert.Equal(t, reply.Advice.Advice, reply.Text)

	require.NoError(t, conn.WriteJSON(wsIncoming{Text: "emergency help", Language: "sw"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "sw", reply.Advice.Language)

	msgs, err := sessions.Load(t.Context(), "chat-1")
	require.NoError(t, err)
	assert.Len(t, msgs, 4)
	assert.Equal(t, models.RoleUser, msgs[2].Role)
}

func TestWebSocket_GeneratesSessionID(t *testing.T) {
	srv := newWSServer(t, nil, nil)
	conn := dialWS(t, srv, "", nil)

	var connected wsResponse
	require.NoError(t, conn.ReadJSON(&connected))
	assert.Len(t, connected.SessionID, 36)
}

func TestWebSocket_InvalidMessage(t *testing.T) {
	srv := newWSServer(t, nil, nil)
	conn := dialWS(t, srv, "?session_id=x", nil)

	var msg wsResponse
	require.NoError(t, conn.ReadJSON(&msg))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Text, "'text' field")

	// blank text is ignored; the next reply belongs to the following message
	require.NoError(t, conn.WriteJSON(wsIncoming{Text: "  "}))
	require.NoError(t, conn.WriteJSON(wsIncoming{Text: "burn"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "advice", msg.Type)
	assert.Equal(t, "burn", msg.Advice.Category)
}

func TestWebSocket_OriginCheck(t *testing.T) {
	srv := newWSServer(t, nil, []string{"https://afya.example"})
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn := dialWS(t, srv, "", http.Header{"Origin": {"https://afya.example"}})
	var connected wsResponse
	require.NoError(t, conn.ReadJSON(&connected))
	assert.Equal(t, "connected", connected.Type)
}
