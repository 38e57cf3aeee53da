package ws

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpgrader_CheckOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "any origin when unrestricted", origin: "https://evil.example", want: true},
		{name: "listed origin", allowed: []string{"https://kiosk.example"}, origin: "https://kiosk.example", want: true},
		{name: "unlisted origin", allowed: []string{"https://kiosk.example"}, origin: "https://evil.example", want: false},
		{name: "no origin header", allowed: []string{"https://kiosk.example"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, NewUpgrader(tt.allowed).CheckOrigin(req))
		})
	}
}

func TestClient_SendAndClose(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clients := make(chan *Client, 1)
	received := make(chan string, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := NewUpgrader(nil).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, logger)
		clients <- client
		client.ReadPump(func(payload []byte) {
			received <- string(payload)
		})
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := <-clients
	require.True(t, client.Send(Message{Type: TypeValue, Data: map[string]int{"n": 1}}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, TypeValue, msg.Type)
	assert.Equal(t, 1, msg.Data["n"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"refresh"}`)))
	select {
	case payload := <-received:
		assert.JSONEq(t, `{"type":"refresh"}`, payload)
	case <-time.After(5 * time.Second):
		t.Fatal("browser message not delivered")
	}

	client.Close()
	client.Close()
	assert.False(t, client.Send(Message{Type: TypeValue}))

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
