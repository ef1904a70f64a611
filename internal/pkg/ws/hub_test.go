package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newHubServer 每个连接按 userIDs 依次注册到 hub
func newHubServer(t *testing.T, hub *Hub, userIDs ...int64) string {
	t.Helper()

	var next int32 = -1
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i := atomic.AddInt32(&next, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &Client{UserID: userIDs[int(i)%len(userIDs)], Conn: conn}
		hub.Register(client)
		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_Empty(t *testing.T) {
	hub := NewHub()

	assert.Equal(t, 0, hub.ConnectionCount())
	assert.False(t, hub.IsOnline(1))
	assert.NoError(t, hub.SendToUser(1, &Message{Type: TypeUsageUpdated}))
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, 100)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.IsOnline(100) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.ConnectionCount())

	conn.Close()
	assert.Eventually(t, func() bool { return !hub.IsOnline(100) }, time.Second, 10*time.Millisecond)
}

func TestHub_NotifyReachesEveryConnectionOfUser(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, 7, 7, 8)

	tab1 := dial(t, url)
	tab2 := dial(t, url)
	other := dial(t, url)
	require.Eventually(t, func() bool { return hub.ConnectionCount() == 3 }, time.Second, 10*time.Millisecond)

	err := hub.Notify(context.Background(), 7, TypeCompanionReply, map[string]string{"reply": "Breathe in."})
	require.NoError(t, err)

	for _, conn := range []*websocket.Conn{tab1, tab2} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, TypeCompanionReply, msg.Type)
		assert.Equal(t, "Breathe in.", msg.Data["reply"])
	}

	other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err, "user 8 must not receive user 7's events")
}
