package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-staffhub/internal/websocket/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewConnectionRegistry()

	c1 := r.Register("user-a", nil)
	c2 := r.Register("user-a", nil)
	c3 := r.Register("user-b", nil)

	assert.Equal(t, 3, r.Count())
	assert.Len(t, r.Lookup("user-a"), 2)
	assert.Len(t, r.Lookup("user-b"), 1)
	assert.Empty(t, r.Lookup("user-c"))

	require.NoError(t, r.Unregister(c1.ID))
	assert.Equal(t, 2, r.Count())
	assert.Len(t, r.Lookup("user-a"), 1)

	require.NoError(t, r.Unregister(c2.ID))
	assert.Empty(t, r.Lookup("user-a"))

	require.NoError(t, r.Unregister(c3.ID))
	assert.Equal(t, 0, r.Count())
}

func TestRegistryUnregisterUnknown(t *testing.T) {
	r := NewConnectionRegistry()
	assert.Error(t, r.Unregister("no-such-id"))
}

// Gorilla connections tolerate exactly one writer at a time; fan-out from
// request handlers races the ping loop unless every write is serialized.
func TestSendToUserConcurrentWriters(t *testing.T) {
	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	serverConn := <-serverConns
	defer serverConn.Close()

	// Drain the client side so server writes never stall on a full buffer.
	received := make(chan struct{}, 256)
	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
			received <- struct{}{}
		}
	}()

	r := NewConnectionRegistry()
	r.Register("user-a", serverConn)

	const writers = 8
	const perWriter = 20

	var delivered int64
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				n := r.SendToUser("user-a", &models.Message{
					Event:     models.EventNotification,
					Timestamp: time.Now().UTC(),
				})
				atomic.AddInt64(&delivered, int64(n))
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, writers*perWriter, delivered)

	for i := 0; i < writers*perWriter; i++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d of %d messages", i, writers*perWriter)
		}
	}
}

func TestConnectionLiveness(t *testing.T) {
	r := NewConnectionRegistry()
	conn := r.Register("user-a", nil)

	assert.True(t, conn.IsAlive(time.Second))
	assert.False(t, conn.IsAlive(0))

	before := conn.LastPing()
	time.Sleep(5 * time.Millisecond)
	conn.Touch()
	assert.True(t, conn.LastPing().After(before))
}
