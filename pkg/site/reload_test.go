package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestReloadHubBroadcast(t *testing.T) {
	hub := NewReloadHub()
	mux := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(mux.Close)

	conn := dialReload(t, mux)

	waitForClients(t, hub, 1)
	hub.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestReloadHubErrorMessage(t *testing.T) {
	hub := NewReloadHub()
	mux := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(mux.Close)

	conn := dialReload(t, mux)
	waitForClients(t, hub, 1)

	hub.NotifyError("render blew up")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ReloadTypeError || msg.Error != "render blew up" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestReloadHubClientCount(t *testing.T) {
	hub := NewReloadHub()
	if hub.ClientCount() != 0 {
		t.Errorf("fresh hub count = %d", hub.ClientCount())
	}

	mux := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(mux.Close)

	conn := dialReload(t, mux)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func waitForClients(t *testing.T, hub *ReloadHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", hub.ClientCount(), want)
}
