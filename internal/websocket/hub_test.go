package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// testClient creates a Client with a send channel but no real connection.
func testClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, sendBufferSize),
	}
}

func TestNewMessage(t *testing.T) {
	tests := []struct {
		entity, action string
		id             int64
		wantType       string
	}{
		{"user", "created", 1, "user_created"},
		{"caregiver", "updated", 5, "caregiver_updated"},
		{"appointment", "deleted", 42, "appointment_deleted"},
		{"job", "created", 7, "job_created"},
	}
	for _, tt := range tests {
		msg := NewMessage(tt.entity, tt.action, tt.id)
		if msg.Type != tt.wantType {
			t.Errorf("NewMessage(%s, %s).Type = %q, want %q", tt.entity, tt.action, msg.Type, tt.wantType)
		}
		if msg.Entity != tt.entity || msg.Action != tt.action || msg.ID != tt.id {
			t.Errorf("NewMessage(%s, %s, %d) = %+v", tt.entity, tt.action, tt.id, msg)
		}
	}
}

// A page that navigated away must stop receiving record changes while the
// remaining pages still do.
func TestBroadcastReachesOnlyRegisteredClients(t *testing.T) {
	hub := NewHub(slog.Default())

	staying := testClient(hub)
	leaving := testClient(hub)
	hub.Register(staying)
	hub.Register(leaving)
	hub.Unregister(leaving)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client, got %d", got)
	}

	hub.Broadcast(NewMessage("user", "deleted", 3))

	select {
	case data := <-staying.send:
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != "user_deleted" || got.ID != 3 {
			t.Errorf("message = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	if _, ok := <-leaving.send; ok {
		t.Error("unregistered client should not receive broadcasts")
	}
}

// A client that stopped draining its buffer must not stall deliveries to
// the healthy ones.
func TestBroadcastSkipsSaturatedClient(t *testing.T) {
	hub := NewHub(slog.Default())

	healthy := testClient(hub)
	stuck := testClient(hub)
	hub.Register(healthy)
	hub.Register(stuck)

	for i := 0; i < sendBufferSize; i++ {
		stuck.send <- []byte("backlog")
	}

	hub.Broadcast(NewMessage("job", "created", 9))

	select {
	case <-healthy.send:
	case <-time.After(time.Second):
		t.Fatal("healthy client should still receive while another is saturated")
	}
	if len(stuck.send) != sendBufferSize {
		t.Errorf("saturated client buffer = %d, want %d (message dropped)", len(stuck.send), sendBufferSize)
	}

	hub.Unregister(healthy)
	hub.Unregister(stuck)
}

func TestUnregisterTwice(t *testing.T) {
	hub := NewHub(slog.Default())
	c := testClient(hub)
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(slog.Default())
	// Should not panic
	hub.Broadcast(NewMessage("appointment", "updated", 1))
}

// Pages connect and disconnect while mutations keep broadcasting; the hub
// must stay consistent and never send on a closed channel.
func TestClientChurnUnderBroadcast(t *testing.T) {
	hub := NewHub(slog.Default())

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast(NewMessage("user", "updated", 1))
			}
		}
	}()

	for i := 0; i < 50; i++ {
		c := testClient(hub)
		hub.Register(c)
		select {
		case <-c.send:
		default:
		}
		hub.Unregister(c)
	}

	close(stop)
	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after churn, got %d", got)
	}
}
