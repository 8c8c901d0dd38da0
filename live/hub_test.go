package live

import (
	"encoding/json"
	"testing"
	"time"

	"kirana/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- client

	hub.Publish("order_created", models.Order{OrderID: "o1", Status: models.OrderPending})

	select {
	case got := <-client.Send:
		var ev Event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if ev.Type != "order_created" || ev.Order.OrderID != "o1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{
		Send: make(chan []byte), // unbuffered, never read
	}
	hub.register <- slow

	healthy := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- healthy

	hub.Publish("order_cancelled", models.Order{OrderID: "o2"})

	select {
	case <-healthy.Send:
		// healthy client still receives after the slow one is dropped
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event on healthy client")
	}

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected slow client channel to be closed")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("slow client was not dropped")
	}
}
