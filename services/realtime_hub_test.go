package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHubDeliversPerUser(t *testing.T) {
	hub := NewRealtimeHub()
	mine := hub.Subscribe(7)
	other := hub.Subscribe(8)
	defer hub.Unsubscribe(mine)
	defer hub.Unsubscribe(other)

	hub.Broadcast(7, map[string]string{"kind": "alert.created"})

	var got map[string]string
	select {
	case msg := <-mine.Messages():
		require.NoError(t, json.Unmarshal(msg, &got))
	default:
		t.Fatal("expected a buffered message for the subscribed user")
	}
	assert.Equal(t, "alert.created", got["kind"])

	select {
	case msg := <-other.Messages():
		t.Fatalf("message leaked across users: %s", msg)
	default:
	}
}

func TestRealtimeHubDropsWhenSubscriberStalls(t *testing.T) {
	hub := NewRealtimeHub()
	s := hub.Subscribe(1)
	defer hub.Unsubscribe(s)

	// nobody drains the stream; overflow must not block the emitter
	for i := 0; i < streamBuffer+5; i++ {
		hub.Broadcast(1, map[string]int{"n": i})
	}
	assert.Len(t, s.Messages(), streamBuffer)
}

func TestRealtimeHubUnsubscribeClosesStream(t *testing.T) {
	hub := NewRealtimeHub()
	s := hub.Subscribe(2)
	hub.Unsubscribe(s)

	_, open := <-s.Messages()
	assert.False(t, open)

	// second unsubscribe and post-close broadcast are no-ops
	hub.Unsubscribe(s)
	hub.Broadcast(2, map[string]string{"kind": "late"})
}
