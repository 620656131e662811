package services

import (
	"encoding/json"
	"sync"
)

const streamBuffer = 8

// AlertStream is one subscriber's feed of marshalled alert events. The
// hub writes, the transport (websocket handler, a test) reads.
type AlertStream struct {
	userID uint
	ch     chan []byte
}

// Messages is closed when the stream is unsubscribed.
func (s *AlertStream) Messages() <-chan []byte { return s.ch }

// RealtimeHub fans alert events out to a user's open subscriptions.
// Delivery is per-user and best-effort: a subscriber that stops
// draining its stream loses events instead of blocking the emitter.
type RealtimeHub struct {
	mu   sync.RWMutex
	subs map[uint]map[*AlertStream]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{subs: make(map[uint]map[*AlertStream]struct{})}
}

func (h *RealtimeHub) Subscribe(userID uint) *AlertStream {
	s := &AlertStream{userID: userID, ch: make(chan []byte, streamBuffer)}
	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*AlertStream]struct{})
	}
	h.subs[userID][s] = struct{}{}
	h.mu.Unlock()
	return s
}

func (h *RealtimeHub) Unsubscribe(s *AlertStream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[s.userID]
	if set == nil {
		return
	}
	if _, ok := set[s]; !ok {
		return // already gone, don't close twice
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.userID)
	}
	close(s.ch)
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[userID] {
		select {
		case s.ch <- msg:
		default:
		}
	}
}
