package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// streamClient is one connected browser. An empty participantID receives
// only program-wide messages.
type streamClient struct {
	id            string
	participantID string
	messages      chan Message
}

// Hub fans messages out to server-sent event streams
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*streamClient
	broadcast chan Message
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// NewHub creates a hub; call Start before serving streams
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*streamClient),
		broadcast: make(chan Message, BroadcastBufferSize),
		done:      make(chan struct{}),
	}
}

// Start runs the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client stream
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		for id, c := range h.clients {
			close(c.messages)
			delete(h.clients, id)
		}
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case msg := <-h.broadcast:
			h.deliver(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) deliver(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if msg.ParticipantID != "" && msg.ParticipantID != c.participantID {
			continue
		}
		select {
		case c.messages <- msg:
		default:
			// slow reader
		}
	}
}

// Notify queues msg for delivery without blocking the publisher
func (h *Hub) Notify(ctx context.Context, msg Message) error {
	select {
	case h.broadcast <- msg:
	default:
		logger.FromContext(ctx).Warn(LogMsgDropped, "type", msg.Type)
	}
	return nil
}

func (h *Hub) register(participantID string) *streamClient {
	c := &streamClient{
		id:            uuid.NewString(),
		participantID: participantID,
		messages:      make(chan Message, ClientBufferSize),
	}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.messages)
		delete(h.clients, id)
	}
}

// ClientCount returns the number of connected streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSE renders msg in text/event-stream framing
func FormatSSE(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+64)
	if msg.ID != "" {
		out = append(out, "id: "+msg.ID+"\n"...)
	}
	out = append(out, "event: "+msg.Type+"\n"...)
	out = append(out, "data: "...)
	out = append(out, data...)
	return append(out, '\n', '\n'), nil
}

// StreamHandler serves a participant's notifications as server-sent events.
// The participant is taken from the participant_id query parameter.
func StreamHandler(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamUnsupported, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		log := logger.FromContext(r.Context())
		participantID := r.URL.Query().Get("participant_id")
		c := h.register(participantID)
		log.Info(LogMsgStreamConnected, "client_id", c.id, "participant_id", participantID, "clients", h.ClientCount())
		defer func() {
			h.unregister(c.id)
			log.Info(LogMsgStreamClosed, "client_id", c.id, "clients", h.ClientCount())
		}()

		write := func(msg Message) bool {
			frame, err := FormatSSE(msg)
			if err != nil {
				log.Error(LogMsgStreamWriteError, "error", err)
				return true
			}
			if _, err := w.Write(frame); err != nil {
				log.Warn(LogMsgStreamWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Message{ID: c.id, Type: StreamTypeConnected, ParticipantID: participantID, Timestamp: time.Now().Unix()}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.Context().Done():
				return
			case msg, ok := <-c.messages:
				if !ok || !write(msg) {
					return
				}
			case <-ticker.C:
				if !write(Message{Type: StreamTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
