// Package notify рассылает события о новых записях подключенным клиентам.
//
// Hub хранит явный реестр соединений: соединение регистрируется при открытии
// сокета и удаляется при закрытии. Рассылка не блокируется медленными
// клиентами: если буфер клиента заполнен, событие для него отбрасывается.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/metrics"
	"github.com/shenikar/disaster_response_system/internal/models"
)

const defaultSendBuffer = 16

// client - зарегистрированное соединение
type client struct {
	id       string
	identity models.Identity
	events   map[string]struct{} // пустое множество - все события
	send     chan []byte
}

func (c *client) subscribed(event string) bool {
	if len(c.events) == 0 {
		return true
	}
	_, ok := c.events[event]
	return ok
}

// Hub - реестр соединений и рассыльщик событий
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*client
	sendBuffer int
	upgrader   websocket.Upgrader
	logger     *logrus.Logger
}

// NewHub создает реестр. allowedOrigins ограничивает Origin при подключении сокета.
func NewHub(logger *logrus.Logger, sendBuffer int, allowedOrigins []string) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	h := &Hub{
		clients:    make(map[string]*client),
		sendBuffer: sendBuffer,
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// register добавляет соединение в реестр и возвращает его
func (h *Hub) register(identity models.Identity, events []string) *client {
	c := &client{
		id:       ulid.Make().String(),
		identity: identity,
		events:   make(map[string]struct{}, len(events)),
		send:     make(chan []byte, h.sendBuffer),
	}
	for _, e := range events {
		c.events[e] = struct{}{}
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	h.logger.WithFields(logrus.Fields{
		"conn_id": c.id,
		"user_id": identity.UserID,
		"role":    identity.Role,
	}).Info("Realtime client connected")
	return c
}

// unregister удаляет соединение и закрывает его очередь. Повторный вызов безопасен.
func (h *Hub) unregister(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(c.send)
	}
	h.mu.Unlock()

	if ok {
		metrics.WSConnections.Dec()
		h.logger.WithField("conn_id", id).Info("Realtime client disconnected")
	}
}

// Count возвращает число открытых соединений
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish рассылает событие всем подписанным клиентам. Никогда не блокируется.
func (h *Hub) Publish(_ context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var delivered, dropped int
	h.mu.RLock()
	for _, c := range h.clients {
		if !c.subscribed(event.Name) {
			continue
		}
		select {
		case c.send <- payload:
			delivered++
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	metrics.EventsDelivered.WithLabelValues(event.Name).Add(float64(delivered))
	if dropped > 0 {
		metrics.EventsDropped.WithLabelValues(event.Name).Add(float64(dropped))
		h.logger.WithFields(logrus.Fields{
			"event":   event.Name,
			"dropped": dropped,
		}).Warn("Dropped event for slow realtime clients")
	}
	return nil
}

// ParseEvents разбирает список событий из строки вида "newSOS,newResourceRequest".
// Пустая строка означает подписку на все события.
func ParseEvents(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var events []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !isKnownEvent(name) {
			return nil, fmt.Errorf("unknown event %q: must be one of %s", name, strings.Join(models.Events, ", "))
		}
		events = append(events, name)
	}
	return events, nil
}

func isKnownEvent(name string) bool {
	for _, e := range models.Events {
		if e == name {
			return true
		}
	}
	return false
}
