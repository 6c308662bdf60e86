package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lamsatk/lamsat-backend/internal/goroutine"
	"github.com/lamsatk/lamsat-backend/internal/logger"
)

// Hub раздаёт события всем подключённым админским клиентам.
// Подписка одна на всех: каждый подключённый администратор видит
// всю ленту заявок.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub создаёт новый хаб.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 32),
		done:       make(chan struct{}),
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case payload := <-h.broadcast:
			h.send(payload)
		case <-h.done:
			return
		}
	}
}

// Stop останавливает главный цикл.
func (h *Hub) Stop() {
	close(h.done)
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast отправляет событие всем клиентам. Поле "type" содержит имя
// события, "data" — полезную нагрузку.
func (h *Hub) Broadcast(event string, data any) error {
	raw, err := json.Marshal(map[string]any{
		"type": event,
		"data": data,
	})
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	select {
	case h.broadcast <- raw:
		return nil
	case <-h.done:
		return fmt.Errorf("ws: хаб остановлен")
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) send(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Клиент не успевает читать: закрываем асинхронно.
			c := client
			goroutine.SafeGo(func() {
				c.Close()
			})
			logger.WithComponent("ws").Warn("slow websocket client dropped")
		}
	}
}
