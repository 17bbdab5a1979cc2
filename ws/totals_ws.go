package ws

import (
	"log"
	"net/http"
	"sync"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TotalsHub pushes a session's recomputed bill to its subscribers (the
// customer-facing display) after every cart mutation.
type TotalsHub struct {
	clients    map[string]map[*websocket.Conn]bool // session id -> set of clients
	broadcast  chan string                         // session id whose totals moved
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	carts      *services.CartService
}

// Subscription is one display listening to one session.
type Subscription struct {
	Conn      *websocket.Conn
	SessionID string
}

func NewTotalsHub(carts *services.CartService) *TotalsHub {
	return &TotalsHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan string, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		carts:      carts,
	}
}

// Run listens for register/unregister/broadcast until the process exits.
func (h *TotalsHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case sessionID := <-h.broadcast:
			totals, err := h.carts.Totals(sessionID)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for conn := range h.clients[sessionID] {
				if err := conn.WriteJSON(totals); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[sessionID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a totals push for a session. Never blocks the mutating
// request; a slow hub just drops the intermediate frame.
func (h *TotalsHub) Publish(sessionID string) {
	select {
	case h.broadcast <- sessionID:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/sessions/:id
func (h *TotalsHub) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")

	// totals lookup doubles as the existence check
	if _, err := h.carts.Totals(sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, SessionID: sessionID}
	h.register <- sub

	// queue the current bill; Run owns every write to the conn
	h.Publish(sessionID)

	// drain reads until the display goes away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- sub
				return
			}
		}
	}()
}
