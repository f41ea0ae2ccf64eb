package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is one change pushed down a live subscription. Subscribers replace
// their local projection of the collection wholesale on each event.
type Event struct {
	Collection string `json:"collection"`
	Type       string `json:"type"`
	Doc        any    `json:"doc,omitempty"`
}

// Hub is the realtime fan-out point. Every connected client observes the
// change stream; per-client filtering handles toasts and forced logouts. It
// implements services.EventSink.
type Hub struct {
	clients    map[*websocket.Conn]Subscription
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Subscription is one authenticated client connection.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
	Role   string
}

// BroadcastMessage carries an event plus an optional per-client filter. With
// CloseMatched set, matching connections are closed after delivery (forced
// logout).
type BroadcastMessage struct {
	Event        Event
	Filter       func(userID uint, role string) bool
	CloseMatched bool
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]Subscription),
		broadcast:  make(chan BroadcastMessage, 64),
		register:   make(chan Subscription),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast forever. Delivery to one
// client never blocks or breaks delivery to the others: a failed write tears
// down only that connection.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.Conn] = sub
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn, sub := range h.clients {
				if msg.Filter != nil && !msg.Filter(sub.UserID, sub.Role) {
					continue
				}
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
					continue
				}
				if msg.CloseMatched {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish pushes a collection change to every subscriber.
func (h *Hub) Publish(collection, changeType string, doc any) {
	h.broadcast <- BroadcastMessage{
		Event: Event{Collection: collection, Type: changeType, Doc: doc},
	}
}

// NotificationAdded pushes the list update to everyone, then a toast to the
// clients the delivery filter selects: recent notifications only, addressed
// to the viewer or order/shift events observed by an admin.
func (h *Hub) NotificationAdded(n *entity.Notification) {
	h.broadcast <- BroadcastMessage{
		Event: Event{Collection: "notifications", Type: services.ChangeAdded, Doc: n},
	}

	now := time.Now().UnixMilli()
	h.broadcast <- BroadcastMessage{
		Event: Event{Collection: "toasts", Type: services.ChangeAdded, Doc: gin.H{
			"message": n.Message,
			"type":    n.Type,
		}},
		Filter: func(userID uint, role string) bool {
			return services.ShouldToast(n, userID, entity.Role(role), now)
		},
	}
}

// ForceLogout signs a user out remotely: a revocation event followed by
// closing every connection they hold. Live lockout, not a next-login check.
func (h *Hub) ForceLogout(userID uint) {
	h.broadcast <- BroadcastMessage{
		Event:        Event{Collection: "session", Type: "revoked"},
		Filter:       func(id uint, _ string) bool { return id == userID },
		CloseMatched: true,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws?token=...
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID, Role: role}
	h.register <- sub

	go h.listen(conn)
}

// listen drains the connection until it closes; clients only receive.
func (h *Hub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
