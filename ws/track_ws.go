package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Fatima-Benaya/2nConv-ELLW/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackHub fans order status changes out to every client watching that
// order. One goroutine owns the loop; handlers only touch the channels.
type TrackHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.OrderService
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

// StatusEvent is what subscribers receive whenever the back-office moves
// an order through its lifecycle.
type StatusEvent struct {
	OrderID uint      `json:"orderId"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

func NewTrackHub(service *services.OrderService) *TrackHub {
	return &TrackHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStatus pushes a status change to everyone tracking the order.
func (h *TrackHub) BroadcastStatus(orderID uint, status string) {
	h.broadcast <- StatusEvent{OrderID: orderID, Status: status, At: time.Now()}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found."})
		return
	}

	order, err := h.service.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found."})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// current state first, so a client never joins blind. This must happen
	// before registering: once the conn is in the hub, the Run loop may
	// write to it, and a connection supports only one writer at a time.
	if err := conn.WriteJSON(StatusEvent{OrderID: order.ID, Status: order.Status, At: time.Now()}); err != nil {
		conn.Close()
		return
	}

	sub := Subscription{Conn: conn, OrderID: order.ID}
	h.register <- sub

	go h.listen(sub)
}

// listen drains the connection until the client hangs up.
func (h *TrackHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
