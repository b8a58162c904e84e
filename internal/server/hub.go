package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub fans light-state messages out to every connected client. Slow clients
// whose buffer is full are dropped.
type hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	done     chan struct{}
	stopOnce sync.Once
}

func newHub() *hub {
	return &hub{
		clients:    map[*client]bool{},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

// stop ends run and disconnects every client. It is safe to call twice.
func (h *hub) stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *hub) run() {
	for {
		select {
		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					log.Printf("dropping slow client %s", c.id)
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// reader drains the connection so control frames are handled, and
// unregisters the client once it goes away.
func (c *client) reader(h *hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writer() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) handleLights(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	c := &client{id: uuid.New().String(), conn: conn, send: make(chan []byte, 16)}

	// The current state goes out first so clients don't wait a tick.
	s.mu.Lock()
	msg, err := s.lightsMessage()
	s.mu.Unlock()
	if err == nil {
		c.send <- msg
	}

	select {
	case s.hub.register <- c:
	case <-s.hub.done:
		conn.Close()
		return
	}
	log.Printf("light client %s connected", c.id)
	go c.writer()
	go c.reader(s.hub)
}
