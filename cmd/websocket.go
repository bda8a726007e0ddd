package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

const (
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
	wsReadDeadline  = 120 * time.Second
)

// ContactFeed pushes newly submitted contact requests to connected back
// office clients. All access to the clients map happens in Run.
type ContactFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan models.Contact
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	errorLog   *log.Logger
}

func NewContactFeed(errorLog *log.Logger) *ContactFeed {
	return &ContactFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan models.Contact, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		errorLog:   errorLog,
	}
}

func (f *ContactFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.clients[conn] = true

		case conn := <-f.unregister:
			if _, ok := f.clients[conn]; ok {
				conn.Close()
				delete(f.clients, conn)
			}

		case contact := <-f.broadcast:
			for conn := range f.clients {
				conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(contact); err != nil {
					f.errorLog.Printf("ws write: %v", err)
					conn.Close()
					delete(f.clients, conn)
				}
			}
		}
	}
}

// NotifyNewContact feeds the hub. A full buffer drops the event rather than
// stalling the contact intake.
func (f *ContactFeed) NotifyNewContact(_ context.Context, contact models.Contact) {
	select {
	case f.broadcast <- contact:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ContactFeedHandler upgrades staff connections to the live contact feed.
// Browsers cannot set headers on WebSocket upgrades, so the access token
// arrives as a query parameter.
func (app *application) ContactFeedHandler(w http.ResponseWriter, r *http.Request) {
	accessToken := r.URL.Query().Get("token")
	if accessToken == "" {
		http.Error(w, "Token missing", http.StatusUnauthorized)
		return
	}
	_, role, err := app.tokenManager.Parse(accessToken)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	if role != "agent" && role != "admin" {
		http.Error(w, "Forbidden: only agents or admins allowed", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("ws upgrade: %v", err)
		return
	}
	app.contactFeed.register <- conn

	go app.keepAlive(conn)
}

// keepAlive pings the client and drains incoming frames until the
// connection drops.
func (app *application) keepAlive(conn *websocket.Conn) {
	defer func() {
		app.contactFeed.unregister <- conn
	}()

	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			// The hub goroutine owns data writes on this connection.
			// WriteControl is the only write safe to issue from here.
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteDeadline)); err != nil {
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
