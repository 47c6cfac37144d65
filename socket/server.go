package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"squadup_server/models"
)

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// register under their user id for match notifications and join conversation
// rooms for message notifications.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	// Register a user for direct notifications (reciprocal matches).
	server.OnEvent("/", "register", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in register request")
			return
		}
		c.Join(userRoom(userID))
		log.Printf("👤 Socket %s registered as user %s\n", c.ID(), userID)
	})

	// Join a conversation room for newMessage broadcasts.
	server.OnEvent("/", "join", func(c socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Println("❌ Invalid conversationId in join request")
			return
		}
		c.Join(conversationID)
		log.Printf("👥 Socket %s joined conversation %s\n", c.ID(), conversationID)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, conversationID string) {
		c.Leave(conversationID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}

// Dispatcher broadcasts fire-and-forget notifications over the socket
// server. It never blocks callers and reports nothing back.
type Dispatcher struct {
	Server *socketio.Server
}

func (d *Dispatcher) MatchCreated(userIDA, userIDB, conversationID string) {
	payload := map[string]string{
		"conversationId": conversationID,
		"userIdA":        userIDA,
		"userIdB":        userIDB,
	}
	d.Server.BroadcastToRoom("/", userRoom(userIDA), "matchCreated", payload)
	d.Server.BroadcastToRoom("/", userRoom(userIDB), "matchCreated", payload)
}

func (d *Dispatcher) NewMessage(conversationID string, msg models.Message) {
	d.Server.BroadcastToRoom("/", conversationID, "newMessage", msg)
	d.Server.BroadcastToRoom("/", userRoom(msg.RecipientID), "newMessage", msg)
}

func userRoom(userID string) string {
	return "user:" + userID
}
