package realtime

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialnet/src/auth"
	"socialnet/src/models"
	"socialnet/src/protocol"
	"socialnet/src/services"
)

// Handler runs the websocket endpoint. Authentication happens in two
// moments: at handshake time the upgrade request is searched for a
// credential, which is stashed in connection locals without ever rejecting
// the upgrade; at first-frame time a connect frame binds (or fails to bind)
// a principal to the connection. Unauthenticated connections stay open as
// anonymous and are simply unaddressable by the hub.
type Handler struct {
	db       *gorm.DB
	hub      *Hub
	messages *services.MessageService
}

func NewHandler(db *gorm.DB, hub *Hub, messages *services.MessageService) *Handler {
	return &Handler{db: db, hub: hub, messages: messages}
}

// Upgrade is the pre-upgrade middleware: extract a credential from the
// handshake request into connection locals under both token keys, then
// always let the upgrade proceed
func (h *Handler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	if token := auth.TokenFromRequest(c); token != "" {
		c.Locals("token", token)
		c.Locals("access_token", token)
	}
	return c.Next()
}

// Serve returns the upgraded websocket handler
func (h *Handler) Serve() fiber.Handler {
	return websocket.New(h.serve)
}

func (h *Handler) serve(conn *websocket.Conn) {
	connID := uuid.NewString()
	var principal *models.User

	defer func() {
		if principal != nil {
			h.hub.Unregister(principal.Email, connID)
		}
		conn.Close()
	}()

	for {
		var frame protocol.ClientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Action {
		case protocol.ActionConnect:
			principal = h.authenticate(conn, connID, frame, principal)

		case protocol.ActionPing:
			// unauthenticated pings are ignored, the connection stays open
			if principal == nil {
				continue
			}
			h.hub.SendToUser(principal.Email, protocol.PongEvent{
				Type:              protocol.EventPong,
				Timestamp:         time.Now().UnixMilli(),
				ReceivedTimestamp: frame.Timestamp,
			})

		case protocol.ActionChat:
			if principal == nil {
				h.writeError(conn, principal, "Authentication required")
				continue
			}
			if _, err := h.messages.Send(*principal, frame.ReceiverID, frame.Content); err != nil {
				log.Printf("Error sending chat message from %s: %v", principal.Email, err)
				h.writeError(conn, principal, chatErrorMessage(err))
			}

		default:
			h.writeError(conn, principal, "Unknown action: "+frame.Action)
		}
	}
}

// authenticate resolves the first-frame credential: frame headers first,
// then the attributes stored at handshake time. Any failure leaves the
// current binding untouched; a success replaces it (last wins).
func (h *Handler) authenticate(conn *websocket.Conn, connID string, frame protocol.ClientFrame, current *models.User) *models.User {
	token := auth.TokenFromHeaders(frame.Headers)
	if token == "" {
		token = localString(conn, "token")
	}
	if token == "" {
		token = localString(conn, "access_token")
	}
	if token == "" {
		log.Printf("No authentication token found in connect frame - allowing unauthenticated connection")
		return current
	}

	email, err := auth.ExtractSubject(token)
	if err != nil {
		log.Printf("Websocket token validation failed: %v", err)
		return current
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Printf("Websocket authentication: user %s not found", email)
		return current
	}

	if !auth.TokenValid(token, user.Email) {
		log.Printf("Invalid websocket token for user %s", email)
		return current
	}

	if current != nil {
		h.hub.Unregister(current.Email, connID)
	}
	h.hub.Register(user.Email, connID, conn)
	h.hub.SendToUser(user.Email, protocol.ConnectedEvent{
		Type: protocol.EventConnected,
		User: user.ToDto(),
	})

	log.Printf("Websocket authentication successful for %s", user.Email)
	return &user
}

// writeError reports a failure on the connection it happened on. For a
// bound principal the write goes through the hub so it serializes with
// concurrent pushes; anonymous connections are written directly.
func (h *Handler) writeError(conn *websocket.Conn, principal *models.User, message string) {
	event := protocol.ChatErrorEvent{
		Type:      protocol.EventChatError,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}

	if principal != nil {
		h.hub.SendToUser(principal.Email, event)
		return
	}
	if err := conn.WriteJSON(event); err != nil {
		log.Printf("Error writing to anonymous connection: %v", err)
	}
}

func localString(conn *websocket.Conn, key string) string {
	if v, ok := conn.Locals(key).(string); ok {
		return v
	}
	return ""
}

func chatErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNotFriends):
		return "You are not friends with this user"
	case errors.Is(err, services.ErrEmptyContent):
		return "Message content cannot be empty"
	case errors.Is(err, services.ErrNotFound):
		return "Receiver not found"
	default:
		return "Error sending message"
	}
}
