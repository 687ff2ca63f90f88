package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"spandan/config"
	"spandan/internal/auth"
	"spandan/internal/repository"
	"spandan/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ActivityHandler exposes the audit trail, both as a paginated listing and as
// a live websocket feed of new entries.
type ActivityHandler struct {
	cfg    *config.JWTConfig
	audit  *repository.AuditLogRepository
	tokens *repository.TokenRepository
	hub    *ws.Hub
}

func NewActivityHandler(cfg *config.JWTConfig, audit *repository.AuditLogRepository, tokens *repository.TokenRepository, hub *ws.Hub) *ActivityHandler {
	return &ActivityHandler{cfg: cfg, audit: audit, tokens: tokens, hub: hub}
}

func (h *ActivityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, total, err := h.audit.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total, "page": page})
}

// Stream upgrades to a websocket and pushes audit entries as they are
// recorded. Browsers cannot set an Authorization header on the upgrade
// request, so the token rides in the query string.
func (h *ActivityHandler) Stream(c *gin.Context) {
	claims, err := auth.ParseAccessToken(h.cfg, c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if h.tokens != nil && claims.ID != "" {
		revoked, err := h.tokens.IsRevoked(claims.ID)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	client := &ws.Client{
		UserID: claims.UserID,
		Role:   claims.Role,
		Send:   make(chan []byte, 32),
	}
	h.hub.Register(client)

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

func (h *ActivityHandler) writePump(conn *websocket.Conn, client *ws.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	for {
		select {
		case msg, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the feed is one-way. It exists to notice
// the peer going away and unregister the client.
func (h *ActivityHandler) readPump(conn *websocket.Conn, client *ws.Client) {
	defer client.Close()
	conn.SetReadLimit(512)
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pingPeriod + writeWait))
		return nil
	})
	conn.SetReadDeadline(time.Now().Add(pingPeriod + writeWait))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
