package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"go.uber.org/zap"
)

// DashboardHub fans order changes out to connected staff dashboards over
// websocket. Clients treat every message as a hint to refresh; the hub
// carries no ordering or delivery guarantees of its own.
type DashboardHub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewDashboardHub(logger *zap.Logger) *DashboardHub {
	return &DashboardHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *DashboardHub) Handle(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("dashboard client connected",
		zap.String("remote", conn.RemoteAddr().String()))

	// Read loop exists only to observe the close handshake.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *DashboardHub) NotifyOrderChanged(order *domain.Order) {
	message := newOrderResp(order)

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.logger.Debug("dashboard client write failed, dropping",
				zap.Error(err))
			h.drop(conn)
		}
	}
}

func (h *DashboardHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mu.Unlock()
}
