package controllers

import (
	"net/http"
	"time"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub    *services.RealtimeHub
	Alerts *services.AlertBus
}

func NewRealtimeController(hub *services.RealtimeHub, alerts *services.AlertBus) *RealtimeController {
	return &RealtimeController{Hub: hub, Alerts: alerts}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy
}

func (rc *RealtimeController) ListAlerts(c *gin.Context) {
	uid, _ := currentUserID(c)
	alerts, err := rc.Alerts.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AlertsWS upgrades to a per-user websocket and pumps the user's alert
// stream onto it until either side goes away.
func (rc *RealtimeController) AlertsWS(c *gin.Context) {
	uid, _ := currentUserID(c)

	// subscribe before the handshake completes so nothing emitted right
	// after the client connects can slip past
	stream := rc.Hub.Subscribe(uid)
	defer rc.Hub.Unsubscribe(stream)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// read side only detects the peer closing
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(25 * time.Second) // keepalive through proxies
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-stream.Messages():
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
