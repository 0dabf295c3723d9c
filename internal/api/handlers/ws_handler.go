package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/worklane/worklane-go/internal/config"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/response"
	"github.com/worklane/worklane-go/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedHandler struct {
	repos *repository.Repos
}

func NewFeedHandler(repos *repository.Repos) *FeedHandler {
	return &FeedHandler{repos: repos}
}

// StreamContracts pushes contract changes to the caller over WebSocket.
// Every poll interval it sends the contracts updated since the previous
// tick, scoped to the caller's side of the marketplace.
func (h *FeedHandler) StreamContracts(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// Heartbeat handling
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := c.Request.Context()
	ticker := time.NewTicker(time.Duration(config.FeedPollSeconds) * time.Second)
	defer ticker.Stop()

	// Reader to consume control frames and detect close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
		}
	}()

	lastSeen := time.Now().Unix()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			since := lastSeen
			lastSeen = time.Now().Unix()

			updated, err := h.repos.Contract.ListContractsUpdatedSince(since)
			if err != nil {
				_ = conn.WriteMessage(websocket.TextMessage, []byte("[]"))
				continue
			}

			mine := make([]contract.Contract, 0, len(updated))
			for _, ct := range updated {
				if claims.Role == "admin" || ct.ClientID == claims.UserID || ct.FreelancerID == claims.UserID {
					mine = append(mine, ct)
				}
			}
			if len(mine) == 0 {
				continue
			}

			payload, _ := json.Marshal(mine)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
