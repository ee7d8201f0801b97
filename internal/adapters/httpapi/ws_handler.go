package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
)

const (
	msgUpcoming       = "events.upcoming"
	msgParticipations = "participations"
	msgError          = "error"

	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are already filtered by the CORS middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WatchUpcoming streams the upcoming event list, once on connect and again
// after every change.
func WatchUpcoming(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		sub, err := events.WatchUpcoming(ctx)
		if err != nil {
			fail(c, err)
			return
		}
		defer sub.Unsubscribe()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("⚠️ websocket upgrade failed")
			return
		}
		defer conn.Close()
		go discardReads(conn, cancel)

		for list := range sub.Updates() {
			if err := writeMessage(conn, msgUpcoming, list); err != nil {
				log.Ctx(ctx).Debug().Err(err).Msg("websocket write failed")
				return
			}
		}
	}
}

// WatchParticipations streams the caller's ledger rows, optionally limited to ?status=.
func WatchParticipations(ledger input.ParticipationUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && !domain.ValidParticipationStatus(status) {
			fail(c, domain.ErrInvalidStatus)
			return
		}
		var predicate func(entities.ParticipationRecord) bool
		if status != "" {
			predicate = entities.StatusIs(status)
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("⚠️ websocket upgrade failed")
			return
		}
		defer conn.Close()

		var mu sync.Mutex
		unsubscribe, err := ledger.ListenForUser(ctx, currentUser(c), predicate, func(records []entities.ParticipationRecord) {
			mu.Lock()
			defer mu.Unlock()
			if err := writeMessage(conn, msgParticipations, records); err != nil {
				cancel()
			}
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("❌ participation subscription failed")
			_ = writeMessage(conn, msgError, ApiResponse{Error: message(c, err), Code: domain.Code(err)})
			return
		}
		defer unsubscribe()

		go discardReads(conn, cancel)
		<-ctx.Done()
	}
}

func writeMessage(conn *websocket.Conn, kind string, data any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(WSMessage{Type: kind, Data: data})
}

// discardReads processes control frames until the peer goes away, then
// cancels the subscription.
func discardReads(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
