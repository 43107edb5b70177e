package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/disaster_response_system/internal/notify"
)

// @Summary Real-time event stream
// @Description WebSocket upgrade. Pushes newSOS and newResourceRequest events. The token may be passed as ?token= since browsers cannot set headers on the handshake.
// @Tags Realtime
// @Security BearerAuth
// @Param token query string false "Session token"
// @Param events query string false "Comma separated event names, all by default"
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} map[string]string "Unknown event"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws [get]
func (h *Handler) realtimeStream(c *gin.Context) {
	log := h.logger.WithField("method", "realtimeStream")

	events, err := notify.ParseEvents(c.Query("events"))
	if err != nil {
		log.WithError(err).Warn("Invalid event subscription")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, _ := identityFrom(c)
	h.realtime.ServeWS(c.Writer, c.Request, identity, events)
}
