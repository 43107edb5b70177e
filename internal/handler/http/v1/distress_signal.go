package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// @Summary Raise an SOS
// @Description Create a distress signal and notify connected clients with the newSOS event
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body CreateDistressSignalRequest true "Distress signal"
// @Success 200 {object} models.DistressSignal
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) createDistressSignal(c *gin.Context) {
	var input CreateDistressSignalRequest
	log := h.logger.WithField("method", "createDistressSignal")

	if !h.bindJSON(c, log, &input) {
		return
	}

	identity, _ := identityFrom(c)
	signal := DTOToDistressSignalModel(input)
	if err := h.services.DistressSignals.Create(c.Request.Context(), identity, signal); err != nil {
		h.respondError(c, log, err, "distress signal not found")
		return
	}
	c.JSON(http.StatusOK, signal)
}

// @Summary List distress signals
// @Description Without a status filter returns every signal that is not Resolved, newest first
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status filter"
// @Success 200 {array} models.DistressSignal
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [get]
func (h *Handler) listDistressSignals(c *gin.Context) {
	log := h.logger.WithField("method", "listDistressSignals")

	signals, err := h.services.DistressSignals.List(c.Request.Context(), models.SignalFilter{Status: c.Query("status")})
	if err != nil {
		h.respondError(c, log, err, "distress signal not found")
		return
	}
	c.JSON(http.StatusOK, signals)
}

// @Summary Update distress signal status
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signal ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.DistressSignal
// @Failure 400 {object} map[string]string "Invalid ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Signal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{id} [put]
func (h *Handler) updateDistressSignal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid distress signal ID"})
		return
	}
	log := h.logger.WithField("method", "updateDistressSignal").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	signal, err := h.services.DistressSignals.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "distress signal not found")
		return
	}
	c.JSON(http.StatusOK, signal)
}
