package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// @Summary Request resources
// @Description Create a resource request and notify connected clients with the newResourceRequest event
// @Tags ResourceRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateResourceRequestRequest true "Resource request"
// @Success 200 {object} models.ResourceRequest
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resource-requests [post]
func (h *Handler) createResourceRequest(c *gin.Context) {
	var input CreateResourceRequestRequest
	log := h.logger.WithField("method", "createResourceRequest")

	if !h.bindJSON(c, log, &input) {
		return
	}

	identity, _ := identityFrom(c)
	request := DTOToResourceRequestModel(input)
	if err := h.services.ResourceRequests.Create(c.Request.Context(), identity, request); err != nil {
		h.respondError(c, log, err, "resource request not found")
		return
	}
	c.JSON(http.StatusOK, request)
}

// @Summary List resource requests
// @Description Newest first
// @Tags ResourceRequests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status filter"
// @Success 200 {array} models.ResourceRequest
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resource-requests [get]
func (h *Handler) listResourceRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listResourceRequests")

	requests, err := h.services.ResourceRequests.List(c.Request.Context(), models.RequestFilter{Status: c.Query("status")})
	if err != nil {
		h.respondError(c, log, err, "resource request not found")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary Update resource request status
// @Tags ResourceRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.ResourceRequest
// @Failure 400 {object} map[string]string "Invalid ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resource-requests/{id} [put]
func (h *Handler) updateResourceRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource request ID"})
		return
	}
	log := h.logger.WithField("method", "updateResourceRequest").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	request, err := h.services.ResourceRequests.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "resource request not found")
		return
	}
	c.JSON(http.StatusOK, request)
}
