package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Add a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource body ResourceRequest true "Resource"
// @Success 200 {object} models.Resource
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input ResourceRequest
	log := h.logger.WithField("method", "createResource")

	if !h.bindJSON(c, log, &input) {
		return
	}

	resource := DTOToResourceModel(input)
	if err := h.services.Resources.Create(c.Request.Context(), resource); err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary List resources
// @Tags Resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Resource
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	resources, err := h.services.Resources.List(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusOK, resources)
}

// @Summary Replace a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param resource body ResourceRequest true "Resource"
// @Success 200 {object} models.Resource
// @Failure 400 {object} map[string]string "Invalid ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [put]
func (h *Handler) updateResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}
	log := h.logger.WithField("method", "updateResource").WithField("id", id)

	var input ResourceRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	resource := DTOToResourceModel(input)
	resource.ID = id
	if err := h.services.Resources.Replace(c.Request.Context(), resource); err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary Delete a resource
// @Tags Resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [delete]
func (h *Handler) deleteResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}
	log := h.logger.WithField("method", "deleteResource").WithField("id", id)

	if err := h.services.Resources.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}
