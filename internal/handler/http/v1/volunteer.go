package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List volunteers
// @Description Returns username, phone, locality and skills of every volunteer
// @Tags Volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} VolunteerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "listVolunteers")

	volunteers, err := h.services.Volunteers.ListVolunteers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "volunteer not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToVolunteerResponses(volunteers))
}

// @Summary Assign a task to a volunteer
// @Tags VolunteerTasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body AssignTaskRequest true "Task"
// @Success 200 {object} models.VolunteerTask
// @Failure 400 {object} map[string]string "Validation error or unknown volunteer"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-tasks [post]
func (h *Handler) assignTask(c *gin.Context) {
	var input AssignTaskRequest
	log := h.logger.WithField("method", "assignTask")

	if !h.bindJSON(c, log, &input) {
		return
	}

	identity, _ := identityFrom(c)
	task := DTOToTaskModel(input)
	if err := h.services.Volunteers.AssignTask(c.Request.Context(), identity, task); err != nil {
		h.respondError(c, log, err, "volunteer task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary List own tasks
// @Description Tasks assigned to the calling volunteer, newest first
// @Tags VolunteerTasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VolunteerTask
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-tasks [get]
func (h *Handler) listTasks(c *gin.Context) {
	log := h.logger.WithField("method", "listTasks")
	identity, _ := identityFrom(c)

	tasks, err := h.services.Volunteers.ListTasks(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, log, err, "volunteer task not found")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary Update own task status
// @Description A volunteer can only update tasks assigned to them
// @Tags VolunteerTasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.VolunteerTask
// @Failure 400 {object} map[string]string "Invalid ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-tasks/{id} [put]
func (h *Handler) updateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer task ID"})
		return
	}
	log := h.logger.WithField("method", "updateTask").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	identity, _ := identityFrom(c)
	task, err := h.services.Volunteers.UpdateTaskStatus(c.Request.Context(), identity, id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "volunteer task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}
