package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// uploadsURLPrefix - путь, по которому раздаются сохраненные вложения
const uploadsURLPrefix = "/uploads/"

// @Summary Report an incident
// @Description Multipart form. assignTo is repeated per department, attachments holds the uploaded files.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category formData string true "Flood, Earthquake, Fire, Storm or Other"
// @Param severity formData string true "Low, Medium or High"
// @Param description formData string true "At least 10 characters"
// @Param assignTo formData []string true "Departments" collectionFormat(multi)
// @Param location.latitude formData number true "Latitude"
// @Param location.longitude formData number true "Longitude"
// @Param attachments formData file true "Attachments"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind incident form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// клиенты на формах часто шлют assignTo[] и location одним JSON-полем
	if len(input.AssignTo) == 0 {
		input.AssignTo = c.PostFormArray("assignTo[]")
	}
	if input.Latitude == nil && input.Longitude == nil {
		if raw := c.PostForm("location"); raw != "" {
			var location LocationDTO
			if err := json.Unmarshal([]byte(raw), &location); err != nil {
				log.WithError(err).Warn("Failed to parse location field")
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location"})
				return
			}
			input.Latitude, input.Longitude = location.Latitude, location.Longitude
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files, err := h.attachments(c)
	if err != nil {
		log.WithError(err).Warn("Invalid attachments")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.saveAttachments(c, files)
	if err != nil {
		log.WithError(err).Error("Failed to save attachments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save attachments"})
		return
	}

	identity, _ := identityFrom(c)
	incident := DTOToIncidentModel(input, attachmentURLs(saved))
	if err := h.services.Incidents.Report(c.Request.Context(), identity, incident); err != nil {
		removeFiles(log, saved)
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, incident)
}

// attachments достает файлы формы и проверяет их количество и размер
func (h *Handler) attachments(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("multipart form is required")
	}
	files := form.File["attachments"]
	if len(files) == 0 {
		files = form.File["attachments[]"]
	}

	if len(files) == 0 {
		return nil, errors.New("at least one attachment is required")
	}
	if len(files) > h.cfg.MaxAttachments {
		return nil, fmt.Errorf("at most %d attachments are allowed", h.cfg.MaxAttachments)
	}
	for _, file := range files {
		if file.Size > h.cfg.MaxUploadBytes {
			return nil, fmt.Errorf("attachment %q exceeds %d bytes", file.Filename, h.cfg.MaxUploadBytes)
		}
	}
	return files, nil
}

// saveAttachments сохраняет файлы в UploadDir под случайными именами.
// При ошибке уже сохраненные файлы удаляются.
func (h *Handler) saveAttachments(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	saved := make([]string, 0, len(files))
	for _, file := range files {
		name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
		path := filepath.Join(h.cfg.UploadDir, name)
		if err := c.SaveUploadedFile(file, path); err != nil {
			removeFiles(h.logger.WithField("method", "saveAttachments"), saved)
			return nil, fmt.Errorf("failed to save %q: %w", file.Filename, err)
		}
		saved = append(saved, path)
	}
	return saved, nil
}

func attachmentURLs(paths []string) []string {
	urls := make([]string, len(paths))
	for i, path := range paths {
		urls[i] = uploadsURLPrefix + filepath.Base(path)
	}
	return urls
}

func removeFiles(log *logrus.Entry, paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("Failed to remove attachment")
		}
	}
}

// @Summary List incidents
// @Description Newest first, optionally filtered
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param severity query string false "Severity filter"
// @Param status query string false "Status filter"
// @Success 200 {array} models.Incident
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := models.IncidentFilter{
		Category: c.Query("category"),
		Severity: c.Query("severity"),
		Status:   c.Query("status"),
	}
	incidents, err := h.services.Incidents.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Update incident status
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, incident)
}
