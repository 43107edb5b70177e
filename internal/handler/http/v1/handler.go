package v1

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/shenikar/disaster_response_system/internal/service AuthService,DistressSignalService,ResourceRequestService,ResourceService,VolunteerService,IncidentService,FeedService

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

// TokenParser проверяет токен сессии и возвращает вызывающего
type TokenParser interface {
	Parse(token string) (models.Identity, error)
}

// RealtimeServer обслуживает сокет канала реального времени
type RealtimeServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, identity models.Identity, events []string)
}

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Auth             service.AuthService
	DistressSignals  service.DistressSignalService
	ResourceRequests service.ResourceRequestService
	Resources        service.ResourceService
	Volunteers       service.VolunteerService
	Incidents        service.IncidentService
	Feed             service.FeedService
}

type Handler struct {
	services Services
	tokens   TokenParser
	realtime RealtimeServer
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, tokens TokenParser, realtime RealtimeServer, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	// department - значение из фиксированного списка отделов
	_ = validate.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return models.IsDepartment(fl.Field().String())
	})

	return &Handler{
		services: services,
		tokens:   tokens,
		realtime: realtime,
		logger:   logger,
		validate: validate,
		cfg:      cfg,
	}
}

// respondError сопоставляет ошибку сервиса с кодом ответа.
// notFound - сообщение для ErrNotFound.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect password"})
	case errors.Is(err, service.ErrUpstream):
		log.WithError(err).Error("Upstream service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data from upstream service"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON разбирает и проверяет тело запроса. false - ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
