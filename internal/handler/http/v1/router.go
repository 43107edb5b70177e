package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// operation - маршрут API вместе с правилами доступа
type operation struct {
	method       string
	path         string
	handler      gin.HandlerFunc
	roles        []models.Role // пусто - любая аутентифицированная роль
	public       bool
	tokenInQuery bool
	rateLimited  bool
}

var (
	staff     = []models.Role{models.RoleGovernment, models.RoleNGO}
	citizens  = []models.Role{models.RolePublic}
	volunteer = []models.Role{models.RoleVolunteer}
)

func (h *Handler) operations() []operation {
	return []operation{
		{method: http.MethodPost, path: "/auth/signup", handler: h.signup, public: true, rateLimited: true},
		{method: http.MethodPost, path: "/auth/login", handler: h.login, public: true, rateLimited: true},
		{method: http.MethodGet, path: "/auth/me", handler: h.me},

		{method: http.MethodPost, path: "/sos", handler: h.createDistressSignal, roles: citizens},
		{method: http.MethodGet, path: "/sos", handler: h.listDistressSignals, roles: staff},
		{method: http.MethodPut, path: "/sos/:id", handler: h.updateDistressSignal, roles: staff},

		{method: http.MethodPost, path: "/resource-requests", handler: h.createResourceRequest, roles: citizens},
		{method: http.MethodGet, path: "/resource-requests", handler: h.listResourceRequests, roles: staff},
		{method: http.MethodPut, path: "/resource-requests/:id", handler: h.updateResourceRequest, roles: staff},

		{method: http.MethodGet, path: "/resources", handler: h.listResources, roles: staff},
		{method: http.MethodPost, path: "/resources", handler: h.createResource, roles: staff},
		{method: http.MethodPut, path: "/resources/:id", handler: h.updateResource, roles: staff},
		{method: http.MethodDelete, path: "/resources/:id", handler: h.deleteResource, roles: staff},

		{method: http.MethodGet, path: "/volunteers", handler: h.listVolunteers, roles: staff},
		{method: http.MethodPost, path: "/volunteer-tasks", handler: h.assignTask, roles: staff},
		{method: http.MethodGet, path: "/volunteer-tasks", handler: h.listTasks, roles: volunteer},
		{method: http.MethodPut, path: "/volunteer-tasks/:id", handler: h.updateTask, roles: volunteer},

		{method: http.MethodPost, path: "/incidents", handler: h.createIncident, roles: staff},
		{method: http.MethodGet, path: "/incidents", handler: h.listIncidents, roles: staff},
		{method: http.MethodPut, path: "/incidents/:id", handler: h.updateIncident, roles: staff},

		{method: http.MethodGet, path: "/weather", handler: h.weather},
		{method: http.MethodGet, path: "/news", handler: h.news},

		{method: http.MethodGet, path: "/ws", handler: h.realtimeStream, tokenInQuery: true},

		{method: http.MethodGet, path: "/system/health", handler: h.healthCheck, public: true},
	}
}

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	limiter := newIPRateLimiter(h.cfg.AuthRateLimitRPS, h.cfg.AuthRateLimitBurst)

	for _, op := range h.operations() {
		chain := make([]gin.HandlerFunc, 0, 4)
		if op.rateLimited {
			chain = append(chain, RateLimit(limiter))
		}
		if !op.public {
			chain = append(chain, h.Authenticate(op.tokenInQuery), h.Authorize(op.roles...))
		}
		chain = append(chain, op.handler)
		api.Handle(op.method, op.path, chain...)
	}
}
