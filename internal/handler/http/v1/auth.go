package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
)

const identityKey = "identity"

// Authenticate проверяет токен сессии. Нет токена - 401, недействительный токен - 403.
// allowQuery разрешает передать токен в ?token= (браузер не может задать заголовки сокета).
func (h *Handler) Authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("token")
		}

		if token == "" {
			h.logger.WithField("path", c.FullPath()).Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		identity, err := h.tokens.Parse(token)
		if err != nil {
			h.logger.WithError(err).WithField("path", c.FullPath()).Warn("Invalid session token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Authorize пропускает только роли из списка. Пустой список - любая роль.
func (h *Handler) Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		identity, ok := identityFrom(c)
		if ok {
			for _, role := range roles {
				if identity.Role == role {
					c.Next()
					return
				}
			}
		}

		h.logger.WithFields(logrus.Fields{
			"path": c.FullPath(),
			"role": identity.Role,
		}).Warn("Role is not allowed for operation")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}

func identityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
