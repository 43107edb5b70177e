package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/disaster_response_system/internal/service"
)

// @Summary Register a new user
// @Description Create an account. Role defaults to public.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body SignupRequest true "Signup request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Validation error or duplicate username/email"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *Handler) signup(c *gin.Context) {
	var input SignupRequest
	log := h.logger.WithField("method", "signup")

	if !h.bindJSON(c, log, &input) {
		return
	}

	user, err := h.services.Auth.Signup(c.Request.Context(), SignupDTOToInput(input))
	if err != nil {
		h.respondError(c, log, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange credentials for a session token valid for one hour
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Unknown user or incorrect password"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.services.Auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		// неизвестный пользователь - ошибка запроса, а не отсутствующий ресурс
		if errors.Is(err, service.ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
			return
		}
		h.respondError(c, log, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, SessionToLoginResponse(session))
}

// @Summary Current user
// @Description Return the account of the caller
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invalid token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	log := h.logger.WithField("method", "me")
	identity, _ := identityFrom(c)

	user, err := h.services.Auth.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.respondError(c, log, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
