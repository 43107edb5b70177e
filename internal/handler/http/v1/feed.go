package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary Current weather
// @Description Pass-through of the weather provider response for the given coordinates
// @Tags Feed
// @Produce json
// @Security BearerAuth
// @Param latitude query string true "Latitude"
// @Param longitude query string true "Longitude"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Upstream failure"
// @Router /weather [get]
func (h *Handler) weather(c *gin.Context) {
	log := h.logger.WithField("method", "weather")

	latitude := strings.TrimSpace(c.Query("latitude"))
	longitude := strings.TrimSpace(c.Query("longitude"))
	if latitude == "" || longitude == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	body, err := h.services.Feed.Weather(c.Request.Context(), latitude, longitude)
	if err != nil {
		h.respondError(c, log, err, "weather not found")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// @Summary Disaster news
// @Description Articles about disasters in the given locality
// @Tags Feed
// @Produce json
// @Security BearerAuth
// @Param locality query string true "Locality"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing locality"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Upstream failure"
// @Router /news [get]
func (h *Handler) news(c *gin.Context) {
	log := h.logger.WithField("method", "news")

	locality := strings.TrimSpace(c.Query("locality"))
	if locality == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locality is required"})
		return
	}

	body, err := h.services.Feed.News(c.Request.Context(), locality)
	if err != nil {
		h.respondError(c, log, err, "news not found")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
