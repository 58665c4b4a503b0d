package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"standcast-backend/internal/features/stats/service"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.GetStats)
}

// @Summary Get stand stats for a user
// @Description Derives the six-stat character sheet from the user's Farcaster and on-chain activity. Always returns 200 with a result; when upstream data is unavailable the stats are synthesized deterministically from the fid and marked with dataQuality "synthetic".
// @Tags stats
// @Produce json
// @Param fid query int true "Farcaster user id"
// @Success 200 {object} models.StatsResult "Profile, stats and detail strings"
// @Failure 400 {object} map[string]string "Missing or malformed fid"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	raw := c.Query("fid")
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing fid parameter"})
		return
	}
	fid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || fid <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid fid parameter"})
		return
	}

	c.JSON(http.StatusOK, h.service.GetStats(c.Request.Context(), fid))
}
