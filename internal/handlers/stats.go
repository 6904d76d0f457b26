package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hero-task-tracker/internal/constants"
	"github.com/yukikurage/hero-task-tracker/internal/dto"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	stats *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// windowDays reads the days query parameter, defaulting to a week
func windowDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return constants.DefaultStatsWindowDays, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.BadRequest(c, "Invalid days")
		return 0, false
	}
	return days, true
}

// Daily returns completions per calendar day, newest first
func (h *StatsHandler) Daily(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}

	daily, err := h.stats.DailyCompletions(c.Request.Context(), days)
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": dto.ToDailyStatDTOs(daily)})
}

// Users returns per-user task counts, busiest first
func (h *StatsHandler) Users(c *gin.Context) {
	counts, err := h.stats.PerUserCounts(c.Request.Context())
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserStatDTOs(counts)})
}

// Overview returns both views in one response
func (h *StatsHandler) Overview(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}

	overview, err := h.stats.Overview(c.Request.Context(), days)
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsOverviewDTO(overview))
}
