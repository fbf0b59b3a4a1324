package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/core/ports"
)

type StatsHandler struct {
	stats ports.StatsService
}

func NewStatsHandler(stats ports.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Register(g *echo.Group, authn echo.MiddlewareFunc) {
	g.GET("/stats", h.Dashboard, authn)
	g.GET("/stats/", h.Dashboard, authn)
}

// Dashboard returns the aggregated counters shown on the dashboard.
//
// @Summary      Dashboard statistics
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /api/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
