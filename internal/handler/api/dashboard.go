package api

import (
	"net/http"

	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Console dashboard
// @Description All panels fetched in parallel; a failed panel comes back null
// @Tags dashboard
// @Produce json
// @Success 200 {object} queries.Dashboard
// @Router / [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	// Never fails as a whole; each panel degrades on its own.
	c.JSON(http.StatusOK, h.dashboardQueries.Load(c.Request.Context()))
}
