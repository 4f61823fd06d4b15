package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

type windowRequest struct {
	Window string `json:"window" binding:"required" example:"last30Days"`
}

type goalRequest struct {
	DailyGoal int `json:"daily_goal" example:"10000"`
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Get)

	stats := router.Group("/stats")
	{
		stats.GET("", h.Stats)
		stats.GET("/weekly", h.Weekly)
		stats.GET("/monthly", h.Monthly)
	}
}

func (h *DashboardHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.PUT("/window", h.SetWindow)
		settings.PUT("/goal", h.SetGoal)
	}
}

// Get godoc
// @Summary  Current dashboard for the selected window and goal
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  domain.Dashboard
// @Router   /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// SetWindow godoc
// @Summary  Select the time window
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    window  body      windowRequest  true  "Window name or alias"
// @Success  200     {object}  domain.Dashboard
// @Failure  400     {object}  errorResponse
// @Router   /settings/window [put]
func (h *DashboardHandler) SetWindow(c *gin.Context) {
	var req windowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	dashboard, err := h.svc.SetTimeWindow(c.Request.Context(), req.Window)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// SetGoal godoc
// @Summary  Change the daily step goal
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    goal  body      goalRequest  true  "Positive daily goal"
// @Success  200   {object}  domain.Dashboard
// @Failure  400   {object}  errorResponse
// @Router   /settings/goal [put]
func (h *DashboardHandler) SetGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	dashboard, err := h.svc.SetDailyGoal(c.Request.Context(), req.DailyGoal)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Stats godoc
// @Summary  Summary statistics for a window
// @Tags     stats
// @Produce  json
// @Param    window  query     string  false  "Window, defaults to the selected one"
// @Success  200     {object}  domain.AggregateStats
// @Router   /stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	dashboard, ok := h.dashboardFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard.Stats)
}

// Weekly godoc
// @Summary  Weekly averages for a window
// @Tags     stats
// @Produce  json
// @Param    window  query    string  false  "Window, defaults to the selected one"
// @Success  200     {array}  domain.WeeklyBucket
// @Router   /stats/weekly [get]
func (h *DashboardHandler) Weekly(c *gin.Context) {
	dashboard, ok := h.dashboardFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard.Weekly)
}

// Monthly godoc
// @Summary  Monthly averages for a window
// @Tags     stats
// @Produce  json
// @Param    window  query    string  false  "Window, defaults to the selected one"
// @Success  200     {array}  domain.MonthlyBucket
// @Router   /stats/monthly [get]
func (h *DashboardHandler) Monthly(c *gin.Context) {
	dashboard, ok := h.dashboardFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard.Monthly)
}

func (h *DashboardHandler) dashboardFor(c *gin.Context) (*domain.Dashboard, bool) {
	var (
		dashboard *domain.Dashboard
		err       error
	)
	if window := c.Query("window"); window != "" {
		dashboard, err = h.svc.Preview(c.Request.Context(), window)
	} else {
		dashboard, err = h.svc.Dashboard(c.Request.Context())
	}
	if err != nil {
		handleError(c, err)
		return nil, false
	}
	return dashboard, true
}
