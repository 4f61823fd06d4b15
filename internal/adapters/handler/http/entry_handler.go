package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
)

type EntryHandler struct {
	svc *services.DashboardService
}

func NewEntryHandler(svc *services.DashboardService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

// Steps is kept loose so that "abc" or 12.5 reach validation instead of
// failing JSON binding.
type createEntryRequest struct {
	Date  string `json:"date" example:"2024-05-27"`
	Steps any    `json:"steps" swaggertype:"string" example:"8765"`
}

type entryResponse struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/entries", h.List)
}

func (h *EntryHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/entries", h.Create)
}

// Create godoc
// @Summary      Record the steps of one day
// @Description  Stores the count for a past or current day, replacing any previous count for that day.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        entry  body      createEntryRequest  true  "Step entry"
// @Success      201    {object}  domain.Dashboard
// @Failure      400    {object}  errorResponse
// @Router       /entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date, h.svc.Location())
		if err != nil {
			handleError(c, err)
			return
		}
		date = parsed
	}

	dashboard, err := h.svc.SubmitEntry(c.Request.Context(), services.SubmitEntryInput{
		Date:  date,
		Steps: stepsText(req.Steps),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dashboard)
}

// List godoc
// @Summary  List every recorded day
// @Tags     entries
// @Produce  json
// @Success  200  {array}  entryResponse
// @Router   /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.svc.Entries(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{Date: e.Date.Format(domain.DateLayout), Steps: e.Steps})
	}
	c.JSON(http.StatusOK, resp)
}

func stepsText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
